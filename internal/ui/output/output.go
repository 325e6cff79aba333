// Package output builds termenv outputs with a color profile that honors
// NO_COLOR and the terminal's capabilities.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/testbridge/internal/ui/style"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal
// profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w. A nil w writes to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Status renders a one-line verdict: a check mark in green when ok, a warning
// mark in yellow otherwise.
func Status(out *termenv.Output, ok bool, text string) string {
	icon, color := style.Check, style.Green
	if !ok {
		icon, color = style.Warning, style.Yellow
	}
	return out.String(icon + " " + text).Foreground(out.Color(string(color))).String()
}
