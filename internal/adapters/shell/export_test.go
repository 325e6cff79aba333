package shell

import "io"

// StdoutOf exposes the writer connected to the child's stdout.
func StdoutOf(r *Rebuilder) io.Writer {
	return r.stdout
}
