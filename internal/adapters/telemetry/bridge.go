// Package telemetry traces bridge operations with OpenTelemetry and reports
// finished spans through the logger.
package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/testbridge/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor and logs each finished span at
// debug level.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing; spans are reported when they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration, attributes and failure status.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(describeSpan(s))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func describeSpan(s sdktrace.ReadOnlySpan) string {
	elapsed := formatDuration(s.EndTime().Sub(s.StartTime()))

	var sb strings.Builder
	if s.Status().Code == codes.Error {
		fmt.Fprintf(&sb, "span %s failed after %s", s.Name(), elapsed)
		if desc := s.Status().Description; desc != "" {
			sb.WriteString(": " + desc)
		}
	} else {
		fmt.Fprintf(&sb, "span %s took %s", s.Name(), elapsed)
	}

	attrs := make([]string, 0, len(s.Attributes()))
	for _, kv := range s.Attributes() {
		attrs = append(attrs, string(kv.Key)+"="+kv.Value.Emit())
	}
	if len(attrs) > 0 {
		slices.Sort(attrs)
		sb.WriteString(" (" + strings.Join(attrs, " ") + ")")
	}

	return sb.String()
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(time.Microsecond).String()
	}
}
