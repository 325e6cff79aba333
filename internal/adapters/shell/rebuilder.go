// Package shell provides the rebuild adapter that runs the configured test
// build command as a child process.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Wait blocks on inherited pipes after the process
// has been killed.
const waitDelay = 5 * time.Second

var _ ports.Rebuilder = (*Rebuilder)(nil)

// Rebuilder implements ports.Rebuilder using os/exec.
type Rebuilder struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRebuilder creates a Rebuilder whose child inherits the process stdin and
// stderr. The child's stdout also goes to stderr: stdout carries command
// results such as resolved paths and artifact contents.
func NewRebuilder(logger ports.Logger) *Rebuilder {
	return &Rebuilder{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stderr,
		stderr: os.Stderr,
	}
}

// WithStdio returns a copy of r that connects the child to the given streams.
func (r *Rebuilder) WithStdio(stdin io.Reader, stdout, stderr io.Writer) *Rebuilder {
	return &Rebuilder{
		logger: r.logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Rebuild runs cmd to completion or until its timeout elapses.
// Failures are reported in the outcome and logged as warnings; they never
// abort the caller.
func (r *Rebuilder) Rebuild(ctx context.Context, cmd domain.RebuildCommand) domain.RebuildOutcome {
	if len(cmd.Args) == 0 {
		return domain.RebuildOutcome{ExitCode: -1, Err: domain.ErrEmptyRebuildCommand}
	}

	timeout := cmd.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultRebuildTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...) //nolint:gosec // user configured command
	c.Dir = cmd.Dir
	c.Stdin = r.stdin
	c.Stdout = r.stdout
	c.Stderr = r.stderr
	c.WaitDelay = waitDelay

	r.logger.Info("rebuilding tests: " + strings.Join(cmd.Args, " "))

	start := time.Now()
	if err := c.Start(); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrRebuildStartFailed.Error()), "command", cmd.Args[0])
		r.logger.Warn("rebuild command could not be started: " + err.Error())
		return domain.RebuildOutcome{ExitCode: -1, Err: err}
	}

	err := c.Wait()
	outcome := domain.RebuildOutcome{Duration: time.Since(start)}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		outcome.TimedOut = true
		outcome.ExitCode = -1
		r.logger.Warn("rebuild timed out after " + timeout.String())
		return outcome
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
		} else {
			outcome.ExitCode = -1
			outcome.Err = err
		}
		r.logger.Warn("rebuild exited with code " + strconv.Itoa(outcome.ExitCode))
	}

	return outcome
}
