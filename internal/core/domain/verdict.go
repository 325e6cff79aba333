package domain

import (
	"strings"
	"time"
)

// Strategy selects how staleness is decided.
type Strategy string

const (
	// StrategyMtime compares source mtimes against the marker file.
	StrategyMtime Strategy = "mtime"
	// StrategyHash compares a content fingerprint against the last build record.
	StrategyHash Strategy = "hash"
	// StrategyAlways treats the output as stale on every check.
	StrategyAlways Strategy = "always"
)

// ParseStrategy validates a configured strategy. Empty means mtime.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(s)) {
	case "", StrategyMtime:
		return StrategyMtime, nil
	case StrategyHash:
		return StrategyHash, nil
	case StrategyAlways:
		return StrategyAlways, nil
	default:
		return "", ErrInvalidStrategy
	}
}

// Reason explains a staleness verdict.
type Reason string

const (
	ReasonFresh              Reason = "fresh"
	ReasonOutputMissing      Reason = "output-missing"
	ReasonMarkerMissing      Reason = "marker-missing"
	ReasonSourceNewer        Reason = "source-newer"
	ReasonFingerprintChanged Reason = "fingerprint-changed"
	ReasonNoRecord           Reason = "no-record"
	ReasonForced             Reason = "forced"
	ReasonCheckFailed        Reason = "check-failed"
)

// Verdict is the result of a staleness check.
type Verdict struct {
	Stale  bool
	Reason Reason
	// Trigger is the first source file found newer than the marker, if any.
	Trigger string
}

// Fresh returns a not-stale verdict.
func Fresh() Verdict {
	return Verdict{Reason: ReasonFresh}
}

// StaleBecause returns a stale verdict with the given reason.
func StaleBecause(r Reason) Verdict {
	return Verdict{Stale: true, Reason: r}
}

// RebuildCommand describes one invocation of the external rebuild.
type RebuildCommand struct {
	Args    []string
	Dir     string
	Timeout time.Duration
}

// RebuildOutcome reports how a rebuild ended. None of its states are fatal.
type RebuildOutcome struct {
	ExitCode int
	TimedOut bool
	Duration time.Duration
	// Err is set when the command could not be started or waited on.
	Err error
}

// Succeeded reports whether the command exited zero within the timeout.
func (o RebuildOutcome) Succeeded() bool {
	return o.Err == nil && !o.TimedOut && o.ExitCode == 0
}
