package domain

import "time"

// BuildRecord describes the last rebuild run for a project root.
type BuildRecord struct {
	Root        string        `json:"root,omitzero"`
	OutputDir   string        `json:"output_dir,omitzero"`
	Fingerprint string        `json:"fingerprint,omitzero"`
	ExitCode    int           `json:"exit_code"`
	TimedOut    bool          `json:"timed_out,omitzero"`
	Duration    time.Duration `json:"duration,omitzero"`
	Timestamp   time.Time     `json:"timestamp,omitzero"`
}
