package domain

import (
	"runtime"
	"time"
)

// Config is the validated bridge configuration.
type Config struct {
	// CacheRoot, SourceRoot are slash-separated and relative to the project root.
	CacheRoot    string
	SourceRoot   string
	Marker       string
	Extensions   []string
	Project      string
	VersionOrder VersionOrder
	Strategy     Strategy
	Rebuild      RebuildCommand
	Fallbacks    bool
	Debounce     time.Duration
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		CacheRoot:    DefaultCacheRoot,
		SourceRoot:   DefaultSourceRoot,
		Marker:       DefaultMarker,
		Extensions:   DefaultExtensions(),
		VersionOrder: OrderLexical,
		Strategy:     StrategyMtime,
		Rebuild: RebuildCommand{
			Args:    DefaultRebuildCommand(),
			Timeout: DefaultRebuildTimeout,
		},
		Fallbacks: runtime.GOOS == "windows",
		Debounce:  DefaultDebounce,
	}
}
