package config

// Configfile represents the structure of the testbridge.yaml configuration file.
type Configfile struct {
	Version      string       `yaml:"version"`
	CacheRoot    string       `yaml:"cacheRoot"`
	SourceRoot   string       `yaml:"sourceRoot"`
	Marker       string       `yaml:"marker"`
	Extensions   []string     `yaml:"extensions"`
	Project      string       `yaml:"project"`
	VersionOrder string       `yaml:"versionOrder"`
	Strategy     string       `yaml:"strategy"`
	Rebuild      *RebuildDTO  `yaml:"rebuild"`
	Resolver     *ResolverDTO `yaml:"resolver"`
	Watch        *WatchDTO    `yaml:"watch"`
}

// RebuildDTO configures the rebuild command.
type RebuildDTO struct {
	Command []string `yaml:"command"`
	// Timeout is in whole seconds.
	Timeout *int `yaml:"timeout"`
}

// ResolverDTO configures artifact resolution.
type ResolverDTO struct {
	Fallbacks *bool `yaml:"fallbacks"`
}

// WatchDTO configures the watch command.
type WatchDTO struct {
	// Debounce is in milliseconds.
	Debounce *int `yaml:"debounce"`
}
