// Package config loads testbridge.yaml into a validated domain.Config.
package config

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the config file version this loader understands.
const SupportedVersion = "1"

var validProjectNameRegex = regexp.MustCompile(`^[a-zA-Z0-9@._-]+$`)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
}

// NewLoader creates a Loader that reads from the real filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a Loader over fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load discovers testbridge.yaml from cwd upwards. Without one, the defaults
// apply and cwd is the project root.
func (l *Loader) Load(cwd string) (string, domain.Config, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", domain.Config{}, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	configPath, found := l.findConfiguration(cwd)
	if !found {
		l.Logger.Debug(fmt.Sprintf("no %s found, using defaults", domain.ConfigFileName))
		cfg := domain.DefaultConfig()
		cfg.Rebuild.Dir = cwd
		return cwd, cfg, nil
	}

	return l.LoadFile(configPath)
}

// LoadFile reads and validates the config file at configPath.
func (l *Loader) LoadFile(configPath string) (string, domain.Config, error) {
	configPath, err := filepath.Abs(configPath)
	if err != nil {
		return "", domain.Config{}, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}
	root := filepath.Dir(configPath)

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		return "", domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	cfg, err := buildConfig(&file)
	if err != nil {
		return "", domain.Config{}, zerr.With(err, "path", configPath)
	}
	cfg.Rebuild.Dir = root

	l.Logger.Debug("loaded config from " + configPath)
	return root, cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

//nolint:cyclop // one branch per optional key
func buildConfig(file *Configfile) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.Version != "" && file.Version != SupportedVersion {
		return cfg, zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}

	var err error
	if cfg.CacheRoot, err = relPath("cacheRoot", file.CacheRoot, cfg.CacheRoot); err != nil {
		return cfg, err
	}
	if cfg.SourceRoot, err = relPath("sourceRoot", file.SourceRoot, cfg.SourceRoot); err != nil {
		return cfg, err
	}
	if cfg.Marker, err = relPath("marker", file.Marker, cfg.Marker); err != nil {
		return cfg, err
	}

	if file.Extensions != nil {
		if err := validateExtensions(file.Extensions); err != nil {
			return cfg, err
		}
		cfg.Extensions = file.Extensions
	}

	if file.Project != "" {
		if !validProjectName(file.Project) {
			return cfg, zerr.With(domain.ErrInvalidProjectName, "project", file.Project)
		}
		cfg.Project = file.Project
	}

	if cfg.VersionOrder, err = domain.ParseVersionOrder(file.VersionOrder); err != nil {
		return cfg, zerr.With(err, "versionOrder", file.VersionOrder)
	}
	if cfg.Strategy, err = domain.ParseStrategy(file.Strategy); err != nil {
		return cfg, zerr.With(err, "strategy", file.Strategy)
	}

	if r := file.Rebuild; r != nil {
		if r.Command != nil {
			if len(r.Command) == 0 || strings.TrimSpace(r.Command[0]) == "" {
				return cfg, domain.ErrEmptyRebuildCommand
			}
			cfg.Rebuild.Args = r.Command
		}
		if r.Timeout != nil {
			if *r.Timeout <= 0 {
				return cfg, zerr.With(domain.ErrInvalidTimeout, "timeout", *r.Timeout)
			}
			cfg.Rebuild.Timeout = time.Duration(*r.Timeout) * time.Second
		}
	}

	if file.Resolver != nil && file.Resolver.Fallbacks != nil {
		cfg.Fallbacks = *file.Resolver.Fallbacks
	}

	if file.Watch != nil && file.Watch.Debounce != nil {
		if *file.Watch.Debounce < 0 {
			return cfg, zerr.With(domain.ErrInvalidDebounce, "debounce", *file.Watch.Debounce)
		}
		cfg.Debounce = time.Duration(*file.Watch.Debounce) * time.Millisecond
	}

	return cfg, nil
}

// relPath validates a configured path and returns it slash-separated and
// cleaned. An empty value selects def.
func relPath(key, value, def string) (string, error) {
	if value == "" {
		return def, nil
	}

	p := path.Clean(filepath.ToSlash(value))
	if filepath.IsAbs(value) || path.IsAbs(p) || p == ".." || strings.HasPrefix(p, "../") {
		return "", zerr.With(zerr.With(domain.ErrInvalidPath, "key", key), "value", value)
	}
	return p, nil
}

func validateExtensions(exts []string) error {
	for _, ext := range exts {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return zerr.With(domain.ErrInvalidExtension, "extension", ext)
		}
	}
	return nil
}

func validProjectName(name string) bool {
	if _, reserved := domain.ReservedCacheEntries[name]; reserved || name == "." || name == ".." {
		return false
	}
	return validProjectNameRegex.MatchString(name)
}
