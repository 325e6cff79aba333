package ports

import "go.trai.ch/testbridge/internal/core/domain"

// ConfigLoader defines the interface for loading the bridge configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration found from cwd upwards.
	// It returns the project root and the validated configuration, falling back
	// to defaults rooted at cwd when no config file exists.
	Load(cwd string) (string, domain.Config, error)

	// LoadFile reads the configuration at path. The project root is the
	// directory containing it.
	LoadFile(path string) (string, domain.Config, error)
}
