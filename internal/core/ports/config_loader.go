package ports

import "go.trai.ch/iroot/internal/core/domain"

// ConfigLoader defines the interface for loading options.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the options file at path on top of the defaults.
	// A missing file yields the defaults.
	Load(path string) (domain.Options, error)
	// Validate checks options assembled from the file and command-line flags.
	Validate(opts domain.Options) error
}
