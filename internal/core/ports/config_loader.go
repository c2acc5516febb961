package ports

import "go.trai.ch/bdep/internal/core/domain"

// ConfigLoader loads the runtime configuration.
type ConfigLoader interface {
	// Load reads the configuration file at path. A missing file is not an
	// error; defaults apply.
	Load(path string) (domain.Config, error)
}
