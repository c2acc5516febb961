// Package config provides the configuration loader for bdep.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/bdep/internal/core/domain"
	"go.trai.ch/bdep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileDTO represents the structure of the bdep.yaml configuration file.
type fileDTO struct {
	APIURL       string `yaml:"apiurl"`
	CacheRoot    string `yaml:"cacheroot"`
	Architecture string `yaml:"architecture"`
	NameIgnore   string `yaml:"nameignore"`
	Lenient      bool   `yaml:"lenient"`
}

// Load reads the configuration file at path. A missing file is not an
// error: the tool works unconfigured, with defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, zerr.Wrap(err, "failed to read config file")
	}

	var dto fileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if dto.APIURL != "" {
		cfg.APIURL = dto.APIURL
	}
	if dto.CacheRoot != "" {
		cfg.CacheRoot = dto.CacheRoot
	}
	if dto.Architecture != "" {
		cfg.Architecture = dto.Architecture
	}
	if dto.NameIgnore != "" {
		cfg.NameIgnore = dto.NameIgnore
	}
	if dto.Lenient {
		cfg.Lenient = true
	}
	return cfg, nil
}
