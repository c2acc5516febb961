package domain

import (
	"os"
	"path/filepath"
)

// DefaultNameIgnore excludes debug packages from mirroring. They are large
// and never needed for dependency resolution.
const DefaultNameIgnore = `-debug(info|source|info-32bit)\.rpm$`

// Config holds the runtime configuration for a closure run.
type Config struct {
	// APIURL is the base URL of the build service API.
	APIURL string

	// CacheRoot is the directory holding the per-(project, repository)
	// mirror caches.
	CacheRoot string

	// Architecture is the build architecture used for listing, dependency
	// info and build environment queries.
	Architecture string

	// NameIgnore is a regular expression matching binary file names that
	// are excluded from mirroring.
	NameIgnore string

	// Lenient selects best-effort closure expansion: targets whose build
	// environment cannot be fetched stay visited but unexpanded instead of
	// aborting the run.
	Lenient bool
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	cacheRoot := filepath.Join(".cache", "bdep", "repository-meta")
	if home, err := os.UserHomeDir(); err == nil {
		cacheRoot = filepath.Join(home, ".cache", "bdep", "repository-meta")
	}
	return Config{
		APIURL:       "https://api.opensuse.org",
		CacheRoot:    cacheRoot,
		Architecture: "x86_64",
		NameIgnore:   DefaultNameIgnore,
	}
}
