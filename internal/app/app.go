// Package app implements the application layer for bdep.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.trai.ch/bdep/internal/adapters/mirror"
	"go.trai.ch/bdep/internal/adapters/obs"
	"go.trai.ch/bdep/internal/core/domain"
	"go.trai.ch/bdep/internal/core/ports"
	"go.trai.ch/bdep/internal/engine/closure"
	"go.trai.ch/bdep/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Credential environment variables for the build service API.
const (
	envUser     = "BDEP_USER"
	envPassword = "BDEP_PASSWORD"
)

// ExpandParams carries the per-invocation inputs of an expansion run and
// the overrides that take precedence over the configuration file.
type ExpandParams struct {
	Project    string
	Repository string
	Package    string

	// Architecture overrides the configured build architecture when set.
	Architecture string
	// Lenient enables best-effort expansion in addition to the config.
	Lenient bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	log          ports.Logger
	tel          ports.Telemetry
	headers      ports.HeaderReader

	configPath string
	out        io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger, tel ports.Telemetry, headers ports.HeaderReader) *App {
	return &App{
		configLoader: loader,
		log:          log,
		tel:          tel,
		headers:      headers,
		configPath:   "bdep.yaml",
		out:          os.Stdout,
	}
}

// SetConfigPath overrides the configuration file location.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// SetOutput redirects the result output, used by tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

type targetDTO struct {
	Project    string `json:"project"`
	Repository string `json:"repository"`
	Package    string `json:"package"`
}

// Expand computes the transitive build dependency closure of one package
// and writes it to the output as JSON, one target per element.
func (a *App) Expand(ctx context.Context, params ExpandParams) error {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if params.Architecture != "" {
		cfg.Architecture = params.Architecture
	}
	if params.Lenient {
		cfg.Lenient = true
	}

	svc, mir, err := a.buildServices(cfg)
	if err != nil {
		return err
	}

	res := resolver.New(svc, mir, a.headers, a.log, cfg.CacheRoot, cfg.Architecture)
	var opts []closure.Option
	if cfg.Lenient {
		opts = append(opts, closure.WithLenient())
	}
	engine := closure.New(svc, res, a.log, a.tel, cfg.Architecture, opts...)

	start := domain.NewPackageTarget(params.Project, params.Repository, params.Package)
	result, err := engine.Expand(ctx, start)
	if err != nil {
		return zerr.Wrap(err, "expansion failed")
	}

	a.log.Info(fmt.Sprintf("expanded %d targets, %d unresolved edges, %d unexpanded",
		len(result.Visited), result.UnresolvedEdges, len(result.Unexpanded)))

	targets := result.Sorted()
	dtos := make([]targetDTO, 0, len(targets))
	for _, t := range targets {
		dtos = append(dtos, targetDTO{
			Project:    t.Project.String(),
			Repository: t.Repository.String(),
			Package:    t.Package.String(),
		})
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dtos); err != nil {
		return zerr.Wrap(err, "failed to write result")
	}
	return nil
}

// MirrorRepo synchronizes the local header cache for one repository
// without expanding anything.
func (a *App) MirrorRepo(ctx context.Context, project, repository string) error {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	_, mir, err := a.buildServices(cfg)
	if err != nil {
		return err
	}

	target := domain.NewBuildTarget(project, repository, cfg.Architecture)
	destDir := resolver.MirrorDir(cfg.CacheRoot, target)
	if err := mir.Mirror(ctx, destDir, target); err != nil {
		return zerr.Wrap(err, "mirroring failed")
	}
	return nil
}

func (a *App) buildServices(cfg domain.Config) (ports.BuildService, ports.RepositoryMirror, error) {
	var opts []obs.Option
	if user := os.Getenv(envUser); user != "" {
		opts = append(opts, obs.WithBasicAuth(user, os.Getenv(envPassword)))
	}
	svc, err := obs.NewClient(cfg.APIURL, opts...)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to create build service client")
	}

	mir, err := mirror.New(svc, a.log, a.tel, cfg.NameIgnore)
	if err != nil {
		return nil, nil, err
	}
	return svc, mir, nil
}
