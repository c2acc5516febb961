// Package closure implements the worklist expansion of a package's
// transitive build dependencies.
package closure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/bdep/internal/core/domain"
	"go.trai.ch/bdep/internal/core/ports"
	"go.trai.ch/zerr"
)

// defaultRequestDelay is the politeness delay between build environment
// fetches. Not a correctness requirement, only load shedding for the remote
// service.
const defaultRequestDelay = 200 * time.Millisecond

// Engine expands the transitive closure of build dependencies from one
// start target. One Engine value owns one run's visited and frontier sets;
// create a fresh Engine per run. Concurrent runs are safe as long as each
// has its own Engine, even when they share a resolver.
type Engine struct {
	svc      ports.BuildService
	resolver ports.BinaryResolver
	log      ports.Logger
	tel      ports.Telemetry

	architecture string
	lenient      bool
	delay        time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithLenient selects best-effort expansion: a target whose build
// environment cannot be fetched stays visited but unexpanded instead of
// failing the run, and hard resolution errors degrade to skipped edges.
func WithLenient() Option {
	return func(e *Engine) { e.lenient = true }
}

// WithRequestDelay overrides the politeness delay between build environment
// fetches. Zero disables it.
func WithRequestDelay(d time.Duration) Option {
	return func(e *Engine) { e.delay = d }
}

// New creates an Engine. Strict error handling is the default.
func New(
	svc ports.BuildService,
	resolver ports.BinaryResolver,
	log ports.Logger,
	tel ports.Telemetry,
	architecture string,
	opts ...Option,
) *Engine {
	e := &Engine{
		svc:          svc,
		resolver:     resolver,
		log:          log,
		tel:          tel,
		architecture: architecture,
		delay:        defaultRequestDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand runs the worklist to exhaustion and returns the visited set. The
// pop order of the frontier is unspecified; only the final set is a
// contract. Termination is guaranteed on any finite graph, cycles
// included, because a target enters the frontier only while unvisited.
func (e *Engine) Expand(ctx context.Context, start domain.PackageTarget) (*domain.ClosureResult, error) {
	result := domain.NewClosureResult()
	frontier := map[domain.PackageTarget]struct{}{start: {}}

	for len(frontier) > 0 {
		var current domain.PackageTarget
		for t := range frontier {
			current = t
			break
		}
		delete(frontier, current)

		if _, seen := result.Visited[current]; seen {
			continue
		}
		result.Visited[current] = struct{}{}

		if err := e.expand(ctx, current, frontier, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// expand fetches one target's build environment and pushes its resolved,
// unvisited dependencies onto the frontier.
func (e *Engine) expand(
	ctx context.Context,
	current domain.PackageTarget,
	frontier map[domain.PackageTarget]struct{},
	result *domain.ClosureResult,
) error {
	if err := e.pause(ctx); err != nil {
		return err
	}

	e.log.Info("fetching buildenv for " + current.String())
	_, vtx := e.tel.Record(ctx, "expand "+current.String())

	target := domain.BuildTarget{
		Project:      current.Project,
		Repository:   current.Repository,
		Architecture: domain.NewInternedString(e.architecture),
	}
	deps, err := e.svc.BuildEnv(ctx, target, current.Package.String())
	if err != nil {
		vtx.Complete(err)
		if !e.lenient || ctx.Err() != nil {
			return zerr.With(zerr.Wrap(err, "failed to fetch build environment"), "target", current.String())
		}
		e.log.Warn("leaving " + current.String() + " unexpanded: " + err.Error())
		result.Unexpanded = append(result.Unexpanded, current)
		return nil
	}

	for _, dep := range deps {
		edgeProject := dep.Project
		if edgeProject == "" {
			edgeProject = current.Project.String()
		}
		edgeRepo := dep.Repository
		if edgeRepo == "" {
			edgeRepo = current.Repository.String()
		}

		src, err := e.resolver.Resolve(ctx, edgeProject, edgeRepo, dep.Name)
		if err != nil {
			if !e.skippable(ctx, err) {
				vtx.Complete(err)
				return err
			}
			e.log.Warn(fmt.Sprintf("no package found for %s/%s/%s: %v", edgeProject, edgeRepo, dep.Name, err))
			result.UnresolvedEdges++
			continue
		}

		next := domain.NewPackageTarget(edgeProject, edgeRepo, src)
		if _, seen := result.Visited[next]; !seen {
			frontier[next] = struct{}{}
		}
	}

	vtx.Complete(nil)
	return nil
}

// skippable decides whether an edge resolution error degrades to a skipped
// edge. A plain miss always does; harder failures only in lenient mode,
// and never once the context is gone.
func (e *Engine) skippable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	return errors.Is(err, domain.ErrNotFound) || e.lenient
}

func (e *Engine) pause(ctx context.Context) error {
	if e.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(e.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
