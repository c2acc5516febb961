// Package resolver maps binary package names to their owning source
// packages, the many-to-one relation the build service does not report
// directly.
package resolver

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/bdep/internal/core/domain"
	"go.trai.ch/bdep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.BinaryResolver = (*Resolver)(nil)

// MirrorDir returns the cache directory holding the mirrored headers of
// one (project, repository) under cacheRoot.
func MirrorDir(cacheRoot string, target domain.BuildTarget) string {
	return filepath.Join(cacheRoot, target.Project.String(), target.Repository.String())
}

// Resolver implements a two-tier binary-to-source lookup. The cheap tier is
// built from dependency-info listings; the expensive tier mirrors a whole
// repository and indexes every header blob. All cache state lives in the
// Resolver value and is append-only for its lifetime. A Resolver may be
// shared by concurrent closure runs; population of each tier is guarded by
// singleflight so shared misses are fetched once.
type Resolver struct {
	svc     ports.BuildService
	mirror  ports.RepositoryMirror
	headers ports.HeaderReader
	log     ports.Logger

	cacheRoot    string
	architecture string

	group singleflight.Group

	mu          sync.RWMutex
	bin2pkg     map[domain.BinaryKey]domain.InternedString
	depinfoDone map[domain.BuildTarget]struct{}
	mirrorDone  map[string]struct{}
	indexed     map[string]struct{}
}

// New creates a Resolver. cacheRoot is the directory holding the
// per-(project, repository) mirror caches.
func New(
	svc ports.BuildService,
	mirror ports.RepositoryMirror,
	headers ports.HeaderReader,
	log ports.Logger,
	cacheRoot string,
	architecture string,
) *Resolver {
	return &Resolver{
		svc:          svc,
		mirror:       mirror,
		headers:      headers,
		log:          log,
		cacheRoot:    cacheRoot,
		architecture: architecture,
		bin2pkg:      make(map[domain.BinaryKey]domain.InternedString),
		depinfoDone:  make(map[domain.BuildTarget]struct{}),
		mirrorDone:   make(map[string]struct{}),
		indexed:      make(map[string]struct{}),
	}
}

// Resolve returns the source package owning the named binary in project.
// The repository drives cache population on a miss.
func (r *Resolver) Resolve(ctx context.Context, project, repository, binary string) (string, error) {
	key := domain.NewBinaryKey(project, binary)
	if pkg, ok := r.lookup(key); ok {
		return pkg, nil
	}

	target := domain.NewBuildTarget(project, repository, r.architecture)

	// Tier 1: subpackage associations from the dependency-info listing.
	if err := r.ensureDepInfo(ctx, target); err != nil {
		return "", err
	}
	if pkg, ok := r.lookup(key); ok {
		return pkg, nil
	}

	// Tier 2: mirror the repository and index every header blob.
	if err := r.ensureIndexed(ctx, target); err != nil {
		return "", err
	}
	if pkg, ok := r.lookup(key); ok {
		return pkg, nil
	}

	notFound := zerr.With(domain.ErrNotFound, "project", project)
	notFound = zerr.With(notFound, "repository", repository)
	return "", zerr.With(notFound, "binary", binary)
}

func (r *Resolver) lookup(key domain.BinaryKey) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pkg, ok := r.bin2pkg[key]
	return pkg.String(), ok
}

// ensureDepInfo populates the cheap tier for target, once per Resolver
// lifetime.
func (r *Resolver) ensureDepInfo(ctx context.Context, target domain.BuildTarget) error {
	_, err, _ := r.group.Do("depinfo\x00"+target.String(), func() (any, error) {
		r.mu.RLock()
		_, done := r.depinfoDone[target]
		r.mu.RUnlock()
		if done {
			return nil, nil
		}

		packages, err := r.svc.BuildDepInfo(ctx, target)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		for _, pkg := range packages {
			name := domain.NewInternedString(pkg.Name)
			for _, sub := range pkg.SubPackages {
				r.bin2pkg[domain.BinaryKey{Project: target.Project, Name: domain.NewInternedString(sub)}] = name
			}
		}
		r.depinfoDone[target] = struct{}{}
		r.mu.Unlock()
		return nil, nil
	})
	return err
}

// ensureIndexed mirrors target's repository and indexes any header blob not
// yet seen, once per (project, repository) per Resolver lifetime.
func (r *Resolver) ensureIndexed(ctx context.Context, target domain.BuildTarget) error {
	repoKey := target.Project.String() + "/" + target.Repository.String()
	_, err, _ := r.group.Do("mirror\x00"+repoKey, func() (any, error) {
		r.mu.RLock()
		_, done := r.mirrorDone[repoKey]
		r.mu.RUnlock()
		if done {
			return nil, nil
		}

		destDir := MirrorDir(r.cacheRoot, target)
		if err := r.mirror.Mirror(ctx, destDir, target); err != nil {
			return nil, err
		}
		if err := r.indexDir(destDir, target.Project); err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.mirrorDone[repoKey] = struct{}{}
		r.mu.Unlock()
		return nil, nil
	})
	return err
}

// indexDir reads every not-yet-indexed header blob in destDir and records
// its binary name under both the mirrored project and the origin project.
// Unreadable headers are logged and skipped.
func (r *Resolver) indexDir(destDir string, project domain.InternedString) error {
	entries, err := os.ReadDir(destDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "dir", destDir)
	}

	for _, entry := range entries {
		if _, _, ok := domain.ParseMirrorFileName(entry.Name()); !ok {
			continue
		}
		path := filepath.Join(destDir, entry.Name())

		r.mu.RLock()
		_, seen := r.indexed[path]
		r.mu.RUnlock()
		if seen {
			continue
		}

		info, err := r.headers.ReadHeader(path)
		if err != nil {
			r.log.Warn(entry.Name() + ": " + err.Error())
			r.markIndexed(path)
			continue
		}

		origin, err := domain.ParseOrigin(info.Origin)
		if err != nil {
			r.log.Warn(entry.Name() + ": " + err.Error())
			r.markIndexed(path)
			continue
		}

		name := domain.NewInternedString(info.Name)
		r.mu.Lock()
		r.bin2pkg[domain.BinaryKey{Project: project, Name: name}] = origin.Package
		r.bin2pkg[domain.BinaryKey{Project: origin.Project, Name: name}] = origin.Package
		r.indexed[path] = struct{}{}
		r.mu.Unlock()
	}
	return nil
}

func (r *Resolver) markIndexed(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexed[path] = struct{}{}
}
