// Package ports defines the interfaces between the closure engine and its
// collaborators: the build service API, the mirror cache, the header reader
// and the ambient concerns (logging, telemetry, configuration).
package ports

import (
	"context"
	"io"

	"go.trai.ch/bdep/internal/core/domain"
)

// BuildService is the HTTP+XML API of the build service, reduced to the
// four queries the closure needs.
//
//go:generate mockgen -source=buildservice.go -destination=mocks/mock_buildservice.go -package=mocks
type BuildService interface {
	// BinaryList returns the full binary-header listing of a repository:
	// one (name, header checksum) pair per published binary.
	BinaryList(ctx context.Context, target domain.BuildTarget) ([]domain.BinaryInfo, error)

	// BuildDepInfo returns the dependency-info listing of a repository,
	// including the subpackage-to-package associations the resolver's cheap
	// tier is built from.
	BuildDepInfo(ctx context.Context, target domain.BuildTarget) ([]domain.PackageDeps, error)

	// BuildEnv returns the build environment of one package: the flattened
	// list of binaries that were installed when it was last built.
	BuildEnv(ctx context.Context, target domain.BuildTarget, pkg string) ([]domain.BuildDep, error)

	// DownloadHeaders streams the metadata headers of the named binaries as
	// a CPIO archive. The service limits the request size, so the caller
	// batches the names.
	DownloadHeaders(ctx context.Context, target domain.BuildTarget, binaries []string) (io.ReadCloser, error)
}
