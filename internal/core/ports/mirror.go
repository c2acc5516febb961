package ports

import (
	"context"

	"go.trai.ch/bdep/internal/core/domain"
)

// RepositoryMirror maintains a local, checksum-addressed cache of the
// binary metadata headers of one repository.
//
//go:generate mockgen -source=mirror.go -destination=mocks/mock_mirror.go -package=mocks
type RepositoryMirror interface {
	// Mirror brings destDir in sync with the remote binary listing of the
	// target: stale entries are deleted, missing ones downloaded. The
	// operation holds an exclusive advisory lock on destDir for its full
	// duration, so concurrent callers queue rather than race.
	Mirror(ctx context.Context, destDir string, target domain.BuildTarget) error
}
