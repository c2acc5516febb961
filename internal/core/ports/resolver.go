package ports

import "context"

// BinaryResolver maps a binary package name to its owning source package.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type BinaryResolver interface {
	// Resolve returns the source package owning the named binary in the
	// given project. The repository is where the binary was consumed from;
	// it drives cache population on a miss. Returns domain.ErrNotFound
	// when no mapping exists after all tiers.
	Resolve(ctx context.Context, project, repository, binary string) (string, error)
}
