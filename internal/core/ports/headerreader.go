package ports

import "go.trai.ch/bdep/internal/core/domain"

// HeaderReader reads the structured metadata embedded in one mirrored
// binary header blob.
//
//go:generate mockgen -source=headerreader.go -destination=mocks/mock_headerreader.go -package=mocks
type HeaderReader interface {
	// ReadHeader opens the header blob at path and returns its declared
	// name, build timestamp and origin descriptor.
	ReadHeader(path string) (*domain.HeaderInfo, error)
}
