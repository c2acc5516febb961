// Package rpmmeta reads the structured metadata of mirrored binary header
// blobs. The blobs carry the RPM lead, signature and header sections but no
// payload, which is all the underlying reader needs.
package rpmmeta

import (
	"github.com/cavaliergopher/rpm"
	"go.trai.ch/bdep/internal/core/domain"
	"go.trai.ch/bdep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HeaderReader = (*Reader)(nil)

// tagDistURL is the RPM header tag carrying the origin descriptor.
const tagDistURL = 1123

// Reader implements ports.HeaderReader on top of the rpm library.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadHeader reads the declared name, build timestamp and origin descriptor
// from the header blob at path.
func (r *Reader) ReadHeader(path string) (*domain.HeaderInfo, error) {
	pkg, err := rpm.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read package header"), "path", path)
	}

	return &domain.HeaderInfo{
		Name:      pkg.Name(),
		BuildTime: pkg.BuildTime(),
		Origin:    pkg.Header.GetTag(tagDistURL).String(),
	}, nil
}
