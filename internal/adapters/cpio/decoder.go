// Package cpio decodes and encodes the CPIO "new ASCII" archive streams the
// build service uses to deliver binary metadata headers.
package cpio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/bdep/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// magic identifies the "new ASCII" (newc) CPIO format.
	magic = "070701"

	// headerSize is the fixed header record: the 6 byte magic plus 13
	// ASCII-hex fields of 8 bytes each.
	headerSize = 110

	// TrailerName is the sentinel entry confirming end of stream.
	TrailerName = "TRAILER!!!"

	// errorsName is the reserved entry carrying a service error message
	// instead of package payload.
	errorsName = ".errors"
)

// Field offsets inside the header record. Only filesize and namesize are
// consumed; the remaining fields (inode, mode, owner, timestamps, device
// numbers, checksum) carry nothing for header-only archives.
const (
	filesizeOff = 6 + 6*8
	namesizeOff = 6 + 11*8
)

// Entry is one decoded archive member.
type Entry struct {
	Name string
	Body []byte
}

// Decoder reads a CPIO stream entry by entry. It is a single forward pass:
// once the trailer has been seen the decoder is exhausted and cannot be
// restarted.
type Decoder struct {
	r    io.Reader
	off  int64
	done bool
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next returns the next archive entry. It returns io.EOF after the trailer,
// domain.ErrUnsupportedFormat on any layout violation and
// domain.ErrRemoteArchive when the stream carries a service error entry.
func (d *Decoder) Next() (*Entry, error) {
	if d.done {
		return nil, io.EOF
	}

	var hdr [headerSize]byte
	if err := d.read(hdr[:]); err != nil {
		return nil, zerr.Wrap(err, "failed to read archive header record")
	}
	if string(hdr[:len(magic)]) != magic {
		return nil, zerr.With(domain.ErrUnsupportedFormat, "magic", fmt.Sprintf("%q", hdr[:len(magic)]))
	}

	filesize, err := parseHex(hdr[filesizeOff : filesizeOff+8])
	if err != nil {
		return nil, err
	}
	namesize, err := parseHex(hdr[namesizeOff : namesizeOff+8])
	if err != nil {
		return nil, err
	}
	if namesize < 1 {
		return nil, zerr.With(domain.ErrUnsupportedFormat, "namesize", namesize)
	}

	// The name field is NUL-terminated; the terminator is discarded.
	nameBuf := make([]byte, namesize)
	if err := d.read(nameBuf); err != nil {
		return nil, zerr.Wrap(err, "failed to read archive entry name")
	}
	name := string(nameBuf[:namesize-1])
	if err := d.align(); err != nil {
		return nil, err
	}

	switch name {
	case TrailerName:
		d.done = true
		return nil, d.expectEnd()

	case errorsName:
		body := make([]byte, filesize)
		if err := d.read(body); err != nil {
			return nil, zerr.Wrap(err, "failed to read service error entry")
		}
		return nil, zerr.With(domain.ErrRemoteArchive, "message", strings.TrimSpace(string(body)))

	default:
		body := make([]byte, filesize)
		if err := d.read(body); err != nil {
			return nil, zerr.Wrap(err, "failed to read archive entry body")
		}
		if err := d.align(); err != nil {
			return nil, err
		}
		return &Entry{Name: name, Body: body}, nil
	}
}

// expectEnd verifies nothing follows the trailer.
func (d *Decoder) expectEnd() error {
	var b [1]byte
	switch _, err := io.ReadFull(d.r, b[:]); err {
	case io.EOF:
		return io.EOF
	case nil:
		return zerr.With(domain.ErrUnsupportedFormat, "reason", "data after trailer")
	default:
		return zerr.Wrap(err, "failed to verify end of archive")
	}
}

func (d *Decoder) read(buf []byte) error {
	n, err := io.ReadFull(d.r, buf)
	d.off += int64(n)
	return err
}

// align discards padding up to the next 4 byte boundary. The newc format
// pads both the name and the body.
func (d *Decoder) align() error {
	pad := (4 - d.off%4) % 4
	if pad == 0 {
		return nil
	}
	var buf [3]byte
	if err := d.read(buf[:pad]); err != nil {
		return zerr.Wrap(err, "failed to read alignment padding")
	}
	return nil
}

func parseHex(field []byte) (int64, error) {
	v, err := strconv.ParseInt(string(field), 16, 64)
	if err != nil {
		return 0, zerr.With(domain.ErrUnsupportedFormat, "field", string(field))
	}
	return v, nil
}
