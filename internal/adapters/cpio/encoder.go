package cpio

import (
	"fmt"
	"io"

	"go.trai.ch/zerr"
)

// Encoder writes a CPIO "new ASCII" stream. It exists for tests and local
// tooling; the build service is the only producer in production. An encoded
// stream decodes back to the exact same (name, body) sequence.
type Encoder struct {
	w   io.Writer
	off int64
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteEntry appends one entry to the stream.
func (e *Encoder) WriteEntry(name string, body []byte) error {
	if err := e.writeHeader(name, int64(len(body))); err != nil {
		return err
	}
	if err := e.write(body); err != nil {
		return err
	}
	return e.pad()
}

// Close terminates the stream with the trailer entry. The encoder must not
// be used afterwards.
func (e *Encoder) Close() error {
	return e.writeHeader(TrailerName, 0)
}

func (e *Encoder) writeHeader(name string, filesize int64) error {
	hdr := fmt.Sprintf("%s%08x%08x%08x%08x%08x%08x%08x%08x%08x%08x%08x%08x%08x",
		magic,
		0,              // inode
		0,              // mode
		0,              // uid
		0,              // gid
		1,              // nlink
		0,              // mtime
		filesize,       // filesize
		0, 0,           // dev major/minor
		0, 0,           // rdev major/minor
		len(name)+1,    // namesize, including NUL
		0,              // checksum (unused in newc)
	)
	if err := e.write([]byte(hdr)); err != nil {
		return err
	}
	if err := e.write(append([]byte(name), 0)); err != nil {
		return err
	}
	return e.pad()
}

func (e *Encoder) write(buf []byte) error {
	n, err := e.w.Write(buf)
	e.off += int64(n)
	if err != nil {
		return zerr.Wrap(err, "failed to write archive data")
	}
	return nil
}

func (e *Encoder) pad() error {
	pad := (4 - e.off%4) % 4
	if pad == 0 {
		return nil
	}
	return e.write(make([]byte, pad))
}
