package cpio

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bdep/internal/core/domain"
	"go.trai.ch/zerr"
)

// ExtractTo decodes a header download stream into destDir. Every entry must
// be a binary-header entry ("<name>-<checksum>"); the request filter should
// have prevented anything else, so an unexpected name signals an invariant
// violation upstream and aborts with domain.ErrUnsupportedFormat.
func ExtractTo(destDir string, r io.Reader) error {
	dec := NewDecoder(r)
	for {
		entry, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		name, checksum, ok := domain.ParseArchiveEntryName(entry.Name)
		if !ok {
			return zerr.With(domain.ErrUnsupportedFormat, "entry", entry.Name)
		}
		if err := writeEntry(destDir, domain.MirrorFileName(checksum, name), entry.Body); err != nil {
			return err
		}
	}
}

// writeEntry persists one header blob so it becomes visible under its final
// name only after the write completed: write to a temp file in destDir,
// then hard-link it into place.
func writeEntry(destDir, filename string, body []byte) error {
	tmp, err := os.CreateTemp(destDir, ".bdep-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrIOFailure.Error())
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Best effort cleanup

	if _, err := tmp.Write(body); err != nil {
		tmp.Close() //nolint:errcheck,gosec // Write error takes precedence
		return zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "file", filename)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "file", filename)
	}

	if err := os.Link(tmpName, filepath.Join(destDir, filename)); err != nil {
		// Another process holding the directory earlier may have left the
		// same header; identical checksum means identical content.
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "file", filename)
	}
	return nil
}
