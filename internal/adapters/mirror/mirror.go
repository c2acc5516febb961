// Package mirror maintains the local cache of binary metadata headers for
// one (project, repository) at a time.
package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bdep/internal/adapters/cpio"
	"go.trai.ch/bdep/internal/core/domain"
	"go.trai.ch/bdep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RepositoryMirror = (*Mirror)(nil)

// batchSize is the fixed download quota per request, matching the build
// service's request-size limit.
const batchSize = 50

// listingFileName stores the fingerprint of the last fully mirrored remote
// listing. It is never trusted on its own: the local file set is diffed
// against the remote listing on every run, and the fingerprint only marks
// an already-in-sync run as cached.
const listingFileName = ".listing"

// Mirror implements ports.RepositoryMirror against a build service.
type Mirror struct {
	svc        ports.BuildService
	log        ports.Logger
	tel        ports.Telemetry
	nameIgnore *regexp.Regexp
}

// New creates a Mirror. nameIgnore is a regular expression excluding binary
// file names from mirroring; empty means domain.DefaultNameIgnore.
func New(svc ports.BuildService, log ports.Logger, tel ports.Telemetry, nameIgnore string) (*Mirror, error) {
	if nameIgnore == "" {
		nameIgnore = domain.DefaultNameIgnore
	}
	re, err := regexp.Compile(nameIgnore)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid name ignore pattern"), "pattern", nameIgnore)
	}
	return &Mirror{
		svc:        svc,
		log:        log,
		tel:        tel,
		nameIgnore: re,
	}, nil
}

// Mirror brings destDir in sync with the remote listing of target. It holds
// the directory lock for the whole operation and releases it on every exit
// path.
func (m *Mirror) Mirror(ctx context.Context, destDir string, target domain.BuildTarget) error {
	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "dir", destDir)
	}

	lock, err := acquireLock(filepath.Join(destDir, lockFileName), m.log)
	if err != nil {
		return err
	}
	defer releaseLock(lock)

	ctx, vtx := m.tel.Record(ctx, "mirror "+target.String())
	cached, err := m.sync(ctx, destDir, target)
	if cached {
		vtx.Cached()
	}
	vtx.Complete(err)
	return err
}

// sync does the actual work under the lock. cached reports that the remote
// listing was unchanged since the last run.
func (m *Mirror) sync(ctx context.Context, destDir string, target domain.BuildTarget) (cached bool, err error) {
	m.log.Info("mirroring " + target.String())

	listing, err := m.svc.BinaryList(ctx, target)
	if err != nil {
		return false, err
	}

	// remote maps the on-disk file name of each wanted header to the bare
	// binary name used in download requests.
	remote := make(map[string]string)
	for _, b := range listing {
		name, found := strings.CutSuffix(b.Name, ".rpm")
		if !found || m.nameIgnore.MatchString(b.Name) {
			continue
		}
		remote[domain.MirrorFileName(b.HdrMD5, name)] = name
	}

	fingerprint := listingFingerprint(remote)
	listingPath := filepath.Join(destDir, listingFileName)

	entries, err := os.ReadDir(destDir)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "dir", destDir)
	}

	var stale []string
	for _, entry := range entries {
		filename := entry.Name()
		if _, _, ok := domain.ParseMirrorFileName(filename); !ok {
			continue
		}
		if _, wanted := remote[filename]; wanted {
			delete(remote, filename) // already downloaded
		} else {
			stale = append(stale, filename)
		}
	}

	// The cache heals itself: a header deleted from an otherwise-synced
	// directory shows up in the diff and is downloaded again, so only a
	// run with nothing to delete or fetch may short-circuit as cached.
	if len(stale) == 0 && len(remote) == 0 {
		if prev, err := os.ReadFile(listingPath); err == nil && string(prev) == fingerprint {
			m.log.Debug("listing unchanged for " + target.String())
			return true, nil
		}
	}

	if len(stale) > 0 {
		m.log.Info(fmt.Sprintf("deleting %d stale entries from %s", len(stale), destDir))
		for _, filename := range stale {
			if err := os.Remove(filepath.Join(destDir, filename)); err != nil {
				return false, zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "file", filename)
			}
		}
	}

	if len(remote) > 0 {
		m.log.Info(fmt.Sprintf("downloading %d new headers for %s", len(remote), target.String()))
		if err := m.download(ctx, destDir, target, remote); err != nil {
			return false, err
		}
	}

	if err := os.WriteFile(listingPath, []byte(fingerprint), 0o644); err != nil { //nolint:gosec // Cache metadata
		m.log.Warn("failed to store listing fingerprint: " + err.Error())
	}
	return false, nil
}

func (m *Mirror) download(ctx context.Context, destDir string, target domain.BuildTarget, remote map[string]string) error {
	names := make([]string, 0, len(remote))
	for _, name := range remote {
		names = append(names, name)
	}
	sort.Strings(names)

	for start := 0; start < len(names); start += batchSize {
		end := min(start+batchSize, len(names))

		stream, err := m.svc.DownloadHeaders(ctx, target, names[start:end])
		if err != nil {
			return err
		}
		err = cpio.ExtractTo(destDir, stream)
		stream.Close() //nolint:errcheck,gosec // Extraction error takes precedence
		if err != nil {
			return err
		}
	}
	return nil
}

// listingFingerprint hashes the sorted remote listing. The file names
// already embed the header checksums, so any content change reflects here.
func listingFingerprint(remote map[string]string) string {
	filenames := make([]string, 0, len(remote))
	for filename := range remote {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	h := xxhash.New()
	for _, filename := range filenames {
		_, _ = h.WriteString(filename)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
