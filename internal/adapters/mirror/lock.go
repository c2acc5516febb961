package mirror

import (
	"os"

	"go.trai.ch/bdep/internal/core/domain"
	"go.trai.ch/bdep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// lockFileName is the sentinel file carrying the advisory lock. Mirroring a
// destination directory is mutually exclusive across processes for the full
// duration of the operation; concurrent callers queue on this lock.
const lockFileName = ".lock"

// acquireLock takes an exclusive flock on path, blocking until it is held.
// The non-blocking attempt first only serves to log that we are waiting.
func acquireLock(path string, log ports.Logger) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // Lock sentinel inside the cache dir
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrIOFailure.Error())
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		log.Info(path + " is locked, waiting...")
		for {
			err = unix.Flock(int(f.Fd()), unix.LOCK_EX)
			if err != unix.EINTR {
				break
			}
		}
		if err != nil {
			f.Close() //nolint:errcheck,gosec // Lock error takes precedence
			return nil, zerr.With(zerr.Wrap(err, domain.ErrIOFailure.Error()), "lock", path)
		}
		log.Info("lock acquired")
	}
	return f, nil
}

// releaseLock drops the flock and closes the sentinel.
func releaseLock(f *os.File) {
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	_ = f.Close()
}
