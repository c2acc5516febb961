package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedFormat is returned when an archive stream does not use
	// the expected CPIO "new ASCII" layout, or contains an entry the caller
	// never asked for. It signals a protocol mismatch and is never retried.
	ErrUnsupportedFormat = zerr.New("unsupported archive format")

	// ErrRemoteArchive is returned when the build service reports a failure
	// inside the archive stream itself (the reserved error entry). The fetch
	// that produced it is lost, but the caller may retry the whole mirror
	// operation later.
	ErrRemoteArchive = zerr.New("remote archive error")

	// ErrRemoteUnavailable is returned on transport or HTTP level failures
	// talking to the build service. Retryable.
	ErrRemoteUnavailable = zerr.New("build service unavailable")

	// ErrNotFound is returned when a binary name cannot be resolved to an
	// owning source package after both resolver tiers. The caller skips the
	// dependency edge instead of aborting the run.
	ErrNotFound = zerr.New("binary package not resolvable")

	// ErrIOFailure is returned on local disk errors while maintaining the
	// mirror cache. Fatal.
	ErrIOFailure = zerr.New("local cache I/O failure")
)
