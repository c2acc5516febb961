package domain

import (
	"regexp"
	"strings"
)

// archiveEntryRE matches the names of binary-header entries inside a
// download stream: "<binary>-<32 hex digit header checksum>".
var archiveEntryRE = regexp.MustCompile(`^([^/]+)-([0-9a-f]{32})$`)

// ParseArchiveEntryName splits a download-stream entry name into the binary
// name and its header checksum. ok is false for names that do not follow
// the binary-entry pattern.
func ParseArchiveEntryName(entry string) (name, checksum string, ok bool) {
	m := archiveEntryRE.FindStringSubmatch(entry)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// MirrorFileName returns the on-disk name of a mirrored header blob. The
// checksum is part of the identity: the same binary name with a different
// build produces a different file, so entries replace rather than silently
// overwrite.
func MirrorFileName(checksum, name string) string {
	return checksum + "-" + name + ".rpm"
}

// ParseMirrorFileName splits a mirror cache file name back into checksum and
// binary name. ok is false for files that are not mirror entries (the lock
// sentinel, listing fingerprint, temp files).
func ParseMirrorFileName(filename string) (checksum, name string, ok bool) {
	base, found := strings.CutSuffix(filename, ".rpm")
	if !found {
		return "", "", false
	}
	checksum, name, found = strings.Cut(base, "-")
	if !found || len(checksum) != 32 {
		return "", "", false
	}
	return checksum, name, true
}
