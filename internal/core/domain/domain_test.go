package domain_test

import (
	"testing"
	"time"

	"go.trai.ch/bdep/internal/core/domain"
)

func TestParseArchiveEntryName(t *testing.T) {
	name, sum, ok := domain.ParseArchiveEntryName("glibc-devel-d41d8cd98f00b204e9800998ecf8427e")
	if !ok {
		t.Fatal("expected binary entry to match")
	}
	if name != "glibc-devel" {
		t.Errorf("name = %q, want glibc-devel", name)
	}
	if sum != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("checksum = %q", sum)
	}

	for _, entry := range []string{
		"TRAILER!!!",
		".errors",
		"glibc-devel",
		"glibc-devel-d41d8cd9",
		"dir/glibc-d41d8cd98f00b204e9800998ecf8427e",
	} {
		if _, _, ok := domain.ParseArchiveEntryName(entry); ok {
			t.Errorf("%q unexpectedly matched the binary entry pattern", entry)
		}
	}
}

func TestMirrorFileNameRoundTrip(t *testing.T) {
	filename := domain.MirrorFileName("d41d8cd98f00b204e9800998ecf8427e", "alsa-lib")
	if filename != "d41d8cd98f00b204e9800998ecf8427e-alsa-lib.rpm" {
		t.Fatalf("unexpected file name %q", filename)
	}

	sum, name, ok := domain.ParseMirrorFileName(filename)
	if !ok || sum != "d41d8cd98f00b204e9800998ecf8427e" || name != "alsa-lib" {
		t.Fatalf("ParseMirrorFileName(%q) = %q, %q, %v", filename, sum, name, ok)
	}

	for _, filename := range []string{".lock", ".listing", "notanrpm.txt", "short-name.rpm"} {
		if _, _, ok := domain.ParseMirrorFileName(filename); ok {
			t.Errorf("%q unexpectedly parsed as a mirror entry", filename)
		}
	}
}

func TestParseOrigin(t *testing.T) {
	origin, err := domain.ParseOrigin("obs://build.opensuse.org/SUSE:SLE-15-SP5:GA/standard/8f7ab1c-glibc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := origin.Project.String(); got != "SUSE:SLE-15-SP5:GA" {
		t.Errorf("project = %q", got)
	}
	if got := origin.Package.String(); got != "glibc" {
		t.Errorf("package = %q", got)
	}
	if origin.Revision != "8f7ab1c" {
		t.Errorf("revision = %q", origin.Revision)
	}
}

func TestParseOrigin_MultibuildFlavor(t *testing.T) {
	origin, err := domain.ParseOrigin("obs://build.opensuse.org/openSUSE:Factory/standard/ab12-python-numpy:test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := origin.Package.String(); got != "python-numpy" {
		t.Errorf("package = %q, want multibuild flavor stripped", got)
	}
}

func TestParseOrigin_Malformed(t *testing.T) {
	for _, descriptor := range []string{"", "obs://host", "obs://host/prj/repo/norevision"} {
		if _, err := domain.ParseOrigin(descriptor); err == nil {
			t.Errorf("ParseOrigin(%q) succeeded, want error", descriptor)
		}
	}
}

func TestClosureResultSorted(t *testing.T) {
	r := domain.NewClosureResult()
	a := domain.NewPackageTarget("prj", "standard", "zlib")
	b := domain.NewPackageTarget("prj", "standard", "alsa")
	r.Visited[a] = struct{}{}
	r.Visited[b] = struct{}{}

	sorted := r.Sorted()
	if len(sorted) != 2 || sorted[0] != b || sorted[1] != a {
		t.Fatalf("unexpected order: %v", sorted)
	}
	if !r.Complete() {
		t.Error("expected closure with no failures to be complete")
	}

	r.UnresolvedEdges++
	if r.Complete() {
		t.Error("closure with unresolved edges must not report complete")
	}
}

func TestHeaderInfoZeroValue(t *testing.T) {
	var info domain.HeaderInfo
	if !info.BuildTime.Equal(time.Time{}) {
		t.Error("zero HeaderInfo must have zero build time")
	}
}
