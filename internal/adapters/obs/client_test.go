package obs_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/bdep/internal/adapters/obs"
	"go.trai.ch/bdep/internal/core/domain"
)

const listingXML = `<binaryversionlist>
  <binary name="alsa-lib.rpm" hdrmd5="d41d8cd98f00b204e9800998ecf8427e"/>
  <binary name="glibc.rpm" hdrmd5="0123456789abcdef0123456789abcdef"/>
</binaryversionlist>`

const depInfoXML = `<builddepinfo>
  <package name="glibc">
    <pkgdep>gcc</pkgdep>
    <subpkg>glibc</subpkg>
    <subpkg>glibc-devel</subpkg>
  </package>
</builddepinfo>`

const buildEnvXML = `<buildinfo>
  <bdep project="SUSE:SLE-15-SP5:GA" repository="standard" name="glibc-devel"/>
  <bdep project="SUSE:SLE-15-SP5:GA" repository="standard" name="gcc"/>
</buildinfo>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *obs.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := obs.NewClient(srv.URL)
	require.NoError(t, err)
	return client
}

func TestBinaryList(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, listingXML)
	})

	target := domain.NewBuildTarget("SUSE:SLE-15-SP5:GA", "standard", "x86_64")
	binaries, err := client.BinaryList(context.Background(), target)
	require.NoError(t, err)

	require.Equal(t, "/build/SUSE:SLE-15-SP5:GA/standard/x86_64/_repository", gotPath)
	require.Contains(t, gotQuery, "view=binaryversions")
	require.Contains(t, gotQuery, "nometa=1")

	require.Equal(t, []domain.BinaryInfo{
		{Name: "alsa-lib.rpm", HdrMD5: "d41d8cd98f00b204e9800998ecf8427e"},
		{Name: "glibc.rpm", HdrMD5: "0123456789abcdef0123456789abcdef"},
	}, binaries)
}

func TestBuildDepInfo(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, depInfoXML)
	})

	target := domain.NewBuildTarget("SUSE:SLE-15-SP5:GA", "standard", "x86_64")
	packages, err := client.BuildDepInfo(context.Background(), target)
	require.NoError(t, err)

	require.Equal(t, "/build/SUSE:SLE-15-SP5:GA/standard/x86_64/_builddepinfo", gotPath)
	require.Equal(t, []domain.PackageDeps{
		{Name: "glibc", PkgDeps: []string{"gcc"}, SubPackages: []string{"glibc", "glibc-devel"}},
	}, packages)
}

func TestBuildEnv(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, buildEnvXML)
	})

	target := domain.NewBuildTarget("SUSE:SLE-15-SP5:GA", "standard", "x86_64")
	deps, err := client.BuildEnv(context.Background(), target, "alsa")
	require.NoError(t, err)

	require.Equal(t, "/build/SUSE:SLE-15-SP5:GA/standard/x86_64/alsa/_buildenv", gotPath)
	require.Len(t, deps, 2)
	require.Equal(t, domain.BuildDep{
		Project:    "SUSE:SLE-15-SP5:GA",
		Repository: "standard",
		Name:       "glibc-devel",
	}, deps[0])
}

func TestDownloadHeadersQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "cpioheaders", r.URL.Query().Get("view"))
		require.Equal(t, []string{"alsa-lib", "glibc"}, r.URL.Query()["binary"])
		_, _ = io.WriteString(w, "stream")
	})

	target := domain.NewBuildTarget("prj", "standard", "x86_64")
	body, err := client.DownloadHeaders(context.Background(), target, []string{"alsa-lib", "glibc"})
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Equal(t, "stream", string(data))
}

func TestHTTPErrorIsRemoteUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	target := domain.NewBuildTarget("prj", "standard", "x86_64")
	_, err := client.BinaryList(context.Background(), target)
	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestBasicAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "builder", user)
		require.Equal(t, "secret", pass)
		_, _ = io.WriteString(w, listingXML)
	}))
	t.Cleanup(srv.Close)

	client, err := obs.NewClient(srv.URL, obs.WithBasicAuth("builder", "secret"))
	require.NoError(t, err)

	target := domain.NewBuildTarget("prj", "standard", "x86_64")
	_, err = client.BinaryList(context.Background(), target)
	require.NoError(t, err)
}
