// Package obs implements the build-service API client over HTTP+XML.
package obs

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"

	"go.trai.ch/bdep/internal/core/domain"
	"go.trai.ch/bdep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildService = (*Client)(nil)

// Client talks to one build-service instance.
type Client struct {
	base     *url.URL
	hc       *http.Client
	username string
	password string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests and by
// callers that need custom transport settings.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithBasicAuth sets credentials for the build service.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// NewClient creates a Client for the given API base URL.
func NewClient(apiurl string, opts ...Option) (*Client, error) {
	base, err := url.Parse(apiurl)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid build service URL"), "apiurl", apiurl)
	}
	c := &Client{
		base: base,
		hc:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BinaryList returns the (name, hdrmd5) listing of a repository.
func (c *Client) BinaryList(ctx context.Context, target domain.BuildTarget) ([]domain.BinaryInfo, error) {
	query := url.Values{"view": {"binaryversions"}, "nometa": {"1"}}

	var listing binaryListXML
	err := c.getXML(ctx, &listing, query,
		"build", target.Project.String(), target.Repository.String(), target.Architecture.String(), "_repository")
	if err != nil {
		return nil, err
	}

	binaries := make([]domain.BinaryInfo, 0, len(listing.Binaries))
	for _, b := range listing.Binaries {
		binaries = append(binaries, domain.BinaryInfo{Name: b.Name, HdrMD5: b.HdrMD5})
	}
	return binaries, nil
}

// BuildDepInfo returns the dependency-info listing of a repository,
// including subpackage associations.
func (c *Client) BuildDepInfo(ctx context.Context, target domain.BuildTarget) ([]domain.PackageDeps, error) {
	query := url.Values{"view": {"pkgnames"}}

	var info buildDepInfoXML
	err := c.getXML(ctx, &info, query,
		"build", target.Project.String(), target.Repository.String(), target.Architecture.String(), "_builddepinfo")
	if err != nil {
		return nil, err
	}

	packages := make([]domain.PackageDeps, 0, len(info.Packages))
	for _, p := range info.Packages {
		packages = append(packages, domain.PackageDeps{
			Name:        p.Name,
			PkgDeps:     p.PkgDeps,
			SubPackages: p.SubPkgs,
		})
	}
	return packages, nil
}

// BuildEnv returns the build environment of one package.
func (c *Client) BuildEnv(ctx context.Context, target domain.BuildTarget, pkg string) ([]domain.BuildDep, error) {
	var env buildEnvXML
	err := c.getXML(ctx, &env, nil,
		"build", target.Project.String(), target.Repository.String(), target.Architecture.String(), pkg, "_buildenv")
	if err != nil {
		return nil, err
	}

	deps := make([]domain.BuildDep, 0, len(env.BDeps))
	for _, b := range env.BDeps {
		deps = append(deps, domain.BuildDep{
			Project:    b.Project,
			Repository: b.Repository,
			Name:       b.Name,
		})
	}
	return deps, nil
}

// DownloadHeaders streams the metadata headers of the named binaries as a
// CPIO archive. The caller owns the returned body.
func (c *Client) DownloadHeaders(ctx context.Context, target domain.BuildTarget, binaries []string) (io.ReadCloser, error) {
	query := url.Values{"view": {"cpioheaders"}}
	for _, name := range binaries {
		query.Add("binary", name)
	}
	return c.get(ctx, query,
		"build", target.Project.String(), target.Repository.String(), target.Architecture.String(), "_repository")
}

func (c *Client) getXML(ctx context.Context, v any, query url.Values, segments ...string) error {
	body, err := c.get(ctx, query, segments...)
	if err != nil {
		return err
	}
	defer body.Close() //nolint:errcheck // Read side, best effort

	if err := xml.NewDecoder(body).Decode(v); err != nil {
		return zerr.Wrap(err, "failed to decode build service response")
	}
	return nil
}

func (c *Client) get(ctx context.Context, query url.Values, segments ...string) (io.ReadCloser, error) {
	u := c.base.JoinPath(segments...)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build request")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteUnavailable.Error()), "url", u.Redacted())
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		unavailable := zerr.With(domain.ErrRemoteUnavailable, "status", resp.StatusCode)
		return nil, zerr.With(unavailable, "url", u.Redacted())
	}
	return resp.Body, nil
}
