package domain

import (
	"net/url"
	"path"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// HeaderInfo is the structured metadata read from one mirrored binary
// header: the binary's declared name, its build timestamp and the origin
// descriptor identifying the exact source build.
type HeaderInfo struct {
	Name      string
	BuildTime time.Time
	Origin    string
}

// Origin identifies the source build a binary came from, parsed out of the
// URL-shaped origin descriptor (disturl). A binary built in one project may
// be consumed from a different, linked project under the same name, which
// is why both the origin project and the consuming project get a resolver
// cache entry.
type Origin struct {
	Project  InternedString
	Package  InternedString
	Revision string
}

// ErrMalformedOrigin is returned when an origin descriptor cannot be parsed.
var ErrMalformedOrigin = zerr.New("malformed origin descriptor")

// ParseOrigin parses an origin descriptor of the shape
// "obs://<instance>/<project>/<repository>/<revision>-<package>". A
// multibuild flavor suffix (":flavor") on the package is stripped.
func ParseOrigin(descriptor string) (Origin, error) {
	u, err := url.Parse(descriptor)
	if err != nil {
		return Origin{}, zerr.With(zerr.Wrap(err, ErrMalformedOrigin.Error()), "descriptor", descriptor)
	}

	base := path.Base(u.Path)
	revision, pkg, found := strings.Cut(base, "-")
	if !found || revision == "" || pkg == "" {
		return Origin{}, zerr.With(ErrMalformedOrigin, "descriptor", descriptor)
	}
	pkg, _, _ = strings.Cut(pkg, ":")

	project := path.Base(path.Dir(path.Dir(u.Path)))
	if project == "." || project == "/" || project == "" {
		return Origin{}, zerr.With(ErrMalformedOrigin, "descriptor", descriptor)
	}

	return Origin{
		Project:  NewInternedString(project),
		Package:  NewInternedString(pkg),
		Revision: revision,
	}, nil
}
