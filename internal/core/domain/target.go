// Package domain contains the core domain models for build-dependency
// closure expansion: build targets, package targets and the binary-to-source
// mapping keys used by the resolver cache.
package domain

// BuildTarget identifies one build configuration in the build service.
// It is an immutable value type and is used as a map key.
type BuildTarget struct {
	Project      InternedString
	Repository   InternedString
	Architecture InternedString
}

// NewBuildTarget creates a BuildTarget from plain strings.
func NewBuildTarget(project, repository, architecture string) BuildTarget {
	return BuildTarget{
		Project:      NewInternedString(project),
		Repository:   NewInternedString(repository),
		Architecture: NewInternedString(architecture),
	}
}

func (t BuildTarget) String() string {
	return t.Project.String() + "/" + t.Repository.String() + "/" + t.Architecture.String()
}

// PackageTarget identifies one source package within a build target's
// repository. It is the unit of the closure's visited and frontier sets.
type PackageTarget struct {
	Project    InternedString `json:"project"`
	Repository InternedString `json:"repository"`
	Package    InternedString `json:"package"`
}

// NewPackageTarget creates a PackageTarget from plain strings.
func NewPackageTarget(project, repository, pkg string) PackageTarget {
	return PackageTarget{
		Project:    NewInternedString(project),
		Repository: NewInternedString(repository),
		Package:    NewInternedString(pkg),
	}
}

func (t PackageTarget) String() string {
	return t.Project.String() + "/" + t.Repository.String() + "/" + t.Package.String()
}

// BinaryKey keys the resolver's binary-to-source cache. A binary name may
// legitimately map to different source packages in different projects
// (inherited and linked packages), so the key carries the project.
type BinaryKey struct {
	Project InternedString
	Name    InternedString
}

// NewBinaryKey creates a BinaryKey from plain strings.
func NewBinaryKey(project, name string) BinaryKey {
	return BinaryKey{
		Project: NewInternedString(project),
		Name:    NewInternedString(name),
	}
}

func (k BinaryKey) String() string {
	return k.Project.String() + "/" + k.Name.String()
}

// BinaryInfo is one entry of a remote binary listing: the binary file name
// and the MD5 checksum of its metadata header.
type BinaryInfo struct {
	Name   string
	HdrMD5 string
}

// BuildDep is one edge of a package's build environment: a binary that was
// installed when the package was last built, together with the project and
// repository it was taken from.
type BuildDep struct {
	Project    string
	Repository string
	Name       string
}

// PackageDeps is one entry of a repository's dependency-info listing: a
// source package, the packages it build-requires and the binary subpackages
// it produces.
type PackageDeps struct {
	Name        string
	PkgDeps     []string
	SubPackages []string
}
