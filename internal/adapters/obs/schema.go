package obs

import "encoding/xml"

// binaryListXML is the _repository listing (view=binaryversions).
type binaryListXML struct {
	XMLName  xml.Name    `xml:"binaryversionlist"`
	Binaries []binaryXML `xml:"binary"`
}

type binaryXML struct {
	Name   string `xml:"name,attr"`
	HdrMD5 string `xml:"hdrmd5,attr"`
}

// buildDepInfoXML is the _builddepinfo listing (view=pkgnames).
type buildDepInfoXML struct {
	XMLName  xml.Name        `xml:"builddepinfo"`
	Packages []depPackageXML `xml:"package"`
}

type depPackageXML struct {
	Name    string   `xml:"name,attr"`
	PkgDeps []string `xml:"pkgdep"`
	SubPkgs []string `xml:"subpkg"`
}

// buildEnvXML is the _buildenv document. Only the bdep elements matter;
// the root element name is not enforced so both buildinfo and buildenv
// roots decode.
type buildEnvXML struct {
	BDeps []bdepXML `xml:"bdep"`
}

type bdepXML struct {
	Project    string `xml:"project,attr"`
	Repository string `xml:"repository,attr"`
	Name       string `xml:"name,attr"`
}
