// Package buildinfo exposes version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/gophvault/internal/buildinfo.buildVersion=v1.2.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// Info is the build metadata of the running binary.
type Info struct {
	Version string
	Date    string
	Commit  string
}

// Get returns the linked-in build metadata.
func Get() Info {
	return Info{Version: buildVersion, Date: buildDate, Commit: buildCommit}
}

// PrintBuildData writes the build metadata to w, one field per line.
func PrintBuildData(w io.Writer) {
	i := Get()
	fmt.Fprintf(w, "Build version: %s\n", i.Version)
	fmt.Fprintf(w, "Build date: %s\n", i.Date)
	fmt.Fprintf(w, "Build commit: %s\n", i.Commit)
}
