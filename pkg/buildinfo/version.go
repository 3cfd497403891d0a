// Package buildinfo exposes the version stamped into a depscan binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/depscan/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/depscan/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/depscan/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/depscan
package buildinfo

import (
	"fmt"
	"strings"
)

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the source revision.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String returns the build information as "key: value" lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// UserAgent returns the User-Agent product token sent to registries,
// e.g. "depscan/0.3.0". The leading "v" of a tag is dropped.
func UserAgent() string {
	return "depscan/" + strings.TrimPrefix(Version, "v")
}
