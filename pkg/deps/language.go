package deps

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/depscan/pkg/integrations"
)

// Language describes one supported ecosystem: where its manifest lives,
// how to parse it and which registry answers version lookups.
type Language struct {
	Ecosystem    Ecosystem
	Title        string // Display name used in report headers (e.g., "NPM")
	ManifestFile string // Manifest file name expected in the project root
	NewManifest  func() ManifestParser
	NewRegistry  func(opts integrations.Options) Registry
}

// Manifest returns the manifest path inside dir and whether a regular file
// exists there.
func (l *Language) Manifest(dir string) (string, bool) {
	path := filepath.Join(dir, l.ManifestFile)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path, false
	}
	return path, true
}

// Registry builds the language's registry client.
func (l *Language) Registry(opts integrations.Options) Registry {
	return l.NewRegistry(opts)
}
