package python

import (
	"github.com/matzehuels/depscan/pkg/deps"
	"github.com/matzehuels/depscan/pkg/integrations"
	"github.com/matzehuels/depscan/pkg/integrations/pypi"
)

// Language checks Python dependencies against PyPI.
// Supports requirements.txt manifest files.
var Language = &deps.Language{
	Ecosystem:    deps.PyPI,
	Title:        "Python",
	ManifestFile: "requirements.txt",
	NewManifest:  newManifest,
	NewRegistry:  newRegistry,
}

func newManifest() deps.ManifestParser { return &Requirements{} }

func newRegistry(opts integrations.Options) deps.Registry {
	return pypi.NewClient(opts)
}
