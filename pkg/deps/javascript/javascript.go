package javascript

import (
	"github.com/matzehuels/depscan/pkg/deps"
	"github.com/matzehuels/depscan/pkg/integrations"
	"github.com/matzehuels/depscan/pkg/integrations/npm"
)

// Language checks JavaScript/TypeScript dependencies against npm.
// Supports package.json manifest files.
var Language = &deps.Language{
	Ecosystem:    deps.NPM,
	Title:        "NPM",
	ManifestFile: "package.json",
	NewManifest:  newManifest,
	NewRegistry:  newRegistry,
}

func newManifest() deps.ManifestParser { return &PackageJSON{} }

func newRegistry(opts integrations.Options) deps.Registry {
	return npm.NewClient(opts)
}
