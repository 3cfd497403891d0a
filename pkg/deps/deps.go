package deps

// Ecosystem identifies a package ecosystem and its registry.
type Ecosystem string

const (
	NPM  Ecosystem = "npm"  // JavaScript packages from package.json
	PyPI Ecosystem = "pypi" // Python packages from requirements.txt
)

func (e Ecosystem) String() string { return string(e) }

// Dependency is one dependency declared in a manifest.
type Dependency struct {
	Name       string `json:"name" yaml:"name"`             // Package name as written in the manifest
	Constraint string `json:"constraint" yaml:"constraint"` // Declared version string (e.g. "^1.3.0")
	Version    string `json:"version" yaml:"version"`       // Constraint with range prefixes stripped (e.g. "1.3.0")
}
