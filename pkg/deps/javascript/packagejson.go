package javascript

import (
	"encoding/json"
	"os"

	"github.com/iancoleman/orderedmap"

	"github.com/matzehuels/depscan/pkg/deps"
	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/version"
)

const dependenciesField = "dependencies"

// PackageJSON parses package.json files. Only the "dependencies" field is
// read; devDependencies and peerDependencies are not checked.
type PackageJSON struct{}

func (p *PackageJSON) Type() string { return "package.json" }

// Parse returns the runtime dependencies in the order they appear in the file.
func (p *PackageJSON) Parse(path string) ([]deps.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, depserr.Wrap(depserr.ErrCodeManifestParse, err, "read %s", path)
	}

	root := orderedmap.New()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, depserr.Wrap(depserr.ErrCodeManifestParse, err, "parse %s", path)
	}

	raw, ok := root.Get(dependenciesField)
	if !ok || raw == nil {
		return []deps.Dependency{}, nil
	}

	var fields orderedmap.OrderedMap
	switch v := raw.(type) {
	case orderedmap.OrderedMap:
		fields = v
	case *orderedmap.OrderedMap:
		fields = *v
	default:
		return nil, depserr.New(depserr.ErrCodeManifestParse,
			"parse %s: %q must be an object, got %T", path, dependenciesField, raw)
	}

	result := make([]deps.Dependency, 0, len(fields.Keys()))
	for _, name := range fields.Keys() {
		val, _ := fields.Get(name)
		constraint, ok := val.(string)
		if !ok {
			return nil, depserr.New(depserr.ErrCodeManifestParse,
				"parse %s: version of %q must be a string, got %T", path, name, val)
		}
		result = append(result, deps.Dependency{
			Name:       name,
			Constraint: constraint,
			Version:    version.Normalize(constraint),
		})
	}
	return result, nil
}
