package python

import (
	"os"
	"strings"

	"github.com/matzehuels/depscan/pkg/deps"
	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/integrations"
	"github.com/matzehuels/depscan/pkg/version"
)

const pinSeparator = "=="

// Requirements parses pip requirements files. Only exact pins
// ("name==version") are read; other lines are ignored.
type Requirements struct{}

func (r *Requirements) Type() string { return "requirements.txt" }

// Parse returns the pinned requirements in file order. When a project is
// pinned more than once the first pin wins.
func (r *Requirements) Parse(path string) ([]deps.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, depserr.Wrap(depserr.ErrCodeManifestParse, err, "read %s", path)
	}

	seen := make(map[string]bool)
	result := []deps.Dependency{}

	for line := range strings.Lines(string(data)) {
		dep, ok := parseLine(line)
		if !ok {
			continue
		}
		key := integrations.NormalizePkgName(dep.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, dep)
	}
	return result, nil
}

// parseLine extracts a pinned requirement from one line of a requirements
// file. Blank lines, comments and anything that does not split into exactly
// two non-empty parts around "==" are rejected.
func parseLine(line string) (deps.Dependency, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return deps.Dependency{}, false
	}
	if i := strings.Index(line, " #"); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}

	parts := strings.Split(line, pinSeparator)
	if len(parts) != 2 {
		return deps.Dependency{}, false
	}
	name, pinned := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if name == "" || pinned == "" {
		return deps.Dependency{}, false
	}
	return deps.Dependency{
		Name:       name,
		Constraint: pinned,
		Version:    version.Normalize(pinned),
	}, true
}
