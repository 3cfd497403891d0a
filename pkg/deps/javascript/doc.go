// Package javascript provides dependency checking for npm packages.
//
// # Overview
//
// This package implements [deps.Language] for JavaScript/Node.js, supporting:
//
//   - latest-version lookups via the [npm] client
//   - package.json manifest parsing
//
// # Manifest Parsing
//
// Parse package.json files:
//
//	parser := javascript.Language.NewManifest()
//	list, _ := parser.Parse("package.json")
//
// Only the "dependencies" object is read, in declaration order. Each value
// must be a version string; "^1.3.0" is normalized to "1.3.0" for comparison
// while the declared text is kept in [deps.Dependency.Constraint]. Values
// that are not plain versions (ranges like ">=1.0.0", tags, git URLs) are
// returned as declared and skipped later by the scan.
//
// [npm]: github.com/matzehuels/depscan/pkg/integrations/npm
// [deps.Language]: github.com/matzehuels/depscan/pkg/deps.Language
// [deps.Dependency.Constraint]: github.com/matzehuels/depscan/pkg/deps.Dependency
package javascript
