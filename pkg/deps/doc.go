// Package deps defines the building blocks of a dependency scan: ecosystems,
// declared dependencies, manifest parsers and registry lookups.
//
// # Overview
//
// depscan checks the dependencies a project declares against the latest
// versions published in their registries:
//
//   - Manifest files (package.json, requirements.txt) are parsed into
//     ordered [Dependency] lists by a [ManifestParser]
//   - A [Registry] returns the latest published version of a package
//   - A [Language] ties one ecosystem's manifest file to its registry
//
// This package provides the core abstractions; the orchestration lives in
// [scan].
//
// # Architecture
//
// The system has three layers:
//
//  1. Integrations ([integrations]): HTTP clients for each registry API
//  2. Language definitions (this package and its subpackages)
//  3. Scan runner ([scan]) and CLI ([internal/cli])
//
// # Manifest Parsing
//
// Parsers return dependencies in the order they are declared, with the
// declared constraint kept verbatim and a normalized [Dependency.Version]
// suitable for comparison:
//
//	parser := javascript.Language.NewManifest()
//	list, err := parser.Parse("package.json")
//
// # Supported Languages
//
// Each language has a subpackage with its [Language] definition:
//
//   - [javascript]: npm, package.json "dependencies"
//   - [python]: PyPI, requirements.txt pinned with ==
//
// The [languages] package lists them in scan order.
//
// # Testing
//
// [MockRegistry] is a gomock double for [Registry], regenerated with
// go generate.
//
// [integrations]: github.com/matzehuels/depscan/pkg/integrations
// [scan]: github.com/matzehuels/depscan/pkg/scan
// [internal/cli]: github.com/matzehuels/depscan/internal/cli
// [javascript]: github.com/matzehuels/depscan/pkg/deps/javascript
// [python]: github.com/matzehuels/depscan/pkg/deps/python
// [languages]: github.com/matzehuels/depscan/pkg/deps/languages
package deps
