// Package pkg holds the libraries behind the depscan command.
//
// # Overview
//
// depscan reads the dependency manifests of a project, asks each package
// registry for the latest published release and reports the dependencies
// that are behind. The libraries are organized as:
//
//  1. [deps] - Ecosystem descriptors and manifest parsers
//  2. [integrations] - Registry API clients (npm, PyPI)
//  3. [version] - Semantic version normalization and comparison
//  4. [scan] - Orchestration of a scan into a [scan.Report]
//  5. [report] - Text, JSON and YAML report writers
//
// Cross-cutting packages are [errors] (coded errors), [observability]
// (scan and HTTP hooks) and [buildinfo].
//
// # Data Flow
//
//	package.json / requirements.txt
//	         ↓
//	    [deps] manifest parser
//	         ↓
//	    [scan] runner ──→ [integrations] latest version
//	         ↓                 ↓
//	    [version] comparison
//	         ↓
//	    [report] writer
//
// # Quick Start
//
//	runner := scan.NewRunner(languages.All, nil, scan.Options{}, nil)
//	rep, err := runner.Scan(ctx, "./my-project")
//	if err != nil {
//	    return err
//	}
//	return report.Write(os.Stdout, rep, report.FormatText)
//
// [deps]: github.com/matzehuels/depscan/pkg/deps
// [integrations]: github.com/matzehuels/depscan/pkg/integrations
// [version]: github.com/matzehuels/depscan/pkg/version
// [scan]: github.com/matzehuels/depscan/pkg/scan
// [scan.Report]: github.com/matzehuels/depscan/pkg/scan.Report
// [report]: github.com/matzehuels/depscan/pkg/report
// [errors]: github.com/matzehuels/depscan/pkg/errors
// [observability]: github.com/matzehuels/depscan/pkg/observability
// [buildinfo]: github.com/matzehuels/depscan/pkg/buildinfo
package pkg
