// Package scan checks a project's declared dependencies against the latest
// versions published in their registries.
//
// # Overview
//
// A [Runner] walks the supported languages in order. For each language whose
// manifest exists in the target directory it parses the manifest, looks up
// every dependency in the language's registry and compares the declared
// version with the latest one. The outcome is a [Report] with one [Section]
// per manifest found.
//
//	runner := scan.NewRunner(languages.All, nil, scan.Options{}, logger)
//	report, err := runner.Scan(ctx, ".")
//	for _, e := range report.Outdated() {
//	    fmt.Printf("%s %s -> %s\n", e.Package, e.Current, e.Latest)
//	}
//
// # Failure Handling
//
// A dependency is reported as outdated only when its declared version is
// strictly older than the latest one. Lookups that fail (unknown package,
// unreachable registry) and versions that cannot be compared are logged as
// warnings and recorded in [Section.Skipped]. A manifest that cannot be
// parsed marks its section as failed and does not stop the other
// ecosystems.
//
// # Concurrency
//
// Ecosystems are processed one after the other. Within an ecosystem up to
// [Options.Concurrency] lookups run at once; entries are still reported in
// the order the manifest declares them.
package scan
