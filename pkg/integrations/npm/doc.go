// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package looks up the latest published version of a package in the
// npm registry (https://registry.npmjs.org), the package manager for
// JavaScript. Any npm-compatible registry (Verdaccio, a corporate mirror)
// can be targeted through [integrations.Options.BaseURL].
//
// # Usage
//
//	client := npm.NewClient(integrations.Options{})
//
//	latest, err := client.LatestVersion(ctx, "express")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("express", latest)
//
// # Version Selection
//
// The client reports the version tagged as "latest" in dist-tags. Other
// tags (next, beta) are ignored.
//
// # Scoped Packages
//
// Scoped names such as "@types/node" are requested as "@types%2fnode".
//
// [integrations.Options.BaseURL]: github.com/matzehuels/depscan/pkg/integrations.Options
package npm
