// Package pypi provides an HTTP client for the Python Package Index API.
//
// # Overview
//
// This package looks up the latest release of a project on PyPI
// (https://pypi.org), the official repository for Python packages, using
// the JSON API at /pypi/<project>/json.
//
// # Usage
//
//	client := pypi.NewClient(integrations.Options{})
//
//	latest, err := client.LatestVersion(ctx, "requests")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("requests", latest)
//
// # Name Normalization
//
// Names are normalized per PEP 503 before lookup, so "Flask_Login" and
// "flask-login" resolve to the same project.
package pypi
