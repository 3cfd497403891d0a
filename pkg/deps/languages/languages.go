// Package languages provides the complete list of supported language ecosystems.
//
// This package exists to break import cycles: the individual language packages
// (javascript, python) import pkg/deps, so pkg/deps cannot import them back.
// Instead, consumers that need the full language list import this package.
//
// Usage:
//
//	import "github.com/matzehuels/depscan/pkg/deps/languages"
//
//	for _, lang := range languages.All {
//	    fmt.Println(lang.Title, lang.ManifestFile)
//	}
package languages

import (
	"strings"

	"github.com/matzehuels/depscan/pkg/deps"
	"github.com/matzehuels/depscan/pkg/deps/javascript"
	"github.com/matzehuels/depscan/pkg/deps/python"
)

// All is the canonical list of supported package ecosystems, in scan order.
var All = []*deps.Language{
	javascript.Language,
	python.Language,
}

// Find returns the Language for the given ecosystem name ("npm", "pypi"),
// or nil if not found. Matching is case-insensitive.
func Find(name string) *deps.Language {
	for _, l := range All {
		if strings.EqualFold(string(l.Ecosystem), name) {
			return l
		}
	}
	return nil
}
