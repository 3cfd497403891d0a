package deps

// ManifestParser reads dependency declarations from a local manifest file.
type ManifestParser interface {
	// Parse reads the manifest at path and returns its dependencies in
	// declaration order. A manifest without dependencies yields an empty,
	// non-nil slice.
	Parse(path string) ([]Dependency, error)
	// Type returns the manifest file name handled by the parser
	// (e.g., "package.json").
	Type() string
}
