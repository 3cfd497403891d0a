//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -destination=mock_registry.gen.go -package=deps . Registry

package deps

import "context"

// Registry looks up the latest published version of a package.
//
// Implementations must be safe for concurrent use: the scan runner calls
// LatestVersion from several goroutines at once.
type Registry interface {
	// Name returns the registry identifier (e.g., "npm", "pypi").
	Name() string
	// LatestVersion returns the latest published version of name.
	LatestVersion(ctx context.Context, name string) (string, error)
}
