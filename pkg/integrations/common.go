package integrations

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/depscan/pkg/buildinfo"
	depserr "github.com/matzehuels/depscan/pkg/errors"
)

// DefaultTimeout bounds a single registry request.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures and non-2xx responses.
	ErrNetwork = errors.New("network error")

	// ErrMalformed is returned when a registry response cannot be decoded.
	ErrMalformed = errors.New("malformed response")
)

// Options configures a registry client.
// Zero values are replaced by the registry's defaults.
type Options struct {
	BaseURL   string        // Registry base URL without trailing slash
	Timeout   time.Duration // Per-request timeout (default: 10s)
	UserAgent string        // User-Agent header (default: depscan/<version>)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
// baseURL is the registry's public endpoint.
func (o Options) WithDefaults(baseURL string) Options {
	opts := o
	if opts.BaseURL == "" {
		opts.BaseURL = baseURL
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent()
	}
	return opts
}

// DefaultUserAgent identifies depscan to registries.
func DefaultUserAgent() string {
	return buildinfo.UserAgent()
}

// NewHTTPClient creates an HTTP client with the given request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// NormalizePkgName converts a package name to its canonical form.
// Applies lowercase and replaces underscores with hyphens, following PEP 503
// normalization rules used by PyPI.
func NormalizePkgName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// RegistryError converts a client error into the scan error taxonomy.
// Not-found responses become PACKAGE_NOT_FOUND and every other failure
// becomes REGISTRY_UNAVAILABLE. Errors that already carry a code are returned
// as is.
func RegistryError(err error, registry, pkg string) error {
	if err == nil {
		return nil
	}
	if depserr.GetCode(err) != "" {
		return err
	}
	if errors.Is(err, ErrNotFound) {
		return depserr.Wrap(depserr.ErrCodePackageNotFound, err, "%s package %s", registry, pkg)
	}
	return depserr.Wrap(depserr.ErrCodeRegistryUnavailable, err, "%s package %s", registry, pkg)
}
