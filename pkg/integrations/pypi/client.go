package pypi

import (
	"context"
	"fmt"
	"strings"

	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/integrations"
)

// DefaultBaseURL is the JSON API root of the Python Package Index.
const DefaultBaseURL = "https://pypi.org/pypi"

const registryName = "pypi"

// Client provides access to the PyPI JSON API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client.
//
// Zero-valued options fall back to [DefaultBaseURL] and
// [integrations.DefaultTimeout]. The returned Client is safe for concurrent use.
func NewClient(opts integrations.Options) *Client {
	opts = opts.WithDefaults(DefaultBaseURL)
	return &Client{
		Client: integrations.NewClient(opts.Timeout, map[string]string{
			"User-Agent": opts.UserAgent,
			"Accept":     "application/json",
		}),
		baseURL: opts.BaseURL,
	}
}

// Name returns the registry identifier.
func (c *Client) Name() string { return registryName }

// LatestVersion returns the latest release of a Python package.
//
// The pkg parameter is normalized following PEP 503 (case-insensitive,
// underscores→hyphens) before the request is built.
//
// Returns:
//   - the info.version field of the project's JSON document on success
//   - INVALID_PACKAGE if pkg is not a valid distribution name
//   - PACKAGE_NOT_FOUND if the project doesn't exist or has no version
//   - REGISTRY_UNAVAILABLE for HTTP failures and undecodable responses
//
// This method is safe for concurrent use.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	pkg = strings.TrimSpace(pkg)
	if err := depserr.ValidatePythonPackageName(pkg); err != nil {
		return "", err
	}
	pkg = integrations.NormalizePkgName(pkg)

	var data apiResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s/json", c.baseURL, pkg), &data); err != nil {
		return "", integrations.RegistryError(err, registryName, pkg)
	}

	version := strings.TrimSpace(data.Info.Version)
	if version == "" {
		return "", depserr.Wrap(depserr.ErrCodePackageNotFound, integrations.ErrNotFound,
			"pypi package %s has no published version", pkg)
	}
	return version, nil
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
