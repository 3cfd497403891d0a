package npm

import (
	"context"
	"net/url"
	"strings"

	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/integrations"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

const registryName = "npm"

// Client looks up package metadata in an npm-compatible registry.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an npm client. Zero-valued options fall back to the
// public registry and [integrations.DefaultTimeout].
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

// LatestVersion returns the version tagged "latest" for pkg.
//
// Errors carry a [depserr.Code]: INVALID_PACKAGE for names npm would reject,
// PACKAGE_NOT_FOUND when the package or its latest tag is missing, and
// REGISTRY_UNAVAILABLE for transport failures, unexpected status codes and
// undecodable bodies.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	pkg = strings.TrimSpace(pkg)
	if err := depserr.ValidateNpmPackageName(pkg); err != nil {
		return "", err
	}

	var data registryResponse
	if err := c.Get(ctx, c.packageURL(pkg), &data); err != nil {
		return "", integrations.RegistryError(err, registryName, pkg)
	}

	latest := strings.TrimSpace(data.DistTags.Latest)
	if latest == "" {
		return "", depserr.Wrap(depserr.ErrCodePackageNotFound, integrations.ErrNotFound,
			"npm package %s has no latest tag", pkg)
	}
	return latest, nil
}

// packageURL builds the metadata URL. Scoped names keep their leading "@"
// and have the separating slash escaped, as the registry expects.
func (c *Client) packageURL(pkg string) string {
	if scope, name, ok := strings.Cut(pkg, "/"); ok && strings.HasPrefix(scope, "@") {
		return c.baseURL + "/" + scope + "%2f" + url.PathEscape(name)
	}
	return c.baseURL + "/" + url.PathEscape(pkg)
}

type registryResponse struct {
	Name     string   `json:"name"`
	DistTags distTags `json:"dist-tags"`
}

type distTags struct {
	Latest string `json:"latest"`
}
