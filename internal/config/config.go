// Package config provides configuration data structures for depscan.
package config

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/depscan/pkg/deps"
	"github.com/matzehuels/depscan/pkg/deps/languages"
	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/integrations"
	"github.com/matzehuels/depscan/pkg/report"
	"github.com/matzehuels/depscan/pkg/scan"
)

// MaxConcurrency caps the number of simultaneous registry requests.
const MaxConcurrency = 64

// Config is the complete depscan configuration: defaults, overridden by
// .depscan.yaml, then DEPSCAN_* environment variables, then flags.
type Config struct {
	// Concurrency is the number of simultaneous registry requests (default: 4).
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
	// Timeout bounds each registry request (default: 10s).
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// Format selects the report format (default: text).
	Format report.Format `mapstructure:"format" yaml:"format"`
	// Registries overrides registry base URLs. Empty means the public registry.
	Registries Registries `mapstructure:"registries" yaml:"registries"`
	// Ecosystems limits the scan to the named ecosystems ("npm", "pypi").
	// Empty means every supported ecosystem.
	Ecosystems []string `mapstructure:"ecosystems" yaml:"ecosystems"`
}

// Registries holds per-ecosystem registry base URLs.
type Registries struct {
	NPM  string `mapstructure:"npm" yaml:"npm"`
	PyPI string `mapstructure:"pypi" yaml:"pypi"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Concurrency: scan.DefaultConcurrency,
		Timeout:     integrations.DefaultTimeout,
		Format:      report.FormatText,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Concurrency < 1 || c.Concurrency > MaxConcurrency {
		return depserr.New(depserr.ErrCodeInvalidConfig,
			"concurrency must be between 1 and %d, got %d", MaxConcurrency, c.Concurrency)
	}
	if c.Timeout <= 0 {
		return depserr.New(depserr.ErrCodeInvalidConfig, "timeout must be positive, got %s", c.Timeout)
	}
	if !slices.Contains(report.Formats, c.Format) {
		return depserr.New(depserr.ErrCodeInvalidConfig, "unknown format %q", c.Format)
	}
	for _, name := range c.Ecosystems {
		if languages.Find(name) == nil {
			return depserr.New(depserr.ErrCodeInvalidConfig,
				"unknown ecosystem %q (supported: %s)", name, strings.Join(SupportedEcosystems(), ", "))
		}
	}
	for name, url := range map[string]string{"npm": c.Registries.NPM, "pypi": c.Registries.PyPI} {
		if url == "" {
			continue
		}
		if err := depserr.ValidateURL(url); err != nil {
			return depserr.Wrap(depserr.ErrCodeInvalidConfig, err, "registries.%s", name)
		}
	}
	return nil
}

// Languages returns the ecosystems to scan, in scan order.
func (c *Config) Languages() []*deps.Language {
	if len(c.Ecosystems) == 0 {
		return languages.All
	}
	selected := make([]*deps.Language, 0, len(c.Ecosystems))
	for _, l := range languages.All {
		for _, name := range c.Ecosystems {
			if languages.Find(name) == l {
				selected = append(selected, l)
				break
			}
		}
	}
	return selected
}

// SupportedEcosystems lists the ecosystem names accepted in Ecosystems.
func SupportedEcosystems() []string {
	names := make([]string, len(languages.All))
	for i, l := range languages.All {
		names[i] = l.Ecosystem.String()
	}
	return names
}

// RegistryOptions returns the client options for an ecosystem.
func (c *Config) RegistryOptions(eco deps.Ecosystem) integrations.Options {
	opts := integrations.Options{Timeout: c.Timeout}
	switch eco {
	case deps.NPM:
		opts.BaseURL = c.Registries.NPM
	case deps.PyPI:
		opts.BaseURL = c.Registries.PyPI
	}
	return opts
}

// ScanOptions returns the scan runner options.
func (c *Config) ScanOptions() scan.Options {
	return scan.Options{Concurrency: c.Concurrency}
}
