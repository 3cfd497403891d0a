package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	depserr "github.com/matzehuels/depscan/pkg/errors"
)

const (
	// FileName is the optional config file looked up in the scanned directory.
	FileName = ".depscan.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "DEPSCAN"
)

// Config keys, also used as environment variable suffixes
// (registries.npm -> DEPSCAN_REGISTRIES_NPM).
const (
	KeyConcurrency  = "concurrency"
	KeyTimeout      = "timeout"
	KeyFormat       = "format"
	KeyRegistryNPM  = "registries.npm"
	KeyRegistryPyPI = "registries.pypi"
	KeyEcosystems   = "ecosystems"
)

// Loader resolves configuration from defaults, an optional YAML file,
// environment variables and bound command-line flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment support.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")

	def := Default()
	v.SetDefault(KeyConcurrency, def.Concurrency)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyFormat, string(def.Format))
	v.SetDefault(KeyRegistryNPM, def.Registries.NPM)
	v.SetDefault(KeyRegistryPyPI, def.Registries.PyPI)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Ecosystems has no default; bind it so Unmarshal still sees the env var.
	_ = v.BindEnv(KeyEcosystems)

	return &Loader{v: v}
}

// BindFlags makes flags override every other source once they are set on
// the command line. Flags missing from fs are ignored.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyConcurrency:  "concurrency",
		KeyTimeout:      "timeout",
		KeyFormat:       "format",
		KeyRegistryNPM:  "npm-registry",
		KeyRegistryPyPI: "pypi-registry",
		KeyEcosystems:   "ecosystem",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file at path and resolves the final configuration.
// An empty path skips the file entirely.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, &LoadError{Path: path, Message: "config file not found", Err: err}
		}
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to read config file", Err: err}
		}
	}

	cfg := Default()
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse configuration", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "configuration validation failed", Err: err}
	}
	return cfg, nil
}

// LoadFromDir loads .depscan.yaml from dir when it exists, and otherwise
// resolves configuration from defaults, environment and flags only.
func (l *Loader) LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return l.Load("")
	}
	return l.Load(path)
}

// ConfigFile returns the config file that was read, if any.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

// viperDecodeHook composes the mapstructure hooks for durations,
// comma-separated lists (DEPSCAN_ECOSYSTEMS=npm,pypi) and types implementing
// encoding.TextUnmarshaler (report.Format).
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "config"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", path, e.Message, depserr.UserMessage(e.Err))
	}
	return fmt.Sprintf("%s: %s", path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
