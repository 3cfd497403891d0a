package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depscan/internal/config"
	"github.com/matzehuels/depscan/pkg/deps"
	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/integrations/npm"
	"github.com/matzehuels/depscan/pkg/integrations/pypi"
	"github.com/matzehuels/depscan/pkg/observability"
	"github.com/matzehuels/depscan/pkg/report"
	"github.com/matzehuels/depscan/pkg/scan"
)

// scanOpts holds flags that are not part of the resolved configuration.
type scanOpts struct {
	configPath string
}

func (c *CLI) scanCommand() *cobra.Command {
	opts := scanOpts{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   appName + " [directory]",
		Short: "Report dependencies that are behind their latest release",
		Long: `depscan reads package.json and requirements.txt in a project directory,
looks up every declared dependency in the npm and PyPI registries and lists
the ones whose declared version is older than the latest published release.

Configuration is read from .depscan.yaml in the scanned directory (or the file
given with --config), then DEPSCAN_* environment variables, then flags.`,
		Example: `  # Scan the current directory
  depscan

  # Scan a project with eight concurrent registry requests
  depscan ./web -j 8

  # Emit a machine-readable report
  depscan ./api --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runScan(cmd, dir, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntP("concurrency", "j", def.Concurrency, "simultaneous registry requests (1 = sequential)")
	flags.StringP("format", "o", string(def.Format), "report format: text, json, yaml")
	flags.Duration("timeout", def.Timeout, "timeout for each registry request")
	flags.String("npm-registry", "", "npm registry base URL (default "+npm.DefaultBaseURL+")")
	flags.String("pypi-registry", "", "PyPI JSON API base URL (default "+pypi.DefaultBaseURL+")")
	flags.StringSliceP("ecosystem", "e", nil, "only scan these ecosystems: "+strings.Join(config.SupportedEcosystems(), ", "))
	flags.StringVar(&opts.configPath, "config", "", "config file (default <directory>/"+config.FileName+")")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(report.Formats))
		for _, f := range report.Formats {
			names = append(names, f.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	_ = cmd.RegisterFlagCompletionFunc("ecosystem", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.SupportedEcosystems(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runScan(cmd *cobra.Command, dir string, opts scanOpts) error {
	ctx := withLogger(cmd.Context(), c.Logger)
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(cmd, dir, opts)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved",
		"concurrency", cfg.Concurrency,
		"timeout", cfg.Timeout,
		"format", cfg.Format,
		"ecosystems", cfg.Ecosystems)

	if logger.GetLevel() <= LogDebug {
		observability.SetHTTPHooks(newHTTPLogHooks(logger))
		observability.SetScanHooks(newScanLogHooks(logger))
		defer observability.Reset()
	}

	prog := newProgress(logger)
	rep, err := newRunner(ctx, cfg).Scan(ctx, dir)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %d dependencies, %d outdated", checkedCount(rep), len(rep.Outdated())))

	if err := report.Write(cmd.OutOrStdout(), rep, cfg.Format); err != nil {
		return err
	}

	if failed := rep.Failed(); len(failed) > 0 {
		return depserr.New(depserr.ErrCodeManifestParse, "%d manifest(s) could not be read", len(failed))
	}
	return nil
}

func (c *CLI) loadConfig(cmd *cobra.Command, dir string, opts scanOpts) (*config.Config, error) {
	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if opts.configPath != "" {
		return loader.Load(opts.configPath)
	}
	cfg, err := loader.LoadFromDir(dir)
	if err == nil && loader.ConfigFile() != "" {
		c.Logger.Debug("loaded config file", "path", loader.ConfigFile())
	}
	return cfg, err
}

func newRunner(ctx context.Context, cfg *config.Config) *scan.Runner {
	langs := cfg.Languages()
	registries := make(map[deps.Ecosystem]deps.Registry, len(langs))
	for _, l := range langs {
		registries[l.Ecosystem] = l.Registry(cfg.RegistryOptions(l.Ecosystem))
	}
	return scan.NewRunner(langs, registries, cfg.ScanOptions(), loggerFromContext(ctx))
}

func checkedCount(r *scan.Report) int {
	n := 0
	for _, s := range r.Sections {
		n += s.Checked
	}
	return n
}
