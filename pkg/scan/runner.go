package scan

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/depscan/pkg/deps"
	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/integrations"
	"github.com/matzehuels/depscan/pkg/observability"
	"github.com/matzehuels/depscan/pkg/version"
)

// DefaultConcurrency is the number of simultaneous registry requests.
const DefaultConcurrency = 4

// Options configures a scan.
type Options struct {
	Concurrency int // Simultaneous registry requests per ecosystem (default: 4, 1 = sequential)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return opts
}

// Runner checks every manifest in a directory against its registry.
//
// The Runner holds no per-scan state; one Runner can serve several scans,
// including concurrent ones, as long as its registries are safe for
// concurrent use.
type Runner struct {
	Languages  []*deps.Language
	Registries map[deps.Ecosystem]deps.Registry
	Options    Options
	Logger     *log.Logger
}

// NewRunner creates a runner for the given languages.
// Languages without an entry in registries get their default registry client.
// If logger is nil, log.Default() is used.
func NewRunner(langs []*deps.Language, registries map[deps.Ecosystem]deps.Registry, opts Options, logger *log.Logger) *Runner {
	regs := make(map[deps.Ecosystem]deps.Registry, len(langs))
	for _, l := range langs {
		if r, ok := registries[l.Ecosystem]; ok && r != nil {
			regs[l.Ecosystem] = r
			continue
		}
		regs[l.Ecosystem] = l.Registry(integrations.Options{})
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Languages:  langs,
		Registries: regs,
		Options:    opts.WithDefaults(),
		Logger:     logger,
	}
}

// Scan checks the manifests found in dir, one ecosystem at a time.
//
// Per-package failures are logged, recorded in [Section.Skipped] and never
// abort the scan. A manifest that cannot be parsed is recorded in
// [Section.Err] and the next ecosystem is still scanned. The returned error is
// non-nil only when dir is not a readable directory (INVALID_PATH) or ctx is
// cancelled.
func (r *Runner) Scan(ctx context.Context, dir string) (*Report, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, depserr.Wrap(depserr.ErrCodeInvalidPath, err, "scan %s", dir)
	}
	if !info.IsDir() {
		return nil, depserr.New(depserr.ErrCodeInvalidPath, "scan %s: not a directory", dir)
	}

	report := newReport(dir)
	for _, lang := range r.Languages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, ok := lang.Manifest(dir)
		if !ok {
			r.Logger.Debug("manifest not found", "ecosystem", lang.Ecosystem, "path", path)
			continue
		}
		section, err := r.scanManifest(ctx, lang, path)
		if err != nil {
			return nil, err
		}
		report.Sections = append(report.Sections, section)
	}

	if !report.ManifestsFound() {
		r.Logger.Warn("no dependency manifests found", "dir", dir)
	}
	return report, nil
}

func (r *Runner) scanManifest(ctx context.Context, lang *deps.Language, path string) (Section, error) {
	eco := string(lang.Ecosystem)
	hooks := observability.Scan()
	hooks.OnEcosystemStart(ctx, eco, path)
	start := time.Now()

	section := newSection(lang, path)

	list, err := lang.NewManifest().Parse(path)
	if err != nil {
		r.Logger.Error("failed to read manifest", "manifest", path, "err", err)
		section.Err = err
		section.Error = depserr.UserMessage(err)
		hooks.OnEcosystemComplete(ctx, eco, 0, 0, time.Since(start), err)
		return section, nil
	}
	r.Logger.Debug("parsed manifest", "manifest", path, "dependencies", len(list))

	reg := r.Registries[lang.Ecosystem]
	if reg == nil {
		err := depserr.New(depserr.ErrCodeInternal, "no registry configured for %s", eco)
		section.Err = err
		section.Error = depserr.UserMessage(err)
		hooks.OnEcosystemComplete(ctx, eco, 0, 0, time.Since(start), err)
		return section, nil
	}

	results, err := r.checkAll(ctx, lang.Ecosystem, reg, list)
	if err != nil {
		hooks.OnEcosystemComplete(ctx, eco, 0, 0, time.Since(start), err)
		return section, err
	}

	for i, res := range results {
		dep := list[i]
		switch {
		case res.err != nil:
			r.Logger.Warn("skipping package", "ecosystem", eco, "package", dep.Name, "err", res.err)
			section.Skipped = append(section.Skipped, Skipped{
				Package: dep.Name,
				Code:    depserr.GetCode(res.err),
				Reason:  depserr.UserMessage(res.err),
				Err:     res.err,
			})
		case res.outdated:
			section.Entries = append(section.Entries, Entry{
				Package: dep.Name,
				Current: dep.Version,
				Latest:  res.latest,
			})
		}
	}
	section.Checked = len(list)

	elapsed := time.Since(start)
	hooks.OnEcosystemComplete(ctx, eco, section.Checked, len(section.Entries), elapsed, nil)
	r.Logger.Debug("checked dependencies",
		"ecosystem", eco,
		"checked", section.Checked,
		"outdated", len(section.Entries),
		"skipped", len(section.Skipped),
		"duration", elapsed)
	return section, nil
}

type checkResult struct {
	latest   string
	outdated bool
	err      error
}

// checkAll looks up every dependency with at most Options.Concurrency
// requests in flight. results[i] belongs to list[i].
func (r *Runner) checkAll(ctx context.Context, eco deps.Ecosystem, reg deps.Registry, list []deps.Dependency) ([]checkResult, error) {
	results := make([]checkResult, len(list))

	g := new(errgroup.Group)
	g.SetLimit(r.Options.WithDefaults().Concurrency)
	for i, dep := range list {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = r.check(ctx, eco, reg, dep)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) check(ctx context.Context, eco deps.Ecosystem, reg deps.Registry, dep deps.Dependency) checkResult {
	res := r.lookup(ctx, reg, dep)
	observability.Scan().OnPackageChecked(ctx, string(eco), dep.Name, res.outdated, res.err)
	return res
}

func (r *Runner) lookup(ctx context.Context, reg deps.Registry, dep deps.Dependency) checkResult {
	latest, err := reg.LatestVersion(ctx, dep.Name)
	if err != nil {
		return checkResult{err: err}
	}
	outdated, err := version.IsOlder(dep.Version, latest)
	if err != nil {
		return checkResult{latest: latest, err: err}
	}
	if outdated {
		r.Logger.Debug("outdated", "package", dep.Name, "current", dep.Version, "latest", latest)
	}
	return checkResult{latest: latest, outdated: outdated}
}
