// Package cli implements the depscan command-line interface.
//
// The root command scans one project directory: it reads package.json and
// requirements.txt, asks npm and PyPI for the latest release of every
// declared dependency and prints the ones that are behind.
//
// # Output streams
//
// The report is written to stdout in the selected format. Logs, including
// per-package warnings, go to stderr through charmbracelet/log so that
// `depscan -o json > report.json` stays machine-readable. With --verbose every
// registry request is logged at debug level.
//
// # Embedding
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	err := c.RootCommand().ExecuteContext(ctx)
//	os.Exit(cli.ExitCode(err))
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger that writes timestamped records ("15:04:05.00")
// to w, dropping anything below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress reports how long a step took once it finishes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the elapsed time appended,
// e.g. "Checked 12 dependencies, 3 outdated (842ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && l != nil {
		return l
	}
	return log.Default()
}
