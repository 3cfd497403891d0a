package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depscan/pkg/observability"
)

// httpLogHooks logs every registry request at debug level.
type httpLogHooks struct {
	logger *log.Logger
}

var _ observability.HTTPHooks = httpLogHooks{}

func newHTTPLogHooks(l *log.Logger) httpLogHooks {
	return httpLogHooks{logger: l}
}

func (h httpLogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h httpLogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "host", host, "path", path,
		"status", status, "duration", d.Round(time.Millisecond))
}

func (h httpLogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "method", method, "host", host, "path", path, "err", err)
}

// scanLogHooks logs scan progress per ecosystem and per package at debug level.
type scanLogHooks struct {
	logger *log.Logger
}

var _ observability.ScanHooks = scanLogHooks{}

func newScanLogHooks(l *log.Logger) scanLogHooks {
	return scanLogHooks{logger: l}
}

func (h scanLogHooks) OnEcosystemStart(_ context.Context, ecosystem, manifest string) {
	h.logger.Debug("scanning ecosystem", "ecosystem", ecosystem, "manifest", manifest)
}

func (h scanLogHooks) OnEcosystemComplete(_ context.Context, ecosystem string, checked, outdated int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("ecosystem failed", "ecosystem", ecosystem, "err", err)
		return
	}
	h.logger.Debug("ecosystem done", "ecosystem", ecosystem,
		"checked", checked, "outdated", outdated, "duration", d.Round(time.Millisecond))
}

func (h scanLogHooks) OnPackageChecked(_ context.Context, ecosystem, pkg string, outdated bool, err error) {
	if err != nil {
		return
	}
	h.logger.Debug("package checked", "ecosystem", ecosystem, "package", pkg, "outdated", outdated)
}
