//go:build integration

package pypi

import (
	"context"
	"testing"
	"time"

	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/integrations"
	"github.com/matzehuels/depscan/pkg/version"
)

// Run with: go test -tags integration ./pkg/integrations/pypi/

func TestLatestVersionLive(t *testing.T) {
	client := NewClient(integrations.Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, pkg := range []string{"requests", "Flask", "typing_extensions"} {
		t.Run(pkg, func(t *testing.T) {
			latest, err := client.LatestVersion(ctx, pkg)
			if err != nil {
				t.Fatalf("LatestVersion(%q) error: %v", pkg, err)
			}
			if _, err := version.Parse(latest); err != nil {
				t.Errorf("LatestVersion(%q) = %q is not a comparable version: %v", pkg, latest, err)
			}
		})
	}
}

func TestLatestVersionLiveNotFound(t *testing.T) {
	client := NewClient(integrations.Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := client.LatestVersion(ctx, "depscan-no-such-package-4f1c9a")
	if !depserr.Is(err, depserr.ErrCodePackageNotFound) {
		t.Errorf("error = %v, want %s", err, depserr.ErrCodePackageNotFound)
	}
}
