package javascript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/depscan/pkg/deps"
	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/integrations"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPackageJSON_Parse(t *testing.T) {
	path := writeManifest(t, `{
  "name": "my-package",
  "version": "1.0.0",
  "dependencies": {
    "zod": "^3.22.0",
    "express": "~4.18.2",
    "left-pad": "1.3.0",
    "@types/node": "=20.1.0"
  },
  "devDependencies": {
    "jest": "^29.0.0"
  }
}`)

	got, err := (&PackageJSON{}).Parse(path)
	require.NoError(t, err)

	want := []deps.Dependency{
		{Name: "zod", Constraint: "^3.22.0", Version: "3.22.0"},
		{Name: "express", Constraint: "~4.18.2", Version: "4.18.2"},
		{Name: "left-pad", Constraint: "1.3.0", Version: "1.3.0"},
		{Name: "@types/node", Constraint: "=20.1.0", Version: "20.1.0"},
	}
	assert.Equal(t, want, got, "declaration order and normalized versions")
}

func TestPackageJSON_ParseSingleCaret(t *testing.T) {
	path := writeManifest(t, `{"dependencies":{"left-pad":"^1.3.0"}}`)

	got, err := (&PackageJSON{}).Parse(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "left-pad", got[0].Name)
	assert.Equal(t, "1.3.0", got[0].Version)
}

func TestPackageJSON_ParseKeepsUnsupportedConstraints(t *testing.T) {
	path := writeManifest(t, `{"dependencies":{"a":">=1.0.0","b":"latest","c":"git+https://example.com/c.git"}}`)

	got, err := (&PackageJSON{}).Parse(path)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, ">=1.0.0", got[0].Version)
	assert.Equal(t, "latest", got[1].Version)
}

func TestPackageJSON_ParseNoDependencies(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing field", `{"name":"app","devDependencies":{"jest":"^29.0.0"}}`},
		{"empty object", `{"dependencies":{}}`},
		{"null field", `{"dependencies":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&PackageJSON{}).Parse(writeManifest(t, tt.content))
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestPackageJSON_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{"dependencies": {`},
		{"not an object", `["left-pad"]`},
		{"dependencies is a list", `{"dependencies":["left-pad"]}`},
		{"dependencies is a string", `{"dependencies":"left-pad"}`},
		{"non-string version", `{"dependencies":{"left-pad":1}}`},
		{"object version", `{"dependencies":{"left-pad":{"version":"1.0.0"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&PackageJSON{}).Parse(writeManifest(t, tt.content))
			require.Error(t, err)
			assert.True(t, depserr.Is(err, depserr.ErrCodeManifestParse), "got %v", err)
		})
	}
}

func TestPackageJSON_ParseMissingFile(t *testing.T) {
	_, err := (&PackageJSON{}).Parse(filepath.Join(t.TempDir(), "package.json"))
	require.Error(t, err)
	assert.True(t, depserr.Is(err, depserr.ErrCodeManifestParse))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPackageJSON_Type(t *testing.T) {
	parser := &PackageJSON{}
	if got := parser.Type(); got != "package.json" {
		t.Errorf("Type() = %q, want %q", got, "package.json")
	}
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, deps.NPM, Language.Ecosystem)
	assert.Equal(t, "package.json", Language.ManifestFile)
	assert.IsType(t, &PackageJSON{}, Language.NewManifest())
	assert.Equal(t, "npm", Language.Registry(integrationsOptions()).Name())
}

func integrationsOptions() integrations.Options {
	return integrations.Options{BaseURL: "http://localhost:4873"}
}
