package buildinfo

import (
	"strings"
	"testing"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	old := Version
	Version = v
	t.Cleanup(func() { Version = old })
}

func TestUserAgent(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"dev", "depscan/dev"},
		{"v0.3.0", "depscan/0.3.0"},
		{"1.2.3", "depscan/1.2.3"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			withVersion(t, tt.version)
			if got := UserAgent(); got != tt.want {
				t.Errorf("UserAgent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	withVersion(t, "v9.9.9")
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version v9.9.9\n") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(String(), "version: v9.9.9") {
		t.Errorf("String() = %q", String())
	}
}
