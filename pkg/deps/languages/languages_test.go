package languages

import (
	"testing"

	"github.com/matzehuels/depscan/pkg/deps"
)

func TestAllOrder(t *testing.T) {
	if len(All) != 2 {
		t.Fatalf("len(All) = %d, want 2", len(All))
	}
	if All[0].Ecosystem != deps.NPM || All[1].Ecosystem != deps.PyPI {
		t.Errorf("scan order = [%s %s], want [npm pypi]", All[0].Ecosystem, All[1].Ecosystem)
	}
}

func TestAllComplete(t *testing.T) {
	for _, l := range All {
		if l.Title == "" || l.ManifestFile == "" || l.NewManifest == nil || l.NewRegistry == nil {
			t.Errorf("language %q is incomplete", l.Ecosystem)
		}
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		want deps.Ecosystem
	}{
		{"npm", deps.NPM},
		{"NPM", deps.NPM},
		{"pypi", deps.PyPI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Find(tt.name)
			if l == nil {
				t.Fatalf("Find(%q) = nil", tt.name)
			}
			if l.Ecosystem != tt.want {
				t.Errorf("Find(%q) = %s, want %s", tt.name, l.Ecosystem, tt.want)
			}
		})
	}

	if Find("cargo") != nil {
		t.Error("Find(cargo) should return nil")
	}
}
