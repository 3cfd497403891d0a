package scan

import (
	"github.com/matzehuels/depscan/pkg/deps"
	depserr "github.com/matzehuels/depscan/pkg/errors"
)

// Entry is an outdated dependency: the declared version is older than the
// latest version published in the registry.
type Entry struct {
	Package string `json:"package" yaml:"package"`
	Current string `json:"current" yaml:"current"`
	Latest  string `json:"latest" yaml:"latest"`
}

// Skipped is a dependency that could not be checked, either because the
// registry lookup failed or because a version could not be compared.
type Skipped struct {
	Package string       `json:"package" yaml:"package"`
	Code    depserr.Code `json:"code,omitempty" yaml:"code,omitempty"`
	Reason  string       `json:"reason" yaml:"reason"`
	Err     error        `json:"-" yaml:"-"`
}

// Section holds the results for one ecosystem whose manifest was found.
type Section struct {
	Ecosystem deps.Ecosystem `json:"ecosystem" yaml:"ecosystem"`
	Title     string         `json:"title" yaml:"title"`
	Manifest  string         `json:"manifest" yaml:"manifest"`
	Checked   int            `json:"checked" yaml:"checked"`
	Entries   []Entry        `json:"outdated" yaml:"outdated"`
	Skipped   []Skipped      `json:"skipped" yaml:"skipped"`
	Err       error          `json:"-" yaml:"-"`
	Error     string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the section's manifest could not be read.
func (s Section) Failed() bool { return s.Err != nil }

// Report is the outcome of scanning one directory.
//
// Sections appear in scan order (npm before Python) and only for ecosystems
// whose manifest exists. Sections and every slice inside them are non-nil,
// so an empty report serializes as empty lists.
type Report struct {
	Directory string    `json:"directory" yaml:"directory"`
	Sections  []Section `json:"sections" yaml:"sections"`
}

func newReport(dir string) *Report {
	return &Report{Directory: dir, Sections: []Section{}}
}

func newSection(lang *deps.Language, manifest string) Section {
	return Section{
		Ecosystem: lang.Ecosystem,
		Title:     lang.Title,
		Manifest:  manifest,
		Entries:   []Entry{},
		Skipped:   []Skipped{},
	}
}

// Outdated returns every outdated entry across all sections.
func (r *Report) Outdated() []Entry {
	out := []Entry{}
	for _, s := range r.Sections {
		out = append(out, s.Entries...)
	}
	return out
}

// Failed returns the sections whose manifest could not be read.
func (r *Report) Failed() []Section {
	out := []Section{}
	for _, s := range r.Sections {
		if s.Failed() {
			out = append(out, s)
		}
	}
	return out
}

// ManifestsFound reports whether any supported manifest exists.
func (r *Report) ManifestsFound() bool { return len(r.Sections) > 0 }

// UpToDate reports whether nothing is outdated and every manifest was read.
// A directory without manifests is up to date.
func (r *Report) UpToDate() bool {
	return len(r.Outdated()) == 0 && len(r.Failed()) == 0
}
