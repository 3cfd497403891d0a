package report

import (
	"fmt"
	"io"
	"strings"

	depserr "github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/scan"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText Format = "text" // Human-readable console output
	FormatJSON Format = "json" // Indented JSON document
	FormatYAML Format = "yaml" // YAML document
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

func (f Format) String() string { return string(f) }

// ParseFormat converts a user-supplied name into a Format.
// Matching is case-insensitive; "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", depserr.New(depserr.ErrCodeInvalidFormat,
		"unknown format %q (available: text, json, yaml)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so formats can be
// decoded from configuration files and environment variables.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Writer renders a scan report.
type Writer interface {
	Write(w io.Writer, r *scan.Report) error
}

// New returns the Writer for format f.
func New(f Format) (Writer, error) {
	switch f {
	case FormatText, "":
		return TextWriter{}, nil
	case FormatJSON:
		return JSONWriter{}, nil
	case FormatYAML:
		return YAMLWriter{}, nil
	}
	return nil, depserr.New(depserr.ErrCodeInvalidFormat, "unknown format %q", f)
}

// Write renders r to w in format f.
func Write(w io.Writer, r *scan.Report, f Format) error {
	writer, err := New(f)
	if err != nil {
		return err
	}
	if err := writer.Write(w, r); err != nil {
		return fmt.Errorf("write %s report: %w", f, err)
	}
	return nil
}

// document is the serialized shape shared by the JSON and YAML writers.
type document struct {
	Directory string         `json:"directory" yaml:"directory"`
	UpToDate  bool           `json:"up_to_date" yaml:"up_to_date"`
	Sections  []scan.Section `json:"sections" yaml:"sections"`
}

func newDocument(r *scan.Report) document {
	sections := r.Sections
	if sections == nil {
		sections = []scan.Section{}
	}
	return document{
		Directory: r.Directory,
		UpToDate:  r.UpToDate(),
		Sections:  sections,
	}
}
