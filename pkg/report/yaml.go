package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/depscan/pkg/scan"
)

// YAMLWriter renders the report as a YAML document.
type YAMLWriter struct{}

func (YAMLWriter) Write(w io.Writer, r *scan.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(r)); err != nil {
		return err
	}
	return enc.Close()
}
