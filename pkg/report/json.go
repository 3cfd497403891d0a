package report

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/depscan/pkg/scan"
)

// JSONWriter renders the report as an indented JSON document.
type JSONWriter struct{}

func (JSONWriter) Write(w io.Writer, r *scan.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(newDocument(r))
}
