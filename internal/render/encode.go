package render

import (
	"bytes"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/ptree/internal/errors"
	"github.com/Iron-Ham/ptree/internal/tree"
)

// Output formats
const (
	OutputTree = "tree"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ValidOutputs returns the list of valid output formats.
func ValidOutputs() []string {
	return []string{OutputTree, OutputJSON, OutputYAML}
}

// Encode writes nodes, children nested, in a structured format.
func Encode(w io.Writer, nodes []*tree.Node, format string) error {
	if nodes == nil {
		nodes = []*tree.Node{}
	}

	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	case OutputYAML:
		// yaml flattens writer errors into strings; buffering keeps EPIPE
		// matchable for the caller.
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(nodes); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return errors.NewValidationError("unsupported structured output").
			WithField("render.output").
			WithValue(format)
	}
}
