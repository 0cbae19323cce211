// Package printer renders a models.JSONValue as indented JSON text.
package printer

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/mcncl/jsonpack/internal/errors"
	"github.com/mcncl/jsonpack/internal/models"
)

// DefaultIndent is the indent width used by the conversion API.
const DefaultIndent = 2

// Pretty renders a value as JSON with the default 2-space indent.
// Output is round-trip stable: parsing it yields a structurally equal value.
func Pretty(value models.JSONValue) (string, error) {
	return PrettyIndent(value, DefaultIndent)
}

// PrettyIndent renders a value as JSON indented by the given width.
// A width of 0 produces compact single-line output. Object keys render
// in sorted order, which keeps the output deterministic. HTML escaping is
// disabled so <, >, & and non-ASCII text survive verbatim.
func PrettyIndent(value models.JSONValue, width int) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if width > 0 {
		encoder.SetIndent("", strings.Repeat(" ", width))
	}
	if err := encoder.Encode(value); err != nil {
		// Should not happen for model-shaped values; surface it anyway.
		return "", errors.NewJSONPrintError("failed to serialize value to JSON", err)
	}
	// Encode appends a newline after the document
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
