package sheets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MajorDimension is fixed: grid rows map to sheet rows.
const MajorDimension = "ROWS"

// AppendBody is the request body for the spreadsheet values append call.
type AppendBody struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

// NewAppendBody wraps the values grid in the append envelope for the given
// target range.
func NewAppendBody(targetRange string, values [][]string) AppendBody {
	return AppendBody{
		Range:          targetRange,
		MajorDimension: MajorDimension,
		Values:         values,
	}
}

// WriteValues writes the bare 2-D grid to path.
func WriteValues(path string, values [][]string) error {
	return writeJSON(path, values)
}

// WriteAppendBody writes the append envelope to path.
func WriteAppendBody(path string, body AppendBody) error {
	return writeJSON(path, body)
}

// writeJSON pretty-prints v with two-space indentation, keeps non-ASCII and
// HTML characters literal, creates parent directories as needed, and
// overwrites any existing file.
func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
