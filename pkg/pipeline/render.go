package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/boxkit/pkg/box"
)

// jsonRender is the JSON output envelope. Lines carry the rendered rows in
// order, so height == len(lines) and every line has width characters.
type jsonRender struct {
	Name   string   `json:"name,omitempty"`
	Height int      `json:"height"`
	Width  int      `json:"width"`
	Lines  []string `json:"lines"`
}

// Encode serializes a built box in the requested format. The name is only
// carried by the JSON envelope.
func Encode(name string, b box.Box, format string) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(b.String() + "\n"), nil
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(jsonRender{
			Name:   name,
			Height: b.Height(),
			Width:  b.Width(),
			Lines:  b.Lines(),
		}); err != nil {
			return nil, fmt.Errorf("encode render: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, ValidateFormat(format)
	}
}
