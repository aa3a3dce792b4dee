package preview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/flavono123/schemer/internal/config"
)

// Render formats obj as config.FormatJSON or config.FormatYAML.
func Render(obj *Object, format string, indent int) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		return JSON(obj, indent)
	case config.FormatYAML:
		return YAML(obj, indent)
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
}

// JSON renders obj with indent spaces per level, zero for compact output.
func JSON(obj *Object, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(obj); err != nil {
		return nil, fmt.Errorf("failed to render json: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func YAML(obj *Object, indent int) ([]byte, error) {
	if indent <= 0 {
		indent = config.DefaultIndent
	}
	out, err := yaml.MarshalWithOptions(obj.mapSlice(), yaml.Indent(indent))
	if err != nil {
		return nil, fmt.Errorf("failed to render yaml: %w", err)
	}
	return bytes.TrimRight(out, "\n"), nil
}
