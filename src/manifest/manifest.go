// Package manifest reads and writes project manifest files. Input may be
// TOML, YAML, or JSON, chosen strictly by file extension; output is always
// TOML. Loading is purely syntactic — schema validation lives elsewhere.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Document is a decoded manifest: plain nested maps, slices, and scalars.
type Document map[string]any

// UnsupportedFormatError reports a file extension the loader cannot dispatch.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q (use .toml, .yaml, .yml, or .json)", filepath.Ext(e.Path))
}

// ErrNoToolUV is returned when a document has no [tool.uv] section.
var ErrNoToolUV = errors.New("[tool.uv] section not found")

// Load reads a manifest file, dispatching the decoder on the extension.
// YAML is decoded with yaml.v3, which only constructs plain scalars, maps,
// and sequences.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, &UnsupportedFormatError{Path: path}
	}

	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// ToolUV returns the tool.uv sub-mapping, or ErrNoToolUV when either
// level is missing or not a table.
func (d Document) ToolUV() (map[string]any, error) {
	tool, ok := d["tool"].(map[string]any)
	if !ok {
		return nil, ErrNoToolUV
	}
	uv, ok := tool["uv"].(map[string]any)
	if !ok {
		return nil, ErrNoToolUV
	}
	return uv, nil
}

// EnsureToolUV returns the tool.uv sub-mapping, creating empty tables on
// the way down as needed. Existing non-table values are replaced.
func (d Document) EnsureToolUV() map[string]any {
	tool, ok := d["tool"].(map[string]any)
	if !ok {
		tool = make(map[string]any)
		d["tool"] = tool
	}
	uv, ok := tool["uv"].(map[string]any)
	if !ok {
		uv = make(map[string]any)
		tool["uv"] = uv
	}
	return uv
}

// SetToolUV assigns one key under tool.uv.
func (d Document) SetToolUV(key string, value any) {
	d.EnsureToolUV()[key] = value
}
