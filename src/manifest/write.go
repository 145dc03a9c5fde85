package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// EncodeTOML serializes a document to TOML text. Nested maps become
// tables, so tool.uv renders as [tool.uv].
func EncodeTOML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(map[string]any(doc)); err != nil {
		return nil, fmt.Errorf("encoding TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTOML serializes the document and writes it to path in one call.
func WriteTOML(doc Document, path string) error {
	data, err := EncodeTOML(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// TOMLPath maps a source path to its canonical TOML destination: the path
// itself when already .toml, otherwise a .toml sibling.
func TOMLPath(src string) string {
	if strings.EqualFold(filepath.Ext(src), ".toml") {
		return src
	}
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + ".toml"
}
