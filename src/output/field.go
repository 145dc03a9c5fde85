package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/uvforge/uvcfg/src/schema"
)

// ParamDetail writes the help text for a single schema field.
func ParamDetail(w io.Writer, f *schema.Field, color bool) {
	name := f.Name
	if f.Alias != "" {
		name = fmt.Sprintf("%s (alias: %s)", f.Name, f.Alias)
	}

	sec := NewSection(w, name, color)
	sec.Row("%-10s %s", "type:", string(f.Type))
	if len(f.Choices) > 0 {
		sec.Row("%-10s %s", "values:", strings.Join(f.Choices, ", "))
	}
	if f.Default != nil {
		sec.Row("%-10s %v", "default:", f.Default)
	}
	sec.Separator()
	sec.Row("%s", f.Description)
	sec.Close()
}

// FieldValue pairs a schema field with the value a document holds for it.
type FieldValue struct {
	Field   *schema.Field
	Value   any
	Present bool
}

// AnnotateTable renders one row per declared field: name, the document's
// current value (or the default / unset marker), and the description.
func AnnotateTable(w io.Writer, rows []FieldValue, color bool) {
	sec := NewSection(w, "tool.uv", color)
	sec.Row("%-20s %-22s %s", "field", "value", "type")
	sec.Separator()
	for _, r := range rows {
		sec.Row("%-20s %-22s %s", r.Field.Name, formatFieldValue(r, color), fieldTypeLabel(r.Field))
	}
	sec.Separator()
	for _, r := range rows {
		sec.Row("%-20s %s", r.Field.Name, Dimmed(r.Field.Description, color))
	}
	sec.Close()
}

func formatFieldValue(r FieldValue, color bool) string {
	if r.Present {
		return formatValue(r.Value)
	}
	if r.Field.Default != nil {
		return Dimmed(fmt.Sprintf("default: %v", r.Field.Default), color)
	}
	return Dimmed("unset", color)
}

func fieldTypeLabel(f *schema.Field) string {
	if f.Type == schema.TypeEnum {
		return fmt.Sprintf("enum(%s)", strings.Join(f.Choices, "|"))
	}
	return string(f.Type)
}

// formatValue flattens a document value for single-line display.
func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool, int, int64, float64:
		return fmt.Sprintf("%v", t)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("{%s}", strings.Join(keys, ", "))
	case []any:
		return fmt.Sprintf("[%d entries]", len(t))
	default:
		return fmt.Sprintf("%v", t)
	}
}
