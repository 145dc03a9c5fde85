package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uvforge/uvcfg/src/manifest"
	"github.com/uvforge/uvcfg/src/output"
	"github.com/uvforge/uvcfg/src/schema"
)

var annotateCmd = &cobra.Command{
	Use:     "annotate <path>",
	Aliases: []string{"full"},
	Short:   "Show every declared parameter with its current value",
	Long: `Report every declared [tool.uv] parameter: type, allowed values,
description, and the value the file currently holds (falling back to the
schema default when absent). A missing [tool.uv] section reports all
fields as unset.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, err := manifest.Load(path)
	if err != nil {
		return err
	}
	raw, err := doc.ToolUV()
	if err != nil {
		if !errors.Is(err, manifest.ErrNoToolUV) {
			return err
		}
		raw = map[string]any{}
	}

	_, warnings, err := schema.ParseToolUV(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	printWarnings(warnings)

	rows := make([]output.FieldValue, 0, len(schema.Fields))
	for i := range schema.Fields {
		f := &schema.Fields[i]
		row := output.FieldValue{Field: f}
		if v, ok := raw[f.Name]; ok {
			row.Value, row.Present = v, true
		} else if f.Alias != "" {
			if v, ok := raw[f.Alias]; ok {
				row.Value, row.Present = v, true
			}
		}
		rows = append(rows, row)
	}

	output.AnnotateTable(os.Stdout, rows, output.UseColor())
	return nil
}
