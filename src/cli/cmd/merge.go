package cmd

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/spf13/cobra"
	"github.com/uvforge/uvcfg/src/manifest"
	"github.com/uvforge/uvcfg/src/output"
	"github.com/uvforge/uvcfg/src/schema"
)

var mergeNoMerge bool

var mergeCmd = &cobra.Command{
	Use:   "merge <yaml-file> [toml-file]",
	Short: "Merge [tool.uv] overrides from YAML over the defaults",
	Long: `Compute the schema defaults (as in init), overlay the [tool.uv]
section of the given YAML file on top, validate, and write the result as
TOML (default destination: pyproject.toml).

By default nested tables are merged recursively, override winning
key-for-key. With --no-merge an override key replaces the default value
wholesale, nested structure included.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().BoolVar(&mergeNoMerge, "no-merge", false, "replace override keys wholesale instead of merging recursively")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	yamlFile := args[0]
	dest := "pyproject.toml"
	if len(args) > 1 {
		dest = args[1]
	}

	overlay, err := manifest.Load(yamlFile)
	if err != nil {
		return err
	}
	overrides, err := overlay.ToolUV()
	if err != nil {
		if !errors.Is(err, manifest.ErrNoToolUV) {
			return err
		}
		overrides = map[string]any{}
	}

	merged := schema.Defaults()
	if mergeNoMerge {
		for k, v := range overrides {
			merged[k] = v
		}
	} else {
		// WithOverwriteWithEmptyValue so zero values (false, "") in the
		// overlay still win over a default; mergo skips them otherwise.
		if err := mergo.Merge(&merged, overrides, mergo.WithOverride, mergo.WithOverwriteWithEmptyValue); err != nil {
			return fmt.Errorf("merging %s: %w", yamlFile, err)
		}
	}

	_, warnings, err := schema.ParseToolUV(merged)
	if err != nil {
		return fmt.Errorf("%s: %w", yamlFile, err)
	}
	printWarnings(warnings)

	doc := manifest.Document{
		"tool": map[string]any{"uv": merged},
	}
	if err := manifest.WriteTOML(doc, dest); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "merged %d override keys from %s\n", len(overrides), yamlFile)
	}

	color := output.UseColor()
	fmt.Printf("%s configuration written %s\n",
		output.StatusIcon(true, color), output.Dimmed("→ "+dest, color))
	return nil
}
