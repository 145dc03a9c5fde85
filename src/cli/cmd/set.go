package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/uvforge/uvcfg/src/manifest"
	"github.com/uvforge/uvcfg/src/output"
	"github.com/uvforge/uvcfg/src/schema"
)

var setCmd = &cobra.Command{
	Use:   "set <path> <key> <value>",
	Short: "Set one [tool.uv] parameter and rewrite the manifest as TOML",
	Long: `Assign a value under [tool.uv] and write the result back as TOML.

The key may use the canonical (hyphenated) or alias (underscore) spelling.
The document is re-validated before anything is written; a validation
failure leaves the original file untouched. Non-TOML inputs are written
to a .toml sibling rather than edited in place.`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	path, key, value := args[0], args[1], args[2]

	doc, err := manifest.Load(path)
	if err != nil {
		return err
	}

	canonical := schema.Canonical(key)
	doc.SetToolUV(canonical, coerceValue(canonical, value))

	raw, err := doc.ToolUV()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	_, warnings, err := schema.ParseToolUV(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	printWarnings(warnings)

	dest := manifest.TOMLPath(path)
	if err := manifest.WriteTOML(doc, dest); err != nil {
		return err
	}

	color := output.UseColor()
	fmt.Printf("%s set %s = %s %s\n",
		output.StatusIcon(true, color), canonical, value, output.Dimmed("→ "+dest, color))
	return nil
}

// coerceValue converts the CLI's string argument for fields the schema
// declares as boolean. Everything else stays a string; the schema model
// is the only coercion gate beyond this.
func coerceValue(canonical, value string) any {
	f, err := schema.Lookup(canonical)
	if err != nil || f.Type != schema.TypeBool {
		return value
	}
	if b, perr := strconv.ParseBool(value); perr == nil {
		return b
	}
	return value
}
