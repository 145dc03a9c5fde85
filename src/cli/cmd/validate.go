package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uvforge/uvcfg/src/manifest"
	"github.com/uvforge/uvcfg/src/output"
	"github.com/uvforge/uvcfg/src/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a manifest's [tool.uv] section against the schema",
	Long: `Validate the [tool.uv] section of a manifest file.

The file may be TOML, YAML, or JSON (dispatched by extension). Validation
stops at the first hard violation; soft issues are printed as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, err := manifest.Load(path)
	if err != nil {
		return err
	}
	raw, err := doc.ToolUV()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	uv, warnings, err := schema.ParseToolUV(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	printWarnings(warnings)

	if verbose {
		fmt.Fprintf(os.Stderr, "validated %s (%d declared, %d passthrough keys)\n",
			path, len(raw)-len(uv.Extra), len(uv.Extra))
	}

	color := output.UseColor()
	fmt.Printf("%s configuration valid\n", output.StatusIcon(true, color))
	fmt.Printf("  resolution = %s\n", uv.ResolutionValue())
	return nil
}
