package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uvforge/uvcfg/src/output"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "uvcfg",
	Short: "Validate and edit [tool.uv] project configuration",
	Long: `uvcfg — schema-aware validation and editing of the [tool.uv] section
of a pyproject manifest. Reads TOML, YAML, or JSON; always writes TOML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// printWarnings writes soft validation warnings to stderr.
func printWarnings(warnings []string) {
	color := output.UseColor()
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s %s\n", output.Warning("warning:", color), w)
	}
}
