package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uvforge/uvcfg/src/manifest"
	"github.com/uvforge/uvcfg/src/output"
	"github.com/uvforge/uvcfg/src/schema"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [dest]",
	Short: "Generate a pyproject.toml seeded with [tool.uv] defaults",
	Long: `Write a fresh manifest whose [tool.uv] section holds the schema
defaults (package = true, resolution = "highest").

Defaults to pyproject.toml in the current directory. Refuses to overwrite
an existing file unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dest := "pyproject.toml"
	if len(args) > 0 {
		dest = args[0]
	}

	if !initForce {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
		}
	}

	doc := manifest.Document{
		"tool": map[string]any{"uv": schema.Defaults()},
	}
	if err := manifest.WriteTOML(doc, dest); err != nil {
		return err
	}

	color := output.UseColor()
	fmt.Printf("%s created %s\n", output.StatusIcon(true, color), dest)
	return nil
}
