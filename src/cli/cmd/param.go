package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/uvforge/uvcfg/src/output"
	"github.com/uvforge/uvcfg/src/schema"
)

var paramCmd = &cobra.Command{
	Use:   "param <name>",
	Short: "Show help for one [tool.uv] parameter",
	Long: `Describe a single [tool.uv] parameter: its type, allowed values,
default, and description. The name may use either the canonical or the
alias spelling (required-version / required_version).`,
	Args: cobra.ExactArgs(1),
	RunE: runParam,
}

func init() {
	rootCmd.AddCommand(paramCmd)
}

func runParam(cmd *cobra.Command, args []string) error {
	f, err := schema.Lookup(args[0])
	if err != nil {
		return err
	}
	output.ParamDetail(os.Stdout, f, output.UseColor())
	return nil
}
