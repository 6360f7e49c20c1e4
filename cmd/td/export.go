package main

import (
	"os"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/model"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the list as JSON, YAML or TOML",
	Long: `Write the whole list to stdout in the chosen format.

JSON output is the same shape as the stored slot. TOML has no top-level
arrays, so the list is written as a [[tasks]] table array.

Examples:
  td export
  td export --format yaml > todos.yaml
  td export -f t`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportFormat string

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(model.FormatJSON), "output format (json, yaml, toml)")
	exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatNames(), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := model.ParseFormat(exportFormat)
	if err != nil {
		// Accept an unambiguous prefix such as "t".
		name, merr := cli.MatchChoice(exportFormat, "format", formatNames())
		if merr != nil {
			return merr
		}
		format = model.Format(name)
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	return model.Export(os.Stdout, store.Tasks(), format)
}

func formatNames() []string {
	names := make([]string, len(model.Formats))
	for i, f := range model.Formats {
		names[i] = string(f)
	}
	return names
}
