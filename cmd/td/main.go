// Package main is the entry point for the td CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/td/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "td",
	Short: "td - a small persistent todo list",
	Long: `td keeps a single todo list in the .td/ directory of the current folder.

Tasks are added, toggled between done and pending, edited, and removed.
Every change is saved before it is reported, so the list on disk always
matches what td last showed you.

Run 'td tui' for an interactive view.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// slotFlag overrides the slot from .tdconfig.yaml and TD_SLOT.
var slotFlag string

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&slotFlag, "slot", "", "slot the list is stored under (default from config)")
	rootCmd.SetVersionTemplate("td version {{.Version}}\n")
}
