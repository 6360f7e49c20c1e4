package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/td/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive list",
	Long: `Open a full-screen view of the list.

Keys:
  ↑/↓ or k/j   move
  space or x   toggle done
  a            add a todo
  e or enter   edit the selected todo
  d            delete the selected todo (asks y/N)
  C            clear the list
  ?            show all keys
  q            quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	return tui.Run(store, tea.WithAltScreen())
}
