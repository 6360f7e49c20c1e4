package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every todo",
	Long: `Delete every todo, done or not, and save the empty list.

Asks for confirmation like 'td rm' does.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var clearYes bool

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "clear without asking")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	n := store.Len()
	if n == 0 {
		fmt.Println("Nothing to clear.")
		return nil
	}

	ok, err := confirmDelete(cfg, clearYes, "clear", fmt.Sprintf("Delete all %d todos?", n))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Not cleared.")
		return nil
	}

	if err := store.ClearAll(); err != nil {
		return err
	}
	fmt.Printf("Cleared %d todos.\n", n)
	return nil
}
