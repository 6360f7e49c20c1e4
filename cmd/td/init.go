package main

import (
	"fmt"

	"github.com/jacksmith/td/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new td directory",
	Long: `Create a .td/ directory in the current folder.

The list itself is written on the first change. Optional settings go in
.tdconfig.yaml next to .td/, and TD_* variables may be set in a .env file
there as well.

Fails if .td/ already exists in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := storage.Init("."); err != nil {
		return err
	}
	fmt.Println("Initialized td in .td/")
	return nil
}
