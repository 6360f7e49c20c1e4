package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksmith/td/internal/cli"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a new todo",
	Long: `Add a todo to the end of the list.

All arguments are joined with spaces, so quoting is optional.
Leading and trailing whitespace is trimmed; blank text adds nothing.

Examples:
  td add Buy milk
  td add "Call the plumber"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	task, ok, err := store.Add(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	fmt.Printf("%d. %s %s\n", store.Len(), task.Text, cli.Gray(strconv.FormatInt(task.ID, 10)))
	return nil
}
