package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos",
	Long: `List todos in the order they were added.

Each row shows the position, a checkbox, the text and the task ID.
Either the position or the ID (or a unique ID suffix) can be passed to
toggle, edit and rm.

Filter flags:
  --done     Show only completed todos
  --pending  Show only todos that are not done

Positions always refer to the unfiltered list.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listDone    bool
	listPending bool
)

func init() {
	listCmd.Flags().BoolVar(&listDone, "done", false, "show only done todos")
	listCmd.Flags().BoolVar(&listPending, "pending", false, "show only pending todos")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listDone && listPending {
		return &cli.ValidationError{Message: "--done and --pending cannot be used together"}
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	var shown model.List
	var positions []int
	for i, t := range store.Tasks() {
		if (listDone && !t.Done) || (listPending && t.Done) {
			continue
		}
		shown = append(shown, t)
		positions = append(positions, i+1)
	}

	cli.RenderTasks(os.Stdout, shown, positions)
	if store.Len() > 0 {
		done, pending := store.Stats()
		fmt.Println()
		fmt.Println(cli.Summary(done, pending))
	}
	return nil
}
