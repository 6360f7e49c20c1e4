package main

import (
	"fmt"

	"github.com/jacksmith/td/internal/cli"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle <ref>...",
	Aliases: []string{"done"},
	Short:   "Flip todos between done and pending",
	Long: `Flip one or more todos between done and pending.

A ref is a task ID, a position from 'td list', or a unique ID suffix.

Multiple todos can be given. References are resolved against the list as
it was before the command ran, and todos that cannot be found are reported
without stopping the rest.

Examples:
  td toggle 1
  td done 1 3
  td toggle 1760000000123`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runToggle,
	ValidArgsFunction: completeRefs,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	tasks := store.Tasks()
	var errors []string
	toggled := 0

	for _, ref := range args {
		id, err := cli.ResolveRef(ref, tasks)
		if err == nil {
			_, err = store.Toggle(id)
		}
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", ref, err))
			continue
		}

		toggled++
		t, _ := store.Find(id)
		printTask(cli.Position(id, store.Tasks()), t.Text, t.Done)
	}

	if len(errors) > 0 {
		if toggled > 0 {
			fmt.Println()
		}
		for _, e := range errors {
			fmt.Printf("error: %s\n", e)
		}
		if toggled == 0 {
			return fmt.Errorf("failed to toggle any todos")
		}
	}
	return nil
}
