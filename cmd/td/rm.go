package main

import (
	"fmt"

	"github.com/jacksmith/td/internal/cli"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <ref>",
	Aliases: []string{"delete"},
	Short:   "Delete a todo",
	Long: `Delete a todo from the list.

td asks for confirmation first unless --yes is given or confirm_delete is
false in .tdconfig.yaml. When stdin is not a terminal and no confirmation
can be asked for, the todo is not deleted.

Examples:
  td rm 3
  td rm 3 --yes`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRm,
	ValidArgsFunction: completeRefs,
}

var rmYes bool

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "delete without asking")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	id, err := cli.ResolveRef(args[0], store.Tasks())
	if err != nil {
		return err
	}
	task, _ := store.Find(id)

	ok, err := confirmDelete(cfg, rmYes, "delete", fmt.Sprintf("Delete %q?", task.Text))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Not deleted.")
		return nil
	}

	if _, err := store.Remove(id); err != nil {
		return err
	}
	fmt.Printf("Deleted %q.\n", task.Text)
	return nil
}
