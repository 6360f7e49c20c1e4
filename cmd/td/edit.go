package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/ops"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <ref> [text...]",
	Short: "Change the text of a todo",
	Long: `Replace the text of a todo.

Pass the new text as arguments, or use -i to edit the current text in
$EDITOR. Saving an empty buffer or leaving it unchanged cancels the edit.

Examples:
  td edit 2 Buy oat milk
  td edit 2 -i`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runEdit,
	ValidArgsFunction: completeRefs,
}

var editInteractive bool

func init() {
	editCmd.Flags().BoolVarP(&editInteractive, "interactive", "i", false, "edit in $EDITOR")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	id, err := cli.ResolveRef(args[0], store.Tasks())
	if err != nil {
		return err
	}
	task, _ := store.Find(id)

	if editInteractive {
		if len(args) > 1 {
			return &cli.ValidationError{Message: "pass either new text or -i, not both"}
		}
		return runEditInteractive(store, id, task.Text)
	}

	if len(args) < 2 {
		return &cli.ValidationError{Message: "new text required (or use -i to open $EDITOR)"}
	}

	ok, err := commitText(store, id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	if !ok {
		return &cli.ValidationError{Field: "text", Message: "cannot be empty"}
	}

	updated, _ := store.Find(id)
	printTask(cli.Position(id, store.Tasks()), updated.Text, updated.Done)
	return nil
}

func runEditInteractive(store *ops.Store, id int64, current string) error {
	text, err := cli.EditText(current)
	if err != nil {
		return err
	}
	if text == current {
		fmt.Println("No changes.")
		return nil
	}

	ok, err := commitText(store, id, text)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Edit cancelled.")
		return nil
	}

	updated, _ := store.Find(id)
	printTask(cli.Position(id, store.Tasks()), updated.Text, updated.Done)
	return nil
}

// commitText runs a whole edit session for id, which the caller resolved
// against store. A blank draft cancels the session and reports false.
func commitText(store *ops.Store, id int64, text string) (bool, error) {
	store.StartEdit(id)
	store.UpdateDraft(text)

	ok, err := store.CommitEdit()
	if err != nil || !ok {
		store.CancelEdit()
	}
	return ok, err
}
