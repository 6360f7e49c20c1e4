package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/model"
	"github.com/jacksmith/td/internal/storage"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check stored lists for corruption",
	Long: `Check every slot in .td/ for data td cannot load.

A slot is corrupt if it is not a JSON array of {id, text, done} objects,
if a task has blank text or a non-positive id, or if two tasks share an id.
td itself starts with an empty list when the configured slot is corrupt.

Use --fix to delete corrupt slots.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var validateFix bool

func init() {
	validateCmd.Flags().BoolVar(&validateFix, "fix", false, "delete corrupt slots")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(".")
	if err != nil {
		return err
	}

	keys, err := s.ListSlots()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Println("No slots written yet.")
		return nil
	}

	var corrupt []string
	for _, key := range keys {
		problems, n, err := checkSlot(s, key)
		if err != nil {
			return err
		}
		if problems == nil {
			fmt.Printf("%s: %s (%d todos)\n", key, cli.Green("ok"), n)
			continue
		}

		corrupt = append(corrupt, key)
		fmt.Printf("%s: %s\n", key, cli.Red("corrupt"))
		for _, p := range problems {
			fmt.Printf("  %s\n", p)
		}
	}

	if len(corrupt) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	if !validateFix {
		return fmt.Errorf("found %d corrupt slot(s); use --fix to delete them", len(corrupt))
	}
	for _, key := range corrupt {
		if err := s.Delete(key); err != nil {
			return err
		}
		fmt.Printf("Deleted %s.\n", key)
	}
	return nil
}

// checkSlot decodes one slot. It returns the problems found, or nil and the
// number of todos if the slot is valid.
func checkSlot(s *storage.Storage, key string) ([]string, int, error) {
	data, found, err := s.Get(key)
	if err != nil || !found {
		return nil, 0, err
	}

	l, err := model.DecodeList(data)
	if err == nil {
		return nil, len(l), nil
	}

	var ce *model.CorruptError
	if !errors.As(err, &ce) {
		return nil, 0, err
	}
	if len(ce.Problems) > 0 {
		return ce.Problems, 0, nil
	}
	return []string{ce.Err.Error()}, 0, nil
}
