package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/ops"
	"github.com/jacksmith/td/internal/storage"
)

// openStore opens .td/ in the working directory, applies the user config
// and returns a Store over the configured slot.
func openStore() (*ops.Store, *storage.Config, error) {
	s, err := storage.Open(".")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if slotFlag != "" {
		cfg.Slot = slotFlag
	}

	logger, err := cli.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	cli.ApplyColorMode(cfg.Color)

	logger.Debug("opening slot", "slot", cfg.Slot, "root", s.Root())
	return ops.NewStore(storage.NewSlot(s, cfg.Slot), ops.WithLogger(logger)), cfg, nil
}

// Stdin handling for confirmation prompts. Tests replace these.
var (
	confirmIn       io.Reader = os.Stdin
	stdinIsTerminal           = func() bool { return cli.IsTerminal(os.Stdin) }
)

// confirmDelete asks before a destructive command runs, unless skipped by
// --yes or confirm_delete: false. Without a terminal to ask on it refuses.
func confirmDelete(cfg *storage.Config, yes bool, action, prompt string) (bool, error) {
	if yes || !cfg.ConfirmDelete {
		return true, nil
	}
	if !stdinIsTerminal() {
		return false, &cli.ConfirmationError{
			Action: action,
			Hint:   "stdin is not a terminal. Use --yes to skip the prompt.",
		}
	}
	return cli.Confirm(confirmIn, os.Stdout, prompt)
}

// printTask prints one task the way `td list` shows it.
func printTask(pos int, text string, done bool) {
	if done {
		text = cli.Gray(cli.Strike(text))
	}
	fmt.Printf("%d. %s %s\n", pos, cli.Checkbox(done), text)
}
