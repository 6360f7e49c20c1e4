package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/td/internal/cli"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for td.

To load completions:

Bash:
  $ source <(td completion bash)
  # To load completions for each session, execute once:
  $ td completion bash > /etc/bash_completion.d/td

Zsh:
  $ td completion zsh > "${fpath[1]}/_td"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ td completion fish | source
  # To load completions for each session, execute once:
  $ td completion fish > ~/.config/fish/completions/td.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeRefs completes list positions, described by the todo text.
func completeRefs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	store, _, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for i, t := range store.Tasks() {
		pos := strconv.Itoa(i + 1)
		if !strings.HasPrefix(pos, toComplete) {
			continue
		}
		status := "pending"
		if t.Done {
			status = "done"
		}
		completions = append(completions, pos+"\t"+status+": "+cli.Truncate(t.Text, 40))
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
