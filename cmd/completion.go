package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion <shell>",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for moon.

To load completions:

Bash:
  $ moon completion bash > /etc/bash_completion.d/moon

Zsh:
  # If shell completion is not already enabled in your zsh, add:
  #   autoload -U compinit; compinit
  $ moon completion zsh > "${fpath[1]}/_moon"

Fish:
  $ moon completion fish > ~/.config/fish/completions/moon.fish

PowerShell:
  PS> moon completion powershell | Out-String | Invoke-Expression

After installing, restart your shell or source the completion file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// completionShells maps each supported shell to its script generator.
var completionShells = []struct {
	name string
	gen  func(w io.Writer) error
}{
	{"bash", func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) }},
	{"zsh", func(w io.Writer) error { return rootCmd.GenZshCompletion(w) }},
	{"fish", func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) }},
	{"powershell", func(w io.Writer) error { return rootCmd.GenPowerShellCompletionWithDesc(w) }},
}

func init() {
	for _, shell := range completionShells {
		gen := shell.gen
		completionCmd.AddCommand(&cobra.Command{
			Use:   shell.name,
			Short: fmt.Sprintf("Generate %s completion script", shell.name),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen(cmd.OutOrStdout())
			},
		})
	}
	rootCmd.AddCommand(completionCmd)
}
