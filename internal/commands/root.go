package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/achrecon-dev/achrecon/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "achrecon",
		Short:   "Reconcile supplier invoices against ACH payments",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCommand())

	return rootCmd
}
