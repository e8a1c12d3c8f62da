package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RHFBAH/donation-reconciler/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "donrec",
		Short:   "Reconcile donation-platform exports against bank settlements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newReconcileCommand())

	return rootCmd
}
