// Package cli wires the application together behind cobra commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "clocked" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clocked",
		Short: "Work-time tracking service",
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
	)

	return root
}
