package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clocked-app/clocked/internal/config"
	"github.com/clocked-app/clocked/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.OpenDB(cfg.DBPath)
			if err != nil {
				return err
			}
			defer database.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "database ready at %s\n", cfg.DBPath)
			return nil
		},
	}
}
