package cmd

import (
	"movie-reviews/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := database.Migrate(cmd.Context(), rt.db, rt.logger); err != nil {
			rt.logger.Error("Migration failed", zap.Error(err))
			return err
		}

		rt.logger.Info("Database is up to date")
		return nil
	},
}
