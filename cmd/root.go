package cmd

import (
	"context"
	"fmt"
	"log"

	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "movie-reviews",
	Short:         "Movie reviews API server and admin tools",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, createAdminCmd, migrateCmd)
}

// Execute runs the command line. Without a subcommand it serves the API.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// runtime holds what every subcommand needs.
type runtime struct {
	config *utils.Config
	logger *zap.Logger
	db     database.PgxIface
	repo   *repository.Repository
}

func bootstrap(ctx context.Context) (*runtime, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		logger.Sync()
		return nil, err
	}

	logger.Info("Database connected successfully",
		zap.String("host", config.Database.Host),
		zap.String("database", config.Database.Name))

	return &runtime{
		config: config,
		logger: logger,
		db:     db,
		repo:   repository.NewRepository(db, logger),
	}, nil
}

func (rt *runtime) Close() {
	rt.db.Close()
	rt.logger.Sync()
}
