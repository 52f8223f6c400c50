package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/config"
	"github.com/poolhouse/go-prize-pool/internal/storage"
)

func newMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Applies the draw history schema",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runMigrate(); err != nil {
				log.Fatal().Err(err).Msg("Failed to apply migrations")
			}
		},
	}
}

func runMigrate() error {
	cfg := config.DefaultServerConfigFromEnv()

	db, err := api.NewDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := storage.NewPostgresStore(db).Migrate(ctx); err != nil {
		return err
	}

	log.Info().Msg("Migrations applied")
	return nil
}
