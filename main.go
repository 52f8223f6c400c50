package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/poolhouse/go-prize-pool/cmd/db"
	"github.com/poolhouse/go-prize-pool/cmd/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prize-pool",
		Short: "Pooled no-loss prize draw service",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.AddCommand(
		server.New(),
		db.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
