package db

import (
	"github.com/spf13/cobra"

	"github.com/poolhouse/go-prize-pool/internal/util/command"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("db",
		newMigrate(),
	)
}
