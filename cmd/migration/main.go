// Command migration applies the database schema under db/migrations.
//
// Usage:
//
//	migration up
//	migration down 1
//	migration version
//	migration force 1774656000
//	migration goto 1774656100
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/sportsline-dashboard/internal/platform/logging"
	"github.com/spf13/cobra"
)

var logger = logging.New(logging.LevelInfo, logging.FormatConsole).Named("migration")

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newRootCmd() *cobra.Command {
	var migrationsDir string

	root := &cobra.Command{
		Use:           "migration",
		Short:         "Sportsline dashboard schema migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&migrationsDir, "dir", "", "Migrations directory (default: MIGRATIONS_DIR, ./db/migrations)")

	root.AddCommand(upCmd(&migrationsDir))
	root.AddCommand(downCmd(&migrationsDir))
	root.AddCommand(versionCmd(&migrationsDir))
	root.AddCommand(forceCmd(&migrationsDir))
	root.AddCommand(gotoCmd(&migrationsDir))
	return root
}
