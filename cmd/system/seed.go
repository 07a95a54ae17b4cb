package system

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/shifaalhind/backend/config"
	"github.com/shifaalhind/backend/internal/fixture"
	"github.com/shifaalhind/backend/internal/seed"
	"github.com/shifaalhind/backend/pkg/database"
	"github.com/shifaalhind/backend/pkg/logs"
	"github.com/shifaalhind/backend/pkg/util/password"
)

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Wipe the database and load the demo dataset",
		Long: `Seed drops all existing rows and loads the built-in demo dataset:
hospitals, doctors, treatments, packages, translators, content pages and
staff accounts, all in English and Arabic. The command refuses to run when
the server environment is set to production.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			slog.SetDefault(logs.New(cfg))

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			loader := seed.New(client, cfg.Server.Environment, password.FromCentralConfig(cfg.Password), slog.Default())
			if err := loader.Run(ctx, fixture.Default()); err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}

			fmt.Println("Database seeded successfully.")
			return nil
		},
	}

	return cmd
}
