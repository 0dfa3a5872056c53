package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"inventory-hub/config"
	"inventory-hub/pkg/log"
	"inventory-hub/pkg/mysql"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := log.Init(log.ZapConfig{Level: "info", Mode: "production", Encoding: "console"})

			db, err := mysql.Connect(ctx, cfg.MySQL)
			if err != nil {
				return err
			}
			defer db.Close()

			entries, err := migrationFS.ReadDir("migrations")
			if err != nil {
				return err
			}
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			sort.Strings(names)

			for _, name := range names {
				raw, err := migrationFS.ReadFile("migrations/" + name)
				if err != nil {
					return err
				}
				for _, stmt := range strings.Split(string(raw), ";") {
					stmt = strings.TrimSpace(stmt)
					if stmt == "" {
						continue
					}
					if _, err := db.ExecContext(ctx, stmt); err != nil {
						return fmt.Errorf("migration %s: %w", name, err)
					}
				}
				logger.Infof(ctx, "Applied %s", name)
			}

			logger.Info(ctx, "Schema up to date")
			return nil
		},
	}
}
