package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"inventory-hub/config"
	"inventory-hub/internal/model"
	userRepo "inventory-hub/internal/user/repository"
	userMySQL "inventory-hub/internal/user/repository/mysql"
	"inventory-hub/pkg/log"
	"inventory-hub/pkg/mysql"
)

func newSeedAdminCmd() *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create an admin account, or promote it if the email exists",
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

			repo := userMySQL.New(db, logger)

			existing, err := repo.GetOneUser(ctx, userRepo.GetOneUserOptions{Email: email})
			if err != nil {
				return err
			}
			if existing.ID != "" {
				role := model.RoleAdmin
				if _, err := repo.UpdateUser(ctx, userRepo.UpdateUserOptions{ID: existing.ID, Role: &role}); err != nil {
					return err
				}
				logger.Infof(ctx, "Promoted %s to admin", email)
				return nil
			}

			if password == "" {
				return fmt.Errorf("--password is required when creating a new account")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			created, err := repo.CreateUser(ctx, userRepo.CreateUserOptions{
				Name:         name,
				Email:        email,
				PasswordHash: string(hash),
				Role:         model.RoleAdmin,
			})
			if err != nil {
				return err
			}
			logger.Infof(ctx, "Created admin %s (%s)", created.Email, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email (required)")
	cmd.Flags().StringVar(&name, "name", "Administrator", "display name")
	cmd.Flags().StringVar(&password, "password", "", "password for a newly created account")
	cmd.MarkFlagRequired("email")

	return cmd
}
