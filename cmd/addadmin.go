package main

import (
	"context"
	"fmt"

	"eventbot/internal/config"
	"eventbot/internal/organizer"
	"eventbot/pkg/domain"
	"eventbot/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// addAdminCommand constructs the 'add-admin' subcommand that promotes a
// Telegram user to admin with the given password. It is used to bootstrap the
// first administrator; further admins can be added from inside the bot.
func addAdminCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-admin",
		Short: "Promotes a Telegram user to admin",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			userID, _ := cmd.Flags().GetInt64("user-id")
			password, _ := cmd.Flags().GetString("password")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			org := organizer.New(strg, organizer.NewOptions(cfg))
			if err := org.AddAdmin(ctx, domain.UserID(userID), password); err != nil {
				logger.Fatal(ctx, "could not add admin", zap.Error(err))
			}

			fmt.Println("Admin added!") //nolint: forbidigo
		},
	}

	cmd.Flags().Int64("user-id", 0, "Telegram user ID to promote")
	cmd.Flags().String("password", "", "Admin password")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
