package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scanguard/internal/account"
	"scanguard/internal/config"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
)

// accountCommand groups operator tasks on accounts.
func accountCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manages accounts",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Creates an account of any tier and prints its API key",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			email, _ := cmd.Flags().GetString("email")
			rawTier, _ := cmd.Flags().GetString("tier")

			tier, err := domain.ParseTier(rawTier)
			if err != nil {
				logger.Fatal(ctx, "invalid tier", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			registry, err := account.New(strg, account.Options{})
			if err != nil {
				logger.Fatal(ctx, "could not create account registry", zap.Error(err))
			}

			a, err := registry.Create(ctx, email, tier)
			if err != nil {
				logger.Fatal(ctx, "could not create account", zap.Error(err))
			}

			fmt.Println(a.APIKey) //nolint: forbidigo
		},
	}
	create.Flags().String("email", "", "Contact email of the account")
	create.Flags().String("tier", string(domain.TierFree), "Tier: free, pro or enterprise")
	_ = create.MarkFlagRequired("email")

	resetUsage := &cobra.Command{
		Use:   "reset-usage",
		Short: "Starts a new usage period for accounts still in a past month",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			registry, err := account.New(strg, account.Options{})
			if err != nil {
				logger.Fatal(ctx, "could not create account registry", zap.Error(err))
			}

			n, err := registry.ResetUsage(ctx, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not reset usage", zap.Error(err))
			}

			fmt.Printf("reset %d accounts\n", n) //nolint: forbidigo
		},
	}

	cmd.AddCommand(create, resetUsage)

	return cmd
}
