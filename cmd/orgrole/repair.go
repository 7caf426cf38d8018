package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/app"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/service"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/pkg/slogx"
)

// openStore opens the profile store without requiring a trust anchor, so
// operators can repair a deployment whose token configuration is broken.
// Logs go to stderr to keep stdout for command output.
func openStore(cmd *cobra.Command, configPath string) (store.Store, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	app.NewLogger(cfg, cmd.ErrOrStderr())

	return app.OpenStore(cmd.Context(), cfg.Database)
}

func repairCmd(configPath *string) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Restore the admin role of the first user with the given email",
		Long: "Finds the earliest created profile whose email matches exactly and sets its role to \"admin\".\n" +
			"A missing user is reported and leaves the store untouched. Store failures exit with status 1.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openStore(cmd, *configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := slogx.With(cmd.Context(), "component", "cli")

			svc := &service.RepairService{Store: db}
			result, err := svc.RestoreAdmin(ctx, email)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user to repair (matched exactly)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
