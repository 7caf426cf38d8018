package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/catalog"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
	"github.com/aussiebroadwan/orgrole/pkg/idx"
)

func profileCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles in a local profile store",
	}

	var email, role string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a profile and print its id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openStore(cmd, *configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			now := time.Now().UTC()
			p := domain.UserProfile{
				ID:        idx.NewAt(now).String(),
				Email:     email,
				Role:      role,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := db.Profiles().CreateProfile(cmd.Context(), p); err != nil {
				return fmt.Errorf("create profile: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return nil
		},
	}
	add.Flags().StringVar(&email, "email", "", "profile email")
	add.Flags().StringVar(&role, "role", catalog.RoleMember, "stored role key")
	_ = add.MarkFlagRequired("email")

	cmd.AddCommand(add)
	return cmd
}
