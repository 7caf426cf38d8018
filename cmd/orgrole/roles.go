package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/catalog"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/service"
)

func rolesCmd(configPath *string) *cobra.Command {
	var orgID string

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Print the role catalog, or the roles available in an organization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			roles := catalog.All()
			source := service.SourceCatalog

			if orgID != "" {
				db, err := openStore(cmd, *configPath)
				if err != nil {
					return err
				}
				defer db.Close()

				svc := &service.RolesService{Store: db}
				roles, source, err = svc.AvailableRoles(cmd.Context(), orgID)
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "source: %s\n", source)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tDESCRIPTION")
			for _, r := range roles {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Key, r.Name, r.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "organization id; reads provider roles from the profile store")
	return cmd
}
