// Command orgrole runs the organization role service and its operator tools.
//
// Subcommands:
//
//	serve        HTTP API
//	migrate      apply pending profile store migrations and exit
//	repair       restore a user's admin role by email
//	roles        print the role catalog or an organization's roles
//	profile add  create a profile (local development)
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "orgrole",
		Short: "Organization role resolution and repair",
		// Errors are logged by main.
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default ./orgrole.yaml)")

	root.AddCommand(
		serveCmd(&configPath),
		migrateCmd(&configPath),
		repairCmd(&configPath),
		rolesCmd(&configPath),
		profileCmd(&configPath),
	)
	return root
}
