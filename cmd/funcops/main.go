package main

import (
	"context"
	"os"

	"log/slog"

	_ "github.com/funcops/funcops/adapters/drivers/provider/azure"
	"github.com/funcops/funcops/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "funcops",
		Short:   "Funcops CLI",
		Long:    "Funcops CLI - provision Azure Functions notification stacks",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultDB := os.Getenv("FUNCOPS_DB_URL")
	if defaultDB == "" {
		defaultDB = "sqlite:funcops.db"
	}
	cmd.PersistentFlags().String("db-url", defaultDB, "Deployment history database URL (env FUNCOPS_DB_URL) (sqlite:/path/to.db | sqlite::memory:)")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env FUNCOPS_LOG_FORMAT)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("FUNCOPS_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		l, err := logging.New(format, slog.LevelInfo)
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdInit())
	cmd.AddCommand(newCmdDeploy())
	cmd.AddCommand(newCmdDestroy())
	cmd.AddCommand(newCmdStatus())
	cmd.AddCommand(newCmdOutputs())
	cmd.AddCommand(newCmdPackage())
	cmd.AddCommand(newCmdHistory())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
