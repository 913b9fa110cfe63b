package main

import (
	"fmt"

	"github.com/funcops/funcops/config/funcopscfg"
	"github.com/funcops/funcops/internal/archive"
	"github.com/spf13/cobra"
)

// newCmdPackage builds the deployment zip locally without any cloud call.
func newCmdPackage() *cobra.Command {
	var file string
	var out string

	cmd := &cobra.Command{
		Use:   "package",
		Short: "Build the deployment zip locally and print its content hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(file)
			if err != nil {
				return err
			}
			hash, err := archive.Package(cfg.App.Source, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "package: %s\n", out)
			fmt.Fprintf(cmd.OutOrStdout(), "sha256:  %s\n", hash)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", funcopscfg.DefaultConfigPath, "Path to funcops.yml")
	cmd.Flags().StringVarP(&out, "out", "O", "funcops-package.zip", "Output zip path")
	return cmd
}
