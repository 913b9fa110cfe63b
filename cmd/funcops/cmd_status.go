package main

import (
	"encoding/json"

	"github.com/funcops/funcops/config/funcopscfg"
	"github.com/funcops/funcops/usecase/stack"
	"github.com/spf13/cobra"
)

// newCmdStatus reports per-resource existence for the stack.
func newCmdStatus() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show per-resource status of the stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(file)
			if err != nil {
				return err
			}
			u, err := buildUseCase(cmd, cfg)
			if err != nil {
				return err
			}

			status, err := u.Status(cmd.Context(), stack.StatusInput{
				Stack:      cfg.ToStack(),
				SuffixMode: cfg.Stack.NameSuffix,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", funcopscfg.DefaultConfigPath, "Path to funcops.yml")
	return cmd
}
