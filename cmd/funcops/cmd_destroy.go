package main

import (
	"fmt"

	"github.com/funcops/funcops/config/funcopscfg"
	"github.com/funcops/funcops/usecase/stack"
	"github.com/spf13/cobra"
)

// newCmdDestroy deletes the stack resource group and purges the vault.
func newCmdDestroy() *cobra.Command {
	var file string
	var yes bool

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Destroy the stack (deletes the resource group, purges the vault)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(file)
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("destroy deletes every resource of stack %q; re-run with --yes to confirm", cfg.Stack.Name)
			}
			u, err := buildUseCase(cmd, cfg)
			if err != nil {
				return err
			}

			if err := u.Destroy(cmd.Context(), stack.DestroyInput{
				Stack:      cfg.ToStack(),
				SuffixMode: cfg.Stack.NameSuffix,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stack %s destroyed\n", cfg.Stack.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", funcopscfg.DefaultConfigPath, "Path to funcops.yml")
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm destruction without prompting")
	return cmd
}
