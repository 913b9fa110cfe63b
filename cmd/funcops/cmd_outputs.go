package main

import (
	"github.com/funcops/funcops/config/funcopscfg"
	"github.com/funcops/funcops/usecase/stack"
	"github.com/spf13/cobra"
)

// newCmdOutputs prints the deployed app name and default hostname.
func newCmdOutputs() *cobra.Command {
	var file string
	var output string

	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Print stack outputs (function app name, default hostname)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(file)
			if err != nil {
				return err
			}
			u, err := buildUseCase(cmd, cfg)
			if err != nil {
				return err
			}

			outputs, err := u.Outputs(cmd.Context(), stack.OutputsInput{
				Stack:      cfg.ToStack(),
				SuffixMode: cfg.Stack.NameSuffix,
			})
			if err != nil {
				return err
			}
			return printOutputs(cmd, output, outputs)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", funcopscfg.DefaultConfigPath, "Path to funcops.yml")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json)")
	return cmd
}
