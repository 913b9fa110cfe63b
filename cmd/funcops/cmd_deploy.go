package main

import (
	"encoding/json"
	"fmt"

	"github.com/funcops/funcops/config/funcopscfg"
	"github.com/funcops/funcops/domain/model"
	"github.com/funcops/funcops/usecase/stack"
	"github.com/spf13/cobra"
)

// newCmdDeploy converges the whole stack and prints the outputs.
func newCmdDeploy() *cobra.Command {
	var file string
	var output string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the stack (resource group, storage, vault, secrets, plan, function app)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(file)
			if err != nil {
				return err
			}
			secrets, err := cfg.ReadSecrets()
			if err != nil {
				return err
			}
			u, err := buildUseCase(cmd, cfg)
			if err != nil {
				return err
			}

			s := cfg.ToStack()
			s.Secrets = secrets
			outputs, err := u.Deploy(cmd.Context(), stack.DeployInput{
				Stack:      s,
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

// printOutputs renders stack outputs in the requested format.
func printOutputs(cmd *cobra.Command, format string, outputs *model.StackOutputs) error {
	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(outputs)
	case "", "text":
		fmt.Fprintf(cmd.OutOrStdout(), "function_app_name: %s\n", outputs.FunctionAppName)
		fmt.Fprintf(cmd.OutOrStdout(), "default_hostname:  %s\n", outputs.DefaultHostname)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
