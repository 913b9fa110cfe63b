package main

import (
	"fmt"
	"os"

	"github.com/funcops/funcops/config/funcopscfg"
	"github.com/spf13/cobra"
)

const initialConfigYAML = `version: 1
service:
  name: funcops
stack:
  name: notify
  provider: azure
  location: westeurope
  # nameSuffix: random
  settings:
    AZURE_SUBSCRIPTION_ID: ${AZURE_SUBSCRIPTION_ID}
    AZURE_AUTH_METHOD: azure_cli
app:
  source: ./app
  runtime: node
  runtimeVersion: "20"
secrets:
  accountSidEnv: MESSAGING_ACCOUNT_SID
  authTokenEnv: MESSAGING_AUTH_TOKEN
  senderEnv: MESSAGING_SENDER
`

// newCmdInit scaffolds a funcops.yml in the working directory.
func newCmdInit() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a funcops.yml scaffold",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing funcops.yml")
	return cmd
}

func runInit(cmd *cobra.Command, forceFlag bool) error {
	path := funcopscfg.DefaultConfigPath
	if !forceFlag {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use -f to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, []byte(initialConfigYAML), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
