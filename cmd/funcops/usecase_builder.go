package main

import (
	"fmt"

	providerdrv "github.com/funcops/funcops/adapters/drivers/provider"
	"github.com/funcops/funcops/config/funcopscfg"
	"github.com/funcops/funcops/usecase/stack"
	"github.com/spf13/cobra"
)

// loadConfig loads and validates the config file named by the -f flag.
func loadConfig(file string) (*funcopscfg.Root, error) {
	if file == "" {
		file = funcopscfg.DefaultConfigPath
	}
	cfg, err := funcopscfg.Load(file)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", file, err)
	}
	return cfg, nil
}

// buildUseCase assembles the stack use case from config: provider driver
// from the registry, deployment history store from --db-url.
func buildUseCase(cmd *cobra.Command, cfg *funcopscfg.Root) (*stack.UseCase, error) {
	drv, err := providerdrv.New(cfg.Stack.Provider, cfg.Stack.Settings)
	if err != nil {
		return nil, err
	}

	dbURL, _ := cmd.Flags().GetString("db-url")
	repos, err := buildRepos(dbURL)
	if err != nil {
		return nil, err
	}

	return &stack.UseCase{
		Repos:     repos,
		StackPort: drv,
	}, nil
}
