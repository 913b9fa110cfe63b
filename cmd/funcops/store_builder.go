package main

import (
	"fmt"

	"github.com/funcops/funcops/adapters/store/memory"
	"github.com/funcops/funcops/adapters/store/rdb"
	"github.com/funcops/funcops/usecase/stack"
)

// buildRepos opens the deployment history store for the given URL.
// "memory:" keeps history in-process, everything else goes through GORM.
func buildRepos(dbURL string) (*stack.Repos, error) {
	if dbURL == "memory:" {
		return &stack.Repos{Deployment: memory.NewInMemoryDeploymentRepository()}, nil
	}

	db, err := rdb.OpenFromURL(dbURL)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	if err := rdb.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate history store: %w", err)
	}
	return &stack.Repos{Deployment: rdb.NewDeploymentRepository(db)}, nil
}
