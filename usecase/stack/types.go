package stack

import (
	"github.com/funcops/funcops/domain"
	"github.com/funcops/funcops/domain/model"
)

// Repos holds repositories needed for stack use cases.
type Repos struct {
	Deployment domain.DeploymentRepository
}

// UseCase wires repositories and the provider port for stack use cases.
type UseCase struct {
	Repos     *Repos
	StackPort model.StackPort
}
