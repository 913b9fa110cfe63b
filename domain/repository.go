package domain

import (
	"context"

	"github.com/funcops/funcops/domain/model"
)

// DeploymentRepository persists deployment history records.
type DeploymentRepository interface {
	Create(ctx context.Context, d *model.Deployment) error
	Get(ctx context.Context, id string) (*model.Deployment, error)
	List(ctx context.Context, stackName string) ([]*model.Deployment, error)
	// Latest returns the most recently started deployment of a stack, or
	// model.ErrDeploymentNotFound when the stack has never been deployed.
	Latest(ctx context.Context, stackName string) (*model.Deployment, error)
	Update(ctx context.Context, d *model.Deployment) error
}
