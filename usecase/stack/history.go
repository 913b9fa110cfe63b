package stack

import (
	"context"

	"github.com/funcops/funcops/domain/model"
)

// HistoryInput represents a query for recorded deployments.
type HistoryInput struct {
	StackName string // empty lists every stack
}

// History lists recorded deployments from the history store.
func (u *UseCase) History(ctx context.Context, cmd HistoryInput) ([]*model.Deployment, error) {
	return u.Repos.Deployment.List(ctx, cmd.StackName)
}
