package stack

import (
	"context"

	"github.com/funcops/funcops/domain/model"
)

// StatusInput represents a query for stack status.
type StatusInput struct {
	Stack      *model.Stack
	SuffixMode string
}

// Status reports per-resource existence through the provider port.
func (u *UseCase) Status(ctx context.Context, cmd StatusInput) (*model.StackStatus, error) {
	if cmd.Stack == nil {
		return nil, model.ErrStackInvalid
	}
	if err := u.ResolveSuffix(ctx, cmd.Stack, cmd.SuffixMode); err != nil {
		return nil, err
	}
	return u.StackPort.Status(ctx, cmd.Stack)
}
