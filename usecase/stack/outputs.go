package stack

import (
	"context"

	"github.com/funcops/funcops/domain/model"
)

// OutputsInput represents a query for stack outputs.
type OutputsInput struct {
	Stack      *model.Stack
	SuffixMode string
}

// Outputs returns the deployed app name and default hostname through the
// provider port.
func (u *UseCase) Outputs(ctx context.Context, cmd OutputsInput) (*model.StackOutputs, error) {
	if cmd.Stack == nil {
		return nil, model.ErrStackInvalid
	}
	if err := u.ResolveSuffix(ctx, cmd.Stack, cmd.SuffixMode); err != nil {
		return nil, err
	}
	return u.StackPort.Outputs(ctx, cmd.Stack)
}
