package stack

import (
	"context"

	"github.com/funcops/funcops/domain/model"
)

// DestroyInput represents a command to destroy a stack.
type DestroyInput struct {
	Stack      *model.Stack
	SuffixMode string
}

// Destroy tears down the stack through the provider port.
func (u *UseCase) Destroy(ctx context.Context, cmd DestroyInput) error {
	if cmd.Stack == nil {
		return model.ErrStackInvalid
	}
	if err := u.ResolveSuffix(ctx, cmd.Stack, cmd.SuffixMode); err != nil {
		return err
	}
	return u.StackPort.Deprovision(ctx, cmd.Stack)
}
