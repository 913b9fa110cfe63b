package stack

import (
	"context"
	"time"

	"github.com/funcops/funcops/domain/model"
	"github.com/funcops/funcops/internal/logging"
)

// DeployInput represents a command to deploy a stack.
type DeployInput struct {
	Stack      *model.Stack
	SuffixMode string // deterministic (default) | random
}

// Deploy resolves the name suffix, records the attempt in the history
// store, and converges the stack through the provider port.
func (u *UseCase) Deploy(ctx context.Context, cmd DeployInput) (*model.StackOutputs, error) {
	if cmd.Stack == nil {
		return nil, model.ErrStackInvalid
	}
	if cmd.Stack.Secrets == nil {
		return nil, model.ErrSecretsMissing
	}
	if err := u.ResolveSuffix(ctx, cmd.Stack, cmd.SuffixMode); err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)

	rec := &model.Deployment{
		StackName: cmd.Stack.Name,
		Suffix:    cmd.Stack.Suffix,
		State:     model.DeploymentStateRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := u.Repos.Deployment.Create(ctx, rec); err != nil {
		return nil, err
	}

	outputs, err := u.StackPort.Provision(ctx, cmd.Stack)
	rec.FinishedAt = time.Now().UTC()
	if err != nil {
		rec.State = model.DeploymentStateFailed
		rec.Error = err.Error()
		if uerr := u.Repos.Deployment.Update(ctx, rec); uerr != nil {
			log.Warn(ctx, "failed to record deployment failure", "error", uerr)
		}
		return nil, err
	}

	rec.State = model.DeploymentStateSucceeded
	rec.AppName = outputs.FunctionAppName
	rec.Hostname = outputs.DefaultHostname
	rec.PackageHash = outputs.PackageHash
	if uerr := u.Repos.Deployment.Update(ctx, rec); uerr != nil {
		log.Warn(ctx, "failed to record deployment success", "error", uerr)
	}
	return outputs, nil
}
