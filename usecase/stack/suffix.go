package stack

import (
	"context"
	"errors"
	"fmt"

	"github.com/funcops/funcops/domain/model"
	"github.com/funcops/funcops/internal/naming"
)

// Suffix modes.
const (
	SuffixDeterministic = "deterministic"
	SuffixRandom        = "random"
)

// ResolveSuffix fills in stack.Suffix. A suffix recorded by an earlier
// deployment always wins so re-deploys keep addressing the same resources;
// otherwise random mode draws a fresh value and the default derives a
// stable hash from the stack identifiers.
func (u *UseCase) ResolveSuffix(ctx context.Context, s *model.Stack, mode string) error {
	if s.Suffix != "" {
		return nil
	}

	if u.Repos != nil && u.Repos.Deployment != nil {
		latest, err := u.Repos.Deployment.Latest(ctx, s.Name)
		switch {
		case err == nil && latest.Suffix != "":
			s.Suffix = latest.Suffix
			return nil
		case err != nil && !errors.Is(err, model.ErrDeploymentNotFound):
			return fmt.Errorf("look up previous deployment: %w", err)
		}
	}

	switch mode {
	case SuffixRandom:
		suffix, err := naming.RandomSuffix()
		if err != nil {
			return err
		}
		s.Suffix = suffix
	case "", SuffixDeterministic:
		s.Suffix = naming.DeterministicSuffix(s.Service, s.Name)
	default:
		return fmt.Errorf("unknown suffix mode: %s", mode)
	}
	return nil
}
