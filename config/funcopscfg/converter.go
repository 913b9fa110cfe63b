package funcopscfg

import (
	"fmt"
	"os"
	"strings"

	"github.com/funcops/funcops/domain/model"
)

// ToStack converts a validated configuration into a domain stack. The
// suffix is left unresolved; use cases fill it in from the history store
// or the deterministic hash.
func (c *Root) ToStack() *model.Stack {
	return &model.Stack{
		Name:     c.Stack.Name,
		Service:  c.Service.Name,
		Location: c.Stack.Location,
		Provider: c.Stack.Provider,
		Settings: c.Stack.Settings,
		App: model.StackApp{
			SourceDir:     c.App.Source,
			Runtime:       c.App.Runtime,
			RuntimeVer:    c.App.RuntimeVersion,
			ExtraSettings: c.App.Settings,
		},
	}
}

// ReadSecrets resolves the messaging credential set from the environment
// variables named in the config. All three must be present and non-empty
// before any cloud call.
func (c *Root) ReadSecrets() (*model.StackSecrets, error) {
	read := func(env string) (string, error) {
		v := strings.TrimSpace(os.Getenv(env))
		if v == "" {
			return "", fmt.Errorf("%w: environment variable %s is empty", model.ErrSecretsMissing, env)
		}
		return v, nil
	}
	sid, err := read(c.Secrets.AccountSIDEnv)
	if err != nil {
		return nil, err
	}
	token, err := read(c.Secrets.AuthTokenEnv)
	if err != nil {
		return nil, err
	}
	sender, err := read(c.Secrets.SenderEnv)
	if err != nil {
		return nil, err
	}
	return &model.StackSecrets{AccountSID: sid, AuthToken: token, Sender: sender}, nil
}
