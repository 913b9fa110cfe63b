package funcopscfg

import (
	"fmt"

	"github.com/funcops/funcops/internal/naming"
)

// supported function worker runtimes.
var runtimes = map[string]bool{
	"node":       true,
	"python":     true,
	"dotnet":     true,
	"java":       true,
	"powershell": true,
	"custom":     true,
}

// Validate checks the loaded configuration for structural problems before
// any cloud call is made.
func (c *Root) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if err := naming.ValidateServiceName(c.Service.Name); err != nil {
		return err
	}
	if err := naming.ValidateStackName(c.Stack.Name); err != nil {
		return err
	}
	if c.Stack.Provider == "" {
		return fmt.Errorf("stack.provider must not be empty")
	}
	if c.Stack.Location == "" {
		return fmt.Errorf("stack.location must not be empty")
	}
	switch c.Stack.NameSuffix {
	case "", SuffixDeterministic, SuffixRandom:
	default:
		return fmt.Errorf("stack.nameSuffix must be %q or %q", SuffixDeterministic, SuffixRandom)
	}
	if c.App.Source == "" {
		return fmt.Errorf("app.source must not be empty")
	}
	if !runtimes[c.App.Runtime] {
		return fmt.Errorf("unsupported app.runtime: %q", c.App.Runtime)
	}
	if c.Secrets.AccountSIDEnv == "" || c.Secrets.AuthTokenEnv == "" || c.Secrets.SenderEnv == "" {
		return fmt.Errorf("secrets.accountSidEnv, secrets.authTokenEnv, secrets.senderEnv must all be set")
	}
	return nil
}
