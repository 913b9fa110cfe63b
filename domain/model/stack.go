package model

import "context"

// Stack represents one desired function app stack: the resource group and
// everything inside it.
type Stack struct {
	Name     string            // RFC 1123 label, feeds resource names
	Service  string            // service identifier scoping naming hashes
	Location string            // Azure region, e.g. westeurope
	Provider string            // provider driver name, e.g. azure
	Settings map[string]string // provider-specific settings (subscription, auth)

	// Suffix disambiguates global resource names (storage account, vault,
	// site). Resolved before the driver is called: either the deterministic
	// stack hash or a persisted random value.
	Suffix string

	App     StackApp
	Secrets *StackSecrets // sensitive, never persisted
}

// StackApp describes the function app payload and runtime.
type StackApp struct {
	SourceDir     string            // directory packaged into the deployment zip
	Runtime       string            // functions worker runtime, e.g. node, python
	RuntimeVer    string            // worker version, e.g. 20
	ExtraSettings map[string]string // additional app settings merged last
}

// StackSecrets carries the messaging credential set stored in the vault.
type StackSecrets struct {
	AccountSID string
	AuthToken  string
	Sender     string
}

// SecretNames are the vault secret names for the messaging credential set,
// in the order they are written.
var SecretNames = []string{"messaging-account-sid", "messaging-auth-token", "messaging-sender"}

// Values returns the secret values in SecretNames order.
func (s *StackSecrets) Values() []string {
	return []string{s.AccountSID, s.AuthToken, s.Sender}
}

// StackOutputs are the two values surfaced after a deploy. PackageHash is
// carried for history records but not printed.
type StackOutputs struct {
	FunctionAppName string `json:"function_app_name"`
	DefaultHostname string `json:"default_hostname"`
	PackageHash     string `json:"-"`
}

// StackStatus reports per-resource existence for a stack.
type StackStatus struct {
	ResourceGroup  bool   `json:"resource_group"`
	StorageAccount bool   `json:"storage_account"`
	KeyVault       bool   `json:"key_vault"`
	Plan           bool   `json:"plan"`
	FunctionApp    bool   `json:"function_app"`
	AppState       string `json:"app_state,omitempty"` // e.g. Running, Stopped
	Provisioned    bool   `json:"provisioned"`
}

// StackPort is the domain port for stack operations implemented by
// provider drivers.
type StackPort interface {
	Provision(ctx context.Context, stack *Stack) (*StackOutputs, error)
	Deprovision(ctx context.Context, stack *Stack) error
	Status(ctx context.Context, stack *Stack) (*StackStatus, error)
	Outputs(ctx context.Context, stack *Stack) (*StackOutputs, error)
}
