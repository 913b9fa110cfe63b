// Package funcopscfg defines the configuration schema (structs) for
// funcops.yml and the helpers that load, validate, and convert it into
// domain models.
package funcopscfg

// DefaultConfigPath is the config file looked up when -f is not given.
const DefaultConfigPath = "funcops.yml"

// Suffix modes for globally unique resource names.
const (
	SuffixDeterministic = "deterministic"
	SuffixRandom        = "random"
)

// Root is the root structure of funcops.yml.
// Example:
// version: 1
// service: { name: funcops }
// stack: { name: notify, provider: azure, location: westeurope }
// app: { source: ./app, runtime: node, runtimeVersion: "20" }
// secrets: { accountSidEnv: MESSAGING_ACCOUNT_SID, ... }
type Root struct {
	Version int     `yaml:"version"`
	Service Service `yaml:"service"`
	Stack   Stack   `yaml:"stack"`
	App     App     `yaml:"app"`
	Secrets Secrets `yaml:"secrets"`
}

// Service represents global service settings scoping naming hashes.
type Service struct {
	Name string `yaml:"name"` // RFC1123-compliant DNS label
}

// Stack represents the target stack and provider-specific settings.
type Stack struct {
	Name       string            `yaml:"name"`
	Provider   string            `yaml:"provider"`             // e.g., azure
	Location   string            `yaml:"location"`             // e.g., westeurope
	NameSuffix string            `yaml:"nameSuffix,omitempty"` // deterministic (default) | random
	Settings   map[string]string `yaml:"settings,omitempty"`   // provider-specific settings, ${VAR} expanded
}

// App represents the function app payload to deploy.
type App struct {
	Source         string            `yaml:"source"`             // path to the app source directory
	Runtime        string            `yaml:"runtime"`            // node | python | dotnet | java | powershell | custom
	RuntimeVersion string            `yaml:"runtimeVersion"`     // worker version, e.g. "20"
	Settings       map[string]string `yaml:"settings,omitempty"` // extra app settings merged last
}

// Secrets names the environment variables holding the messaging credential
// set. Values are read from the environment at deploy time, never from the
// config file.
type Secrets struct {
	AccountSIDEnv string `yaml:"accountSidEnv"`
	AuthTokenEnv  string `yaml:"authTokenEnv"`
	SenderEnv     string `yaml:"senderEnv"`
}
