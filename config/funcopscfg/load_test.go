package funcopscfg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/funcops/funcops/domain/model"
)

const sampleYAML = `
version: 1
service:
  name: funcops
stack:
  name: notify
  provider: azure
  location: westeurope
  settings:
    AZURE_SUBSCRIPTION_ID: ${FUNCOPS_TEST_SUB}
    AZURE_AUTH_METHOD: azure_cli
app:
  source: ./app
  runtime: node
  runtimeVersion: "20"
  settings:
    WEBSITE_TIME_ZONE: UTC
secrets:
  accountSidEnv: MSG_ACCOUNT_SID
  authTokenEnv: MSG_AUTH_TOKEN
  senderEnv: MSG_SENDER
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "funcops.yml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadExpandsSettings(t *testing.T) {
	t.Setenv("FUNCOPS_TEST_SUB", "00000000-0000-0000-0000-000000000001")
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Stack.Settings["AZURE_SUBSCRIPTION_ID"]; got != "00000000-0000-0000-0000-000000000001" {
		t.Errorf("subscription not expanded: %q", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	t.Setenv("FUNCOPS_TEST_SUB", "x")
	tests := []struct {
		name   string
		mutate func(*Root)
	}{
		{"bad version", func(c *Root) { c.Version = 2 }},
		{"bad stack name", func(c *Root) { c.Stack.Name = "Not_A_Label" }},
		{"missing location", func(c *Root) { c.Stack.Location = "" }},
		{"missing provider", func(c *Root) { c.Stack.Provider = "" }},
		{"bad runtime", func(c *Root) { c.App.Runtime = "cobol" }},
		{"bad suffix mode", func(c *Root) { c.Stack.NameSuffix = "static" }},
		{"missing secret env name", func(c *Root) { c.Secrets.SenderEnv = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, sampleYAML))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestReadSecrets(t *testing.T) {
	t.Setenv("FUNCOPS_TEST_SUB", "x")
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	t.Setenv("MSG_ACCOUNT_SID", "AC123")
	t.Setenv("MSG_AUTH_TOKEN", "tok")
	t.Setenv("MSG_SENDER", "+15550100")
	s, err := cfg.ReadSecrets()
	if err != nil {
		t.Fatalf("ReadSecrets: %v", err)
	}
	if s.AccountSID != "AC123" || s.AuthToken != "tok" || s.Sender != "+15550100" {
		t.Errorf("unexpected secrets: %+v", s)
	}

	t.Setenv("MSG_AUTH_TOKEN", "")
	if _, err := cfg.ReadSecrets(); !errors.Is(err, model.ErrSecretsMissing) {
		t.Errorf("expected ErrSecretsMissing, got %v", err)
	}
}

func TestToStack(t *testing.T) {
	t.Setenv("FUNCOPS_TEST_SUB", "x")
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	st := cfg.ToStack()
	if st.Name != "notify" || st.Provider != "azure" || st.Location != "westeurope" {
		t.Errorf("unexpected stack: %+v", st)
	}
	if st.App.Runtime != "node" || st.App.RuntimeVer != "20" {
		t.Errorf("unexpected app: %+v", st.App)
	}
	if st.Suffix != "" {
		t.Errorf("suffix must be unresolved after conversion, got %q", st.Suffix)
	}
}
