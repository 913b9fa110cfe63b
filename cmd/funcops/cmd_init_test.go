package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funcops/funcops/config/funcopscfg"
	"gopkg.in/yaml.v3"
)

func TestInitCommand(t *testing.T) {
	tests := []struct {
		name       string
		existing   string // pre-existing funcops.yml content, "" for none
		forceFlag  bool
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:      "new_directory",
			forceFlag: false,
			wantErr:   false,
		},
		{
			name:       "existing_config_no_force",
			existing:   "version: 1\n",
			forceFlag:  false,
			wantErr:    true,
			wantErrMsg: "already exists",
		},
		{
			name:      "existing_config_with_force",
			existing:  "version: 1\n",
			forceFlag: true,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			if tt.existing != "" {
				if err := os.WriteFile(filepath.Join(tmpDir, funcopscfg.DefaultConfigPath), []byte(tt.existing), 0644); err != nil {
					t.Fatalf("creating existing file: %v", err)
				}
			}

			oldWd, err := os.Getwd()
			if err != nil {
				t.Fatalf("getting working directory: %v", err)
			}
			defer func() {
				if err := os.Chdir(oldWd); err != nil {
					t.Errorf("restoring working directory: %v", err)
				}
			}()
			if err := os.Chdir(tmpDir); err != nil {
				t.Fatalf("changing to temp directory: %v", err)
			}

			cmd := newCmdInit()
			err = runInit(cmd, tt.forceFlag)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantErrMsg)
				} else if !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Errorf("expected error containing %q, got %q", tt.wantErrMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data, err := os.ReadFile(filepath.Join(tmpDir, funcopscfg.DefaultConfigPath))
			if err != nil {
				t.Fatalf("reading funcops.yml: %v", err)
			}

			var config map[string]interface{}
			if err := yaml.Unmarshal(data, &config); err != nil {
				t.Fatalf("parsing funcops.yml: %v", err)
			}

			if version, ok := config["version"].(int); !ok || version != 1 {
				t.Errorf("expected version=1, got %v", config["version"])
			}
			if stack, ok := config["stack"].(map[string]interface{}); !ok {
				t.Errorf("expected stack to be map, got %T", config["stack"])
			} else if provider, ok := stack["provider"].(string); !ok || provider != "azure" {
				t.Errorf("expected stack.provider=azure, got %v", stack["provider"])
			}
			if secrets, ok := config["secrets"].(map[string]interface{}); !ok {
				t.Errorf("expected secrets to be map, got %T", config["secrets"])
			} else {
				for _, key := range []string{"accountSidEnv", "authTokenEnv", "senderEnv"} {
					if v, ok := secrets[key].(string); !ok || v == "" {
						t.Errorf("expected secrets.%s to be set, got %v", key, secrets[key])
					}
				}
			}
		})
	}
}

func TestInitScaffoldValidates(t *testing.T) {
	// The scaffold must pass config validation once the env placeholder
	// is substituted, so a fresh project deploys without config edits.
	t.Setenv("AZURE_SUBSCRIPTION_ID", "00000000-0000-0000-0000-000000000000")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, funcopscfg.DefaultConfigPath)
	if err := os.WriteFile(path, []byte(initialConfigYAML), 0644); err != nil {
		t.Fatalf("writing scaffold: %v", err)
	}

	cfg, err := funcopscfg.Load(path)
	if err != nil {
		t.Fatalf("loading scaffold: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("scaffold failed validation: %v", err)
	}
}
