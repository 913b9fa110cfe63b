package funcopscfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a deserialized
// Root. Stack settings values support ${VAR} environment expansion so
// subscription IDs and auth material can stay out of the file. It performs
// no validation beyond YAML decoding; validation is handled elsewhere.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	for k, v := range cfg.Stack.Settings {
		cfg.Stack.Settings[k] = os.ExpandEnv(v)
	}

	return &cfg, nil
}
