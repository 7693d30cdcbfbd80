package shell

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultPrompt is used when no rc file is found or when it doesn't set a
// prompt.
const defaultPrompt = ">>> "

// Config keeps interactive mode configuration, read from rc.yaml.
type Config struct {
	Prompt    string `yaml:"prompt"`
	NoHistory bool   `yaml:"no-history"`
}

func defaultConfig() Config { return Config{Prompt: defaultPrompt} }

// Reads the configuration from the given file. A missing file is not an
// error; it yields the default configuration.
func readConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read rc file: %v", err)
	}
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("cannot parse rc file: %v", err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	return cfg, nil
}
