package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable consulted when no path is passed to Load.
const PathEnv = "ERRORGEN_CONFIG_PATH"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (env-default tags, probabilities from defaults()).
// The YAML file path is path, falling back to ERRORGEN_CONFIG_PATH and then
// "./errorgen.yaml". If the file does not exist and no path was given
// explicitly, configuration is loaded from ENV + defaults only.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = os.Getenv(PathEnv)
	}
	explicitPath := path != ""
	if !explicitPath {
		path = "./errorgen.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
