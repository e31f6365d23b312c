package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource is reported as the source when no file was found.
const EmbeddedSource = "embedded"

// Default returns the embedded configuration.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal default: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration and returns it with the path it came from.
// Search order: customPath -> ~/.sokoban/config.yaml -> ./configs/config.yaml
// -> embedded default. Files only need to set the values they change.
func Load(customPath string) (Config, string, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, "", err
	}

	if customPath != "" {
		if err := readInto(customPath, &cfg); err != nil {
			return Config{}, "", err
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := readInto(path, &cfg); err != nil {
			return Config{}, "", err
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, "", fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, path, nil
	}

	return cfg, EmbeddedSource, nil
}

func readInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".sokoban", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", "config.yaml"))
}
