package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Resolve determines the runtime configuration. Resolution order:
//
//  1. The file named by TENCTL_CONFIG_FILE, if the variable is set and the
//     file exists. A set variable pointing at a missing file is not an
//     error; resolution falls through.
//  2. The default path (~/.tenctl/config.yaml), if present.
//  3. Built-in defaults.
//
// Missing files never fail; a designated file that is unreadable or
// malformed fails with *ConfigError.
func Resolve() (Config, error) {
	if envPath := os.Getenv(EnvConfigFile); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return FromFile(envPath)
		}
	}

	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	if _, err := os.Stat(path); err == nil {
		return FromFile(path)
	}
	return Defaults(), nil
}

// FromFile parses the config file at path. Unmarshaling over a prefilled
// Defaults() struct fills omitted keys only; keys the file provides keep
// their value, including explicit zeros. Unknown keys are ignored.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigError{Message: "failed to read " + path, Err: err}
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ConfigError{Message: "failed to parse " + path, Err: err}
	}
	return cfg, nil
}

// Save writes the full config to the default path, creating intermediate
// directories and replacing any prior content. Persistence always targets
// the default path, never the TENCTL_CONFIG_FILE override.
func Save(cfg Config) error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return &ConfigError{Message: "failed to create config directory", Err: err}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return &ConfigError{Message: "failed to serialize config", Err: err}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &ConfigError{Message: "failed to write " + path, Err: err}
	}
	return nil
}

// LoadRaw reads a config file into a generic map for key-based access.
// A missing file yields an empty map.
func LoadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, &ConfigError{Message: "failed to read " + path, Err: err}
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Message: "failed to parse " + path, Err: err}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// SaveRaw writes a generic map back to a YAML config file.
func SaveRaw(path string, raw map[string]any) error {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return &ConfigError{Message: "failed to serialize config", Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return &ConfigError{Message: "failed to create config directory", Err: err}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &ConfigError{Message: "failed to write " + path, Err: err}
	}
	return nil
}
