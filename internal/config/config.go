package config

import "fmt"

// ConfigError represents a configuration error: an unreadable or malformed
// config file, or a failure persisting one.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Defaults returns a Config with all defaults applied. The result is fully
// usable without any config file present.
func Defaults() Config {
	echo := true
	return Config{
		URL:         "http://localhost:1933",
		Timeout:     60.0,
		Output:      "table",
		EchoCommand: &echo,
	}
}
