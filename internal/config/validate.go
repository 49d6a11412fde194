package config

import (
	"fmt"
	"net/url"
	"slices"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Config for issues. Returns nil if valid. Issues are
// advisory; commands run with whatever the config says.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if u, err := url.Parse(cfg.URL); err != nil || u.Scheme == "" || u.Host == "" {
		issues = append(issues, ValidationIssue{
			Path:    "url",
			Message: fmt.Sprintf("must be an absolute URL, got %q", cfg.URL),
		})
	}

	if cfg.Timeout <= 0 {
		issues = append(issues, ValidationIssue{
			Path:    "timeout",
			Message: fmt.Sprintf("must be positive, got %g", cfg.Timeout),
		})
	}

	validOutputs := []string{"table", "json"}
	if cfg.Output != "" && !slices.Contains(validOutputs, cfg.Output) {
		issues = append(issues, ValidationIssue{
			Path:    "output",
			Message: fmt.Sprintf("must be one of %v, got %q", validOutputs, cfg.Output),
		})
	}

	return issues
}
