package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soyeahso/tenctl/internal/config"
	"github.com/soyeahso/tenctl/internal/version"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show tenctl configuration summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version.Info())
			fmt.Println()

			defaultPath, err := config.DefaultPath()
			if err != nil {
				return err
			}
			fmt.Printf("Config file:  %s\n", defaultPath)
			if envPath := os.Getenv(config.EnvConfigFile); envPath != "" {
				fmt.Printf("Env override: %s (%s)\n", envPath, fileState(envPath))
			}
			fmt.Println()

			fmt.Printf("URL:      %s\n", cfg.URL)
			if cfg.APIKey != "" {
				fmt.Printf("API key:  %s\n", maskKey(cfg.APIKey))
			} else {
				fmt.Println("API key:  (not set)")
			}
			if cfg.AgentID != "" {
				fmt.Printf("Agent:    %s\n", cfg.AgentID)
			}
			fmt.Printf("Timeout:  %gs\n", cfg.Timeout)
			fmt.Printf("Output:   %s\n", cfg.Output)
			fmt.Printf("Echo:     %v\n", cfg.Echo())

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				fmt.Printf("\nValidation issues (%d):\n", len(issues))
				for _, issue := range issues {
					fmt.Printf("  - %s\n", issue)
				}
			}
			return nil
		},
	}
}

func fileState(path string) string {
	if _, err := os.Stat(path); err == nil {
		return "active"
	}
	return "missing, ignored"
}

// maskKey hides all but the head of a credential.
func maskKey(key string) string {
	if len(key) <= 6 {
		return "******"
	}
	return key[:6] + "..."
}
