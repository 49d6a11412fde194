package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soyeahso/tenctl/internal/admin"
	"github.com/soyeahso/tenctl/internal/client"
	"github.com/soyeahso/tenctl/internal/config"
	"github.com/soyeahso/tenctl/internal/logging"
	"github.com/soyeahso/tenctl/internal/output"
)

var (
	cfgFile  string
	logLevel string
	compact  bool

	// resolved once per invocation
	cfg config.Config
	log *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenctl",
		Short: "tenctl — admin client for the multi-tenant control plane",
		Long: "tenctl manages accounts, users, roles, and API keys on a multi-tenant\n" +
			"control-plane service. Configuration resolves from TENCTL_CONFIG_FILE,\n" +
			"then ~/.tenctl/config.yaml, then built-in defaults.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logLevel
			if level == "" {
				level = "warn"
			}
			log = logging.New(nil, level)

			var err error
			if cfgFile != "" {
				cfg, err = config.FromFile(cfgFile)
			} else {
				cfg, err = config.Resolve()
			}
			if err != nil {
				return err
			}

			// Flags override the resolved config for this run only.
			if cmd.Flags().Changed("url") {
				cfg.URL, _ = cmd.Flags().GetString("url")
			}
			if cmd.Flags().Changed("api-key") {
				cfg.APIKey, _ = cmd.Flags().GetString("api-key")
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout, _ = cmd.Flags().GetFloat64("timeout")
			}
			if cmd.Flags().Changed("output") {
				cfg.Output, _ = cmd.Flags().GetString("output")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.tenctl/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")
	cmd.PersistentFlags().String("url", "", "control-plane base URL")
	cmd.PersistentFlags().String("api-key", "", "admin API key")
	cmd.PersistentFlags().Float64("timeout", 0, "request timeout in seconds")
	cmd.PersistentFlags().StringP("output", "o", "", "output format (table, json)")
	cmd.PersistentFlags().BoolVar(&compact, "compact", false, "collapse JSON output to a single line")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAdminCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newEventsCmd())

	return cmd
}

// newAdminDispatcher wires the transport and output collaborators from the
// resolved config.
func newAdminDispatcher() *admin.Admin {
	return admin.New(client.New(cfg, log), output.New(nil))
}

func renderOpts() admin.Options {
	return admin.Options{
		Format:  output.ParseFormat(cfg.Output),
		Compact: compact,
	}
}

// echoInvocation prints the invoked command line to stderr when
// echo_command is enabled.
func echoInvocation() {
	if cfg.Echo() {
		fmt.Fprintln(os.Stderr, "+ "+strings.Join(os.Args, " "))
	}
}

// Execute runs the root command.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tenctl:", err)
		return err
	}
	return nil
}
