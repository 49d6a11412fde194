package cli

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/soyeahso/tenctl/internal/client"
	"github.com/soyeahso/tenctl/internal/output"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Observe control-plane admin events",
	}

	cmd.AddCommand(newEventsTailCmd())
	return cmd
}

func newEventsTailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tail",
		Short: "Stream admin audit events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			echoInvocation()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			jsonOut := output.ParseFormat(cfg.Output) == output.FormatJSON
			c := client.New(cfg, log)
			err := c.WatchEvents(ctx, func(ev client.Event) {
				if jsonOut {
					data, err := json.Marshal(ev)
					if err != nil {
						return
					}
					fmt.Println(string(data))
					return
				}
				line := ev.Time.Format(time.RFC3339) + "  " + ev.Type
				if ev.AccountID != "" {
					line += "  account=" + ev.AccountID
				}
				if ev.UserID != "" {
					line += "  user=" + ev.UserID
				}
				if ev.Actor != "" {
					line += "  actor=" + ev.Actor
				}
				fmt.Println(line)
			})
			if ctx.Err() != nil {
				return nil // interrupted by the user
			}
			return err
		},
	}
}
