package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/zulandar/dmux/internal/orchestration"
)

func newRestartCmd(a *app) *cobra.Command {
	var (
		noAttach bool
		settle   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "restart [service...]",
		Short: "Restart services in their tmux windows",
		Long: "Sends Ctrl-C to each named service (or every configured service) and immediately types its incantation again, then attaches. " +
			"The old process is not waited for; use --settle if it needs time to exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(cmd, a, orchestration.VerbRestart, args, lifecycleOpts{noAttach: noAttach, settle: settle})
		},
	}

	cmd.Flags().BoolVar(&noAttach, "no-attach", false, "do not attach to the session afterwards")
	cmd.Flags().DurationVar(&settle, "settle", 0, "wait between the interrupt and the new command")
	return cmd
}
