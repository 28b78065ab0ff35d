package main

import (
	"github.com/spf13/cobra"
	"github.com/zulandar/dmux/internal/orchestration"
)

func newStopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop [service...]",
		Short: "Stop services by interrupting their tmux windows",
		Long:  "Sends Ctrl-C to the window of each named service, or of every configured service when none are named. Windows are left open.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(cmd, a, orchestration.VerbStop, args, lifecycleOpts{})
		},
	}
}
