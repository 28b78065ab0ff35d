package main

import (
	"github.com/spf13/cobra"
	"github.com/zulandar/dmux/internal/orchestration"
)

func newAttachCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attach",
		Short: "Attach this terminal to the dmux tmux session",
		Long:  "Attaches the current shell to the dmux tmux session, creating the session if it does not exist. Detach with the tmux prefix followed by 'd'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttach(a)
		},
	}
}

func runAttach(a *app) error {
	if err := a.setup(); err != nil {
		return err
	}
	return a.fail(a.dispatcher(orchestration.DispatchOpts{}).Attach())
}
