package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zulandar/dmux/internal/orchestration"
)

func newListCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"status", "ls"},
		Short:   "Show configured services and their tmux windows",
		Long:    "Lists every configured service with the state of its tmux window: absent, idle (a shell in the foreground) or running. Never creates the session or any window.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, a, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or yaml")
	return cmd
}

func runList(cmd *cobra.Command, a *app, output string) error {
	if output != "table" && output != "yaml" {
		return fmt.Errorf("unknown output format %q (want table or yaml)", output)
	}
	if err := a.setup(); err != nil {
		return err
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return a.fail(err)
	}

	info, err := orchestration.Status(a.tmux, a.session, cfg)
	if err != nil {
		return a.fail(err)
	}

	out := cmd.OutOrStdout()
	if output == "yaml" {
		s, err := orchestration.MarshalStatusYAML(info)
		if err != nil {
			return a.fail(err)
		}
		fmt.Fprint(out, s)
		return nil
	}
	fmt.Fprint(out, orchestration.FormatStatus(info))
	return nil
}
