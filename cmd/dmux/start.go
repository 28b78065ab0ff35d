package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/zulandar/dmux/internal/orchestration"
)

func newStartCmd(a *app) *cobra.Command {
	var noAttach bool

	cmd := &cobra.Command{
		Use:   "start [service...]",
		Short: "Start services in their tmux windows",
		Long:  "Starts the named services, or every configured service when none are named, by typing each incantation into its tmux window. Then attaches to the session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(cmd, a, orchestration.VerbStart, args, lifecycleOpts{noAttach: noAttach})
		},
	}

	cmd.Flags().BoolVar(&noAttach, "no-attach", false, "do not attach to the session afterwards")
	return cmd
}

type lifecycleOpts struct {
	noAttach bool
	settle   time.Duration
}

// runLifecycle is shared by start, stop and restart.
func runLifecycle(cmd *cobra.Command, a *app, verb orchestration.Verb, names []string, opts lifecycleOpts) error {
	if err := a.setup(); err != nil {
		return err
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return a.fail(err)
	}

	noAttach := opts.noAttach
	if !noAttach && verb != orchestration.VerbStop && !a.interactive() {
		a.log.Info("stdin is not a terminal, not attaching")
		noAttach = true
	}

	d := a.dispatcher(orchestration.DispatchOpts{Settle: opts.settle, NoAttach: noAttach})
	handled, err := d.Run(cfg, verb, names)
	if err != nil {
		return a.fail(err)
	}

	if noAttach || verb == orchestration.VerbStop {
		done := make([]string, len(handled))
		for i, s := range handled {
			done[i] = s.Name
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", pastTense(verb), strings.Join(done, ", "))
	}
	return nil
}

func pastTense(v orchestration.Verb) string {
	switch v {
	case orchestration.VerbStart:
		return "Started"
	case orchestration.VerbStop:
		return "Stopped"
	case orchestration.VerbRestart:
		return "Restarted"
	}
	return string(v)
}
