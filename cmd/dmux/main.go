package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd() *cobra.Command {
	return newRootCmdWith(newApp())
}

func newRootCmdWith(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dmux",
		Short: "dmux — run services inside a tmux session",
		Long: "dmux keeps every configured service in its own window of a tmux session named 'dmux'. " +
			"Services are read from ~/.config/dmux/config.ini, one [section] per service with an " +
			"'incantation' holding the shell command. Add '@reboot dmux start' to your crontab to " +
			"bring everything up at boot.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to config file (default ~/.config/dmux/config.ini)")
	cmd.PersistentFlags().StringVar(&a.logPath, "log-file", "", "path to log file (default ~/.config/dmux/dmux.log)")
	cmd.PersistentFlags().StringVar(&a.session, "session", "", "tmux session name (default \"dmux\")")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAttachCmd(a))
	cmd.AddCommand(newStartCmd(a))
	cmd.AddCommand(newStopCmd(a))
	cmd.AddCommand(newRestartCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newDoctorCmd(a))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dmux %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	a := newApp()
	code := execute(newRootCmdWith(a))
	a.close()
	os.Exit(code)
}
