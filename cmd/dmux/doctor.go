package main

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/zulandar/dmux/internal/config"
	"github.com/zulandar/dmux/internal/orchestration"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check system prerequisites and configuration",
		Long:  "Runs diagnostic checks on dmux prerequisites: tmux binary, config file, log file and tmux session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, a)
		},
	}
}

type checkResult struct {
	name   string
	status string // "PASS", "FAIL", "WARN"
	detail string
}

func runDoctor(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "dmux Doctor")
	fmt.Fprintln(out, "===========")

	var results []checkResult

	// 1. tmux binary
	tmuxResult := checkBinary("tmux")
	results = append(results, tmuxResult)

	// 2. Log file (opening it also resolves default paths)
	if err := a.setup(); err != nil {
		results = append(results, checkResult{"Log file", "FAIL", err.Error()})
	} else {
		results = append(results, checkResult{"Log file", "PASS", a.logPath})

		// 3. Config
		results = append(results, checkConfig(a.configPath))

		// 4. Session
		if tmuxResult.status == "PASS" {
			results = append(results, checkSession(a.tmux, a.session))
		} else {
			results = append(results, checkResult{"tmux session", "FAIL", "skipped (no tmux)"})
		}
	}

	passed, failed, warned := 0, 0, 0
	for _, r := range results {
		printCheckResult(out, r)
		switch r.status {
		case "PASS":
			passed++
		case "FAIL":
			failed++
		case "WARN":
			warned++
		}
	}

	fmt.Fprintf(out, "\n%d passed, %d failed, %d warning\n", passed, failed, warned)

	if failed > 0 {
		return a.fail(fmt.Errorf("%d check(s) failed", failed))
	}
	return nil
}

func printCheckResult(out io.Writer, r checkResult) {
	status := r.status
	switch r.status {
	case "PASS":
		status = color.GreenString(status)
	case "FAIL":
		status = color.RedString(status)
	case "WARN":
		status = color.YellowString(status)
	}
	fmt.Fprintf(out, "[%s] %s: %s\n", status, r.name, r.detail)
}

func checkBinary(name string) checkResult {
	path, err := exec.LookPath(name)
	if err != nil {
		return checkResult{name, "FAIL", "not found in PATH"}
	}
	out, err := exec.Command(path, "-V").Output()
	if err != nil {
		return checkResult{name, "PASS", "found (version unknown)"}
	}
	return checkResult{name, "PASS", strings.TrimSpace(strings.Split(string(out), "\n")[0])}
}

func checkConfig(path string) checkResult {
	cfg, err := config.Load(path)
	if err != nil {
		return checkResult{"Config file", "FAIL", err.Error()}
	}
	if len(cfg.Services) == 0 {
		return checkResult{"Config file", "WARN", fmt.Sprintf("%s: no services configured", path)}
	}
	return checkResult{"Config file", "PASS", fmt.Sprintf("%s: %d service(s): %s", path, len(cfg.Services), strings.Join(cfg.Names(), ", "))}
}

func checkSession(t orchestration.Tmux, name string) checkResult {
	_, exists, err := orchestration.OpenSession(t, name)
	if err != nil {
		return checkResult{"tmux session", "FAIL", err.Error()}
	}
	if !exists {
		return checkResult{"tmux session", "WARN", fmt.Sprintf("%q not running (created on next start)", name)}
	}
	return checkResult{"tmux session", "PASS", fmt.Sprintf("%q running", name)}
}
