//go:build !unittest

package orchestration

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// RealTmux is the production implementation that calls the real tmux binary.
type RealTmux struct{}

func (RealTmux) HasSession(name string) (bool, error) {
	cmd := exec.Command("tmux", "has-session", "-t", "="+name)
	if err := cmd.Run(); err != nil {
		// Exit code 1 covers both "no such session" and "no server running".
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return false, nil
		}
		return false, fmt.Errorf("check tmux session %q: %w", name, err)
	}
	return true, nil
}

func (RealTmux) CreateSession(name string) error {
	cmd := exec.Command("tmux", "new-session", "-d", "-s", name)
	// Unset TMUX so this works when invoked from inside an existing tmux session.
	cmd.Env = envWithoutTMUX()
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("create tmux session %q: %s: %w", name, strings.TrimSpace(string(out)), err)
	}
	return nil
}

// envWithoutTMUX returns the current environment with the TMUX variable removed,
// allowing tmux new-session to work when called from inside an existing session.
func envWithoutTMUX() []string {
	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "TMUX=") {
			env = append(env, e)
		}
	}
	return env
}

func (RealTmux) FindWindow(session, name string) (string, bool, error) {
	cmd := exec.Command("tmux", "list-windows", "-t", "="+session, "-F", "#{window_id} #{window_name}")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", false, fmt.Errorf("list windows in %q: %s: %w", session, strings.TrimSpace(string(out)), err)
	}
	id, ok := matchWindow(string(out), name)
	return id, ok, nil
}

func (RealTmux) NewWindow(session, name string) (string, error) {
	cmd := exec.Command("tmux", "new-window", "-d", "-t", "="+session+":", "-n", name, "-P", "-F", "#{window_id}")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("new tmux window %q in %q: %s: %w", name, session, strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (RealTmux) ListPanes(target string) ([]string, error) {
	cmd := exec.Command("tmux", "list-panes", "-t", target, "-F", "#{pane_id}")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("list panes in %q: %s: %w", target, strings.TrimSpace(string(out)), err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	var panes []string
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			panes = append(panes, l)
		}
	}
	return panes, nil
}

func (RealTmux) SendSignal(paneID, signal string) error {
	cmd := exec.Command("tmux", "send-keys", "-t", paneID, signal)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("send signal to %q: %s: %w", paneID, strings.TrimSpace(string(out)), err)
	}
	return nil
}

func (RealTmux) SendText(paneID, text string, enter bool) error {
	// -l keeps words like "Enter" or "C-c" inside the command from being read as key names.
	cmd := exec.Command("tmux", "send-keys", "-t", paneID, "-l", text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("send text to %q: %s: %w", paneID, strings.TrimSpace(string(out)), err)
	}
	if !enter {
		return nil
	}
	cmd = exec.Command("tmux", "send-keys", "-t", paneID, "Enter")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("send enter to %q: %s: %w", paneID, strings.TrimSpace(string(out)), err)
	}
	return nil
}

func (RealTmux) PaneCommand(paneID string) (string, error) {
	cmd := exec.Command("tmux", "display-message", "-p", "-t", paneID, "#{pane_current_command}")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("pane command for %q: %s: %w", paneID, strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Attach hands the terminal over to tmux until the client detaches. From
// inside another tmux client it switches that client instead of nesting.
func (RealTmux) Attach(session string) error {
	args := []string{"attach-session", "-t", "=" + session}
	if os.Getenv("TMUX") != "" {
		args = []string{"switch-client", "-t", "=" + session}
	}
	cmd := exec.Command("tmux", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("attach tmux session %q: %w", session, err)
	}
	return nil
}
