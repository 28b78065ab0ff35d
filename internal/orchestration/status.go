package orchestration

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/zulandar/dmux/internal/config"
	"gopkg.in/yaml.v3"
)

// Window states reported by Status.
const (
	StateAbsent  = "absent"  // no window yet
	StateIdle    = "idle"    // window present, shell in the foreground
	StateRunning = "running" // window present, something other than a shell in the foreground
)

// shells are foreground commands that mean nothing is running in the pane.
var shells = map[string]bool{
	"sh": true, "bash": true, "zsh": true, "fish": true,
	"dash": true, "ksh": true, "csh": true, "tcsh": true,
}

// StatusInfo holds the observed state of every configured service.
type StatusInfo struct {
	Session        string          `yaml:"session"`
	SessionRunning bool            `yaml:"session_running"`
	Services       []ServiceStatus `yaml:"services"`
}

// ServiceStatus is one service's window as seen in tmux.
type ServiceStatus struct {
	Name       string `yaml:"name"`
	Command    string `yaml:"command"`
	State      string `yaml:"state"`
	WindowID   string `yaml:"window_id,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// Status observes each service's window without creating the session or any
// window.
func Status(t Tmux, sessionName string, cfg *config.Config) (*StatusInfo, error) {
	if sessionName == "" {
		sessionName = config.SessionName
	}
	info := &StatusInfo{Session: sessionName}

	s, exists, err := OpenSession(t, sessionName)
	if err != nil {
		return nil, err
	}
	info.SessionRunning = exists

	for _, svc := range cfg.Services {
		st := ServiceStatus{Name: svc.Name, Command: svc.Command, State: StateAbsent}
		if exists {
			if err := s.observe(&st); err != nil {
				return nil, err
			}
		}
		info.Services = append(info.Services, st)
	}
	return info, nil
}

func (s *Session) observe(st *ServiceStatus) error {
	w, ok, err := s.FindWindow(st.Name)
	if err != nil || !ok {
		return err
	}
	st.WindowID = w.ID
	pane, err := s.PrimaryPane(w)
	if err != nil {
		return err
	}
	fg, err := s.tmux.PaneCommand(pane.ID)
	if err != nil {
		return substrateErr("inspect pane", st.Name, err)
	}
	st.Foreground = fg
	if shells[fg] {
		st.State = StateIdle
	} else {
		st.State = StateRunning
	}
	return nil
}

// FormatStatus renders StatusInfo as a human-readable table.
func FormatStatus(info *StatusInfo) string {
	var b strings.Builder

	if info.SessionRunning {
		b.WriteString(fmt.Sprintf("Session %s: %s\n", info.Session, color.GreenString("RUNNING")))
	} else {
		b.WriteString(fmt.Sprintf("Session %s: %s\n", info.Session, color.RedString("STOPPED")))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%-16s %-8s %-8s %-12s %s\n", "SERVICE", "STATE", "WINDOW", "FOREGROUND", "COMMAND"))
	for _, s := range info.Services {
		window, fg := s.WindowID, s.Foreground
		if window == "" {
			window = "-"
		}
		if fg == "" {
			fg = "-"
		}
		b.WriteString(fmt.Sprintf("%-16s %-8s %-8s %-12s %s\n", s.Name, colorState(s.State), window, fg, s.Command))
	}
	if len(info.Services) == 0 {
		b.WriteString("  (no services configured)\n")
	}
	return b.String()
}

// colorState pads before colouring so escape codes don't break alignment.
func colorState(state string) string {
	padded := fmt.Sprintf("%-8s", state)
	switch state {
	case StateRunning:
		return color.GreenString(padded)
	case StateIdle:
		return color.YellowString(padded)
	default:
		return color.HiBlackString(padded)
	}
}

// MarshalStatusYAML renders StatusInfo as YAML.
func MarshalStatusYAML(info *StatusInfo) (string, error) {
	out, err := yaml.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("orchestration: marshal status: %w", err)
	}
	return string(out), nil
}
