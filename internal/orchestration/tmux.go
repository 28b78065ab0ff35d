package orchestration

import "strings"

// InterruptKey is the tmux key name delivered to stop a service.
const InterruptKey = "C-c"

// Tmux abstracts tmux operations for testability. Windows and panes are
// addressed by their tmux IDs (@N, %N).
type Tmux interface {
	HasSession(name string) (bool, error)
	CreateSession(name string) error
	// FindWindow returns the ID of the window named name, if any.
	FindWindow(session, name string) (string, bool, error)
	NewWindow(session, name string) (string, error)
	ListPanes(target string) ([]string, error)
	SendSignal(paneID, signal string) error
	// SendText types text literally into the pane, followed by Enter when enter is set.
	SendText(paneID, text string, enter bool) error
	// PaneCommand reports the foreground command running in the pane.
	PaneCommand(paneID string) (string, error)
	Attach(session string) error
}

// DefaultTmux is the default tmux implementation used by the package.
// Set to RealTmux{} in tmux_real.go (excluded from test builds via build tag).
var DefaultTmux Tmux = RealTmux{}

// matchWindow scans "<id> <name>" lines for an exact name match.
func matchWindow(listing, name string) (string, bool) {
	for _, l := range strings.Split(listing, "\n") {
		id, wname, found := strings.Cut(strings.TrimRight(l, "\r"), " ")
		if found && wname == name {
			return id, true
		}
	}
	return "", false
}
