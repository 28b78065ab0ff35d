package orchestration

import (
	"fmt"
)

// Window is a named tmux window inside the dmux session.
type Window struct {
	ID   string
	Name string
}

// Pane is the first pane of a service window; keys and signals go here.
type Pane struct {
	ID     string
	Window Window
}

// Session is a handle on the one named tmux session all services share.
type Session struct {
	Name string
	tmux Tmux
}

// GetOrCreateSession returns a handle on the named session, creating it
// detached if it does not exist yet. Safe to call repeatedly.
func GetOrCreateSession(t Tmux, name string) (*Session, error) {
	s, exists, err := OpenSession(t, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := s.tmux.CreateSession(name); err != nil {
			return nil, substrateErr("create session", name, err)
		}
	}
	return s, nil
}

// OpenSession returns a handle without creating anything and reports whether
// the session currently exists.
func OpenSession(t Tmux, name string) (*Session, bool, error) {
	if t == nil {
		t = DefaultTmux
	}
	if name == "" {
		return nil, false, fmt.Errorf("orchestration: session name is required")
	}
	exists, err := t.HasSession(name)
	if err != nil {
		return nil, false, substrateErr("check session", name, err)
	}
	return &Session{Name: name, tmux: t}, exists, nil
}

// FindWindow looks up a window by exact name.
func (s *Session) FindWindow(name string) (Window, bool, error) {
	id, ok, err := s.tmux.FindWindow(s.Name, name)
	if err != nil {
		return Window{}, false, substrateErr("find window", name, err)
	}
	if !ok {
		return Window{}, false, nil
	}
	return Window{ID: id, Name: name}, true, nil
}

// NewWindow creates a detached window named name.
func (s *Session) NewWindow(name string) (Window, error) {
	id, err := s.tmux.NewWindow(s.Name, name)
	if err != nil {
		return Window{}, substrateErr("create window", name, err)
	}
	return Window{ID: id, Name: name}, nil
}

// PrimaryPane returns the first pane of w.
func (s *Session) PrimaryPane(w Window) (Pane, error) {
	panes, err := s.tmux.ListPanes(w.ID)
	if err != nil {
		return Pane{}, substrateErr("list panes", w.Name, err)
	}
	if len(panes) == 0 {
		return Pane{}, substrateErr("list panes", w.Name, fmt.Errorf("window %s has no panes", w.ID))
	}
	return Pane{ID: panes[0], Window: w}, nil
}

// Attach blocks until the user detaches from the session.
func (s *Session) Attach() error {
	if err := s.tmux.Attach(s.Name); err != nil {
		return substrateErr("attach", s.Name, err)
	}
	return nil
}
