//go:build unittest

package orchestration

// RealTmux is a no-op stub used during unit testing (build tag: unittest).
// The real implementation is in tmux_real.go.
type RealTmux struct{}

func (RealTmux) HasSession(name string) (bool, error)                  { return false, nil }
func (RealTmux) CreateSession(name string) error                       { return nil }
func (RealTmux) FindWindow(session, name string) (string, bool, error) { return "", false, nil }
func (RealTmux) NewWindow(session, name string) (string, error)        { return "@0", nil }
func (RealTmux) ListPanes(target string) ([]string, error)             { return []string{"%0"}, nil }
func (RealTmux) SendSignal(paneID, signal string) error                { return nil }
func (RealTmux) SendText(paneID, text string, enter bool) error        { return nil }
func (RealTmux) PaneCommand(paneID string) (string, error)             { return "", nil }
func (RealTmux) Attach(session string) error                           { return nil }
