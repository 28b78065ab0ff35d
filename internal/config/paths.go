package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SessionName is the tmux session every service window lives in.
const SessionName = "dmux"

// Paths locates the files dmux reads and writes.
type Paths struct {
	Config string
	Log    string
}

// DefaultPaths resolves ~/.config/dmux/config.ini and ~/.config/dmux/dmux.log.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("config: resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "dmux")
	return Paths{
		Config: filepath.Join(dir, "config.ini"),
		Log:    filepath.Join(dir, "dmux.log"),
	}, nil
}
