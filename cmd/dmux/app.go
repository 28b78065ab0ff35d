package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/zulandar/dmux/internal/config"
	"github.com/zulandar/dmux/internal/logging"
	"github.com/zulandar/dmux/internal/orchestration"
	"golang.org/x/term"
)

// app holds process-wide settings resolved once from flags and passed to
// every command.
type app struct {
	configPath string
	logPath    string
	session    string

	log    *log.Logger
	closer io.Closer

	tmux        orchestration.Tmux
	interactive func() bool
}

func newApp() *app {
	return &app{
		tmux: orchestration.DefaultTmux,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// setup fills in default paths and opens the log file. Safe to call twice.
func (a *app) setup() error {
	if a.log != nil {
		return nil
	}
	if a.configPath == "" || a.logPath == "" {
		defaults, err := config.DefaultPaths()
		if err != nil {
			return err
		}
		if a.configPath == "" {
			a.configPath = defaults.Config
		}
		if a.logPath == "" {
			a.logPath = defaults.Log
		}
	}
	if a.session == "" {
		a.session = config.SessionName
	}
	logger, closer, err := logging.Open(a.logPath)
	if err != nil {
		return err
	}
	a.log, a.closer = logger, closer
	return nil
}

func (a *app) close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

// fail records err in the log file before handing it back to cobra.
func (a *app) fail(err error) error {
	if err != nil && a.log != nil {
		a.log.Error(err.Error())
	}
	return err
}

func (a *app) loadConfig() (*config.Config, error) {
	a.log.Infof("Reading configuration at: %s", a.configPath)
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	a.log.Info("Config loaded")
	return cfg, nil
}

func (a *app) dispatcher(opts orchestration.DispatchOpts) *orchestration.Dispatcher {
	opts.SessionName = a.session
	opts.Tmux = a.tmux
	opts.Log = a.log
	return orchestration.NewDispatcher(opts)
}
