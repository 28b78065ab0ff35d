package orchestration

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/zulandar/dmux/internal/config"
)

// Verb is a lifecycle action applied to a batch of services.
type Verb string

const (
	VerbStart   Verb = "start"
	VerbStop    Verb = "stop"
	VerbRestart Verb = "restart"
)

// attaches reports whether the verb hands the terminal to the session afterwards.
func (v Verb) attaches() bool {
	return v == VerbStart || v == VerbRestart
}

// DispatchOpts configures a Dispatcher.
type DispatchOpts struct {
	SessionName string        // defaults to config.SessionName
	Tmux        Tmux          // defaults to DefaultTmux if nil
	Log         *log.Logger   // defaults to log.Default()
	Settle      time.Duration // restart delay between interrupt and command
	NoAttach    bool          // skip the attach after start/restart
}

// Dispatcher applies a verb to the services selected from a config.
type Dispatcher struct {
	opts DispatchOpts
}

// NewDispatcher returns a Dispatcher with defaults filled in.
func NewDispatcher(opts DispatchOpts) *Dispatcher {
	if opts.SessionName == "" {
		opts.SessionName = config.SessionName
	}
	if opts.Tmux == nil {
		opts.Tmux = DefaultTmux
	}
	if opts.Log == nil {
		opts.Log = log.Default()
	}
	return &Dispatcher{opts: opts}
}

// Select returns the services to act on: the named ones, or all of them when
// names is empty. Services come back in config order. Any unknown name fails
// the whole selection.
func Select(cfg *config.Config, names []string) ([]config.Service, error) {
	if len(names) == 0 {
		return cfg.Services, nil
	}
	wanted := make(map[string]bool, len(names))
	var unknown []string
	for _, n := range names {
		if _, ok := cfg.Lookup(n); !ok {
			unknown = append(unknown, n)
			continue
		}
		wanted[n] = true
	}
	if len(unknown) > 0 {
		return nil, &UnknownServiceError{Names: unknown}
	}
	var selected []config.Service
	for _, s := range cfg.Services {
		if wanted[s.Name] {
			selected = append(selected, s)
		}
	}
	return selected, nil
}

// Run validates names against cfg, applies verb to each selected service in
// turn and, for start and restart, attaches the session. It returns the
// services the verb was applied to. The first failure aborts the batch;
// services already handled stay changed and are still returned.
func (d *Dispatcher) Run(cfg *config.Config, verb Verb, names []string) ([]config.Service, error) {
	var apply func(*Reconciler, config.Service) error
	switch verb {
	case VerbStart:
		apply = (*Reconciler).Start
	case VerbStop:
		apply = (*Reconciler).Stop
	case VerbRestart:
		apply = (*Reconciler).Restart
	default:
		return nil, fmt.Errorf("orchestration: unknown verb %q", verb)
	}

	services, err := Select(cfg, names)
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		d.opts.Log.Infof("%s: %v", verb, names)
	} else {
		d.opts.Log.Infof("%s: all windows", verb)
	}

	session, err := GetOrCreateSession(d.opts.Tmux, d.opts.SessionName)
	if err != nil {
		return nil, err
	}
	r := NewReconciler(session, d.opts.Log)
	r.Settle = d.opts.Settle

	handled := make([]config.Service, 0, len(services))
	for _, svc := range services {
		if err := apply(r, svc); err != nil {
			return handled, err
		}
		handled = append(handled, svc)
	}

	if !verb.attaches() || d.opts.NoAttach {
		return handled, nil
	}
	return handled, d.attach(session)
}

// Attach attaches the terminal to the session, creating it if needed.
func (d *Dispatcher) Attach() error {
	session, err := GetOrCreateSession(d.opts.Tmux, d.opts.SessionName)
	if err != nil {
		return err
	}
	return d.attach(session)
}

func (d *Dispatcher) attach(s *Session) error {
	d.opts.Log.Infof("Attaching to session: %s", s.Name)
	return s.Attach()
}
