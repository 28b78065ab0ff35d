package orchestration

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/zulandar/dmux/internal/config"
)

// Reconciler drives a service's window through start, stop and restart.
// Window state is observed on every call, never cached.
type Reconciler struct {
	session *Session
	log     *log.Logger

	// Settle is how long Restart waits between the interrupt and the new
	// command. Zero sends both back to back.
	Settle time.Duration
	sleep  func(time.Duration)
}

// NewReconciler returns a Reconciler operating on windows in s.
func NewReconciler(s *Session, logger *log.Logger) *Reconciler {
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{session: s, log: logger, sleep: time.Sleep}
}

// EnsureLinked returns the primary pane of svc's window, creating the window
// if it is absent. Calling it again for the same service reuses the window.
func (r *Reconciler) EnsureLinked(svc config.Service) (Pane, error) {
	w, ok, err := r.session.FindWindow(svc.Name)
	if err != nil {
		return Pane{}, err
	}
	if !ok {
		r.log.Infof("Creating new window: %s", svc.Name)
		if w, err = r.session.NewWindow(svc.Name); err != nil {
			return Pane{}, err
		}
	}
	return r.session.PrimaryPane(w)
}

// Start types the service's command into its pane and presses Enter. It does
// not wait for or check the launched process.
func (r *Reconciler) Start(svc config.Service) error {
	pane, err := r.EnsureLinked(svc)
	if err != nil {
		return err
	}
	return r.sendCommand(pane, svc)
}

// Stop sends an interrupt to the service's pane.
func (r *Reconciler) Stop(svc config.Service) error {
	pane, err := r.EnsureLinked(svc)
	if err != nil {
		return err
	}
	return r.interrupt(pane, svc)
}

// Restart interrupts svc and types its command again into the same pane.
// Nothing checks that the old process has exited; a slow shutdown may still
// own the pane when the command arrives unless Settle is set.
func (r *Reconciler) Restart(svc config.Service) error {
	r.log.Infof("Restarting: %s", svc.Name)
	pane, err := r.EnsureLinked(svc)
	if err != nil {
		return err
	}
	if err := r.interrupt(pane, svc); err != nil {
		return err
	}
	if r.Settle > 0 {
		r.sleep(r.Settle)
	}
	return r.sendCommand(pane, svc)
}

func (r *Reconciler) sendCommand(pane Pane, svc config.Service) error {
	r.log.Infof("Starting: %s", svc.Name)
	if err := r.session.tmux.SendText(pane.ID, svc.Command, true); err != nil {
		return substrateErr("send command", svc.Name, err)
	}
	return nil
}

func (r *Reconciler) interrupt(pane Pane, svc config.Service) error {
	r.log.Infof("Stopping: %s", svc.Name)
	if err := r.session.tmux.SendSignal(pane.ID, InterruptKey); err != nil {
		return substrateErr("send interrupt", svc.Name, err)
	}
	return nil
}
