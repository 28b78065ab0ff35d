package orchestration

import (
	"fmt"
	"strings"
)

// UnknownServiceError is returned when requested service names are not in
// the config. It is raised before any window is touched.
type UnknownServiceError struct {
	Names []string
}

func (e *UnknownServiceError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	noun := "service"
	if len(e.Names) > 1 {
		noun = "services"
	}
	return fmt.Sprintf("unknown %s %s: not in the configuration", noun, strings.Join(quoted, ", "))
}

// SubstrateError wraps a failed tmux operation.
type SubstrateError struct {
	Op     string // e.g. "create window"
	Target string // session, window or service name
	Err    error
}

func (e *SubstrateError) Error() string {
	return fmt.Sprintf("tmux: %s %s: %v", e.Op, e.Target, e.Err)
}

func (e *SubstrateError) Unwrap() error { return e.Err }

func substrateErr(op, target string, err error) error {
	return &SubstrateError{Op: op, Target: target, Err: err}
}
