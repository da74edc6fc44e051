package fleet

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderQuery - inventory listing failed or returned an unparseable shape
	ErrProviderQuery = errors.New("provider query failed")
	// ErrProviderAction - create/start/stop/terminate call failed
	ErrProviderAction = errors.New("provider action failed")
	// ErrConvergenceTimeout - wait-for-state primitive did not observe the expected state
	ErrConvergenceTimeout = errors.New("convergence timeout")
	// ErrDuplicateOrdinal - two live instances carry the same ordinal
	ErrDuplicateOrdinal = errors.New("duplicate ordinal")
	// ErrInvalidTarget - requested count is out of range
	ErrInvalidTarget = errors.New("invalid target")
)

// Action - mutating provider call kind
type Action string

const (
	ActionCreate    Action = "create"
	ActionStart     Action = "start"
	ActionStop      Action = "stop"
	ActionTerminate Action = "terminate"

	ActionWaitRunning    Action = "wait-running"
	ActionWaitTerminated Action = "wait-terminated"
)

// ActionError reports a failed mutating call together with the progress made
// before it failed. Nothing is rolled back.
type ActionError struct {
	Action  Action
	Handles []string
	// Done is the number of units completed before the failure.
	Done int
	// Requested is the number of units the operation meant to complete.
	Requested int
	Err       error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %d of %d requested done: %s", e.Action, e.Done, e.Requested, e.Err)
}

// Unwrap exposes both ErrProviderAction and the underlying provider error.
func (e *ActionError) Unwrap() []error {
	return []error{ErrProviderAction, e.Err}
}
