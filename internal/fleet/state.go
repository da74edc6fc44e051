package fleet

import "fmt"

// LifecycleState - instance state as reported by the provider
type LifecycleState string

const (
	StatePending      LifecycleState = "pending"
	StateRunning      LifecycleState = "running"
	StateShuttingDown LifecycleState = "shutting-down"
	StateStopping     LifecycleState = "stopping"
	StateStopped      LifecycleState = "stopped"
	StateTerminated   LifecycleState = "terminated"
)

// ParseLifecycleState validates a provider-reported state name
func ParseLifecycleState(s string) (LifecycleState, error) {
	switch st := LifecycleState(s); st {
	case StatePending, StateRunning, StateShuttingDown, StateStopping, StateStopped, StateTerminated:
		return st, nil
	default:
		return "", fmt.Errorf("unknown lifecycle state %q", s)
	}
}
