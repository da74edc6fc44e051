package reconciler

import (
	"fmt"
	"strings"

	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
)

// Operation - reconciliation mode
type Operation string

const (
	OpProvision    Operation = "provision"
	OpSetActive    Operation = "set-active"
	OpDecommission Operation = "decommission"
)

// Created - one worker launched by Provision
type Created struct {
	Ordinal int
	Handle  string
}

// CallResult - outcome of one provider call
type CallResult struct {
	Action  fleet.Action
	Handles []string
	Err     error
}

// Report describes what one reconciliation call did (or, in dry-run, would do).
// On partial failure it holds the progress made before the failing call.
type Report struct {
	Operation Operation
	Target    int
	Observed  int
	DryRun    bool

	Created    []Created
	Started    []string
	Stopped    []string
	Terminated []string

	Calls []CallResult
}

func (r *Report) record(action fleet.Action, handles []string, err error) {
	r.Calls = append(r.Calls, CallResult{Action: action, Handles: handles, Err: err})
}

// Failed returns the calls that returned an error
func (r *Report) Failed() []CallResult {
	var out []CallResult
	for _, c := range r.Calls {
		if c.Err != nil {
			out = append(out, c)
		}
	}

	return out
}

// Summary renders the report as one line
func (r *Report) Summary() string {
	var b strings.Builder

	if r.DryRun {
		b.WriteString("[dry-run] ")
	}
	b.WriteString(string(r.Operation))

	switch r.Operation {
	case OpProvision:
		fmt.Fprintf(&b, ": target=%d observed=%d created=%d", r.Target, r.Observed, len(r.Created))
	case OpSetActive:
		fmt.Fprintf(&b, ": target=%d observed=%d started=%d stopped=%d", r.Target, r.Observed, len(r.Started), len(r.Stopped))
	case OpDecommission:
		fmt.Fprintf(&b, ": observed=%d terminated=%d", r.Observed, len(r.Terminated))
	}

	if failed := r.Failed(); len(failed) > 0 {
		fmt.Fprintf(&b, " failed_calls=%d", len(failed))
	}

	return b.String()
}
