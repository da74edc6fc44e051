package reconciler

import (
	"context"
	"fmt"
	"log"

	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
	"github.com/r-heap47/skylr/skylr-fleet/internal/pkg/utils"
	"github.com/r-heap47/skylr/skylr-fleet/internal/provider"
	"github.com/r-heap47/skylr/skylr-fleet/internal/resolver"
)

// Config - engine config
type Config struct {
	Provider provider.Provider
	Scheme   fleet.NamingScheme
	// DryRun resolves and plans but issues no mutating call.
	DryRun bool
}

// Engine moves the fleet from its observed state to a requested target.
//
// Every operation resolves a fresh snapshot first; snapshots are never reused
// across calls. At most one engine may run against a given fleet at a time:
// two concurrent Provision calls can both see an ordinal as missing and both
// create it.
type Engine struct {
	prov     provider.Provider
	scheme   fleet.NamingScheme
	resolver *resolver.Resolver
	dryRun   bool
}

// New creates an Engine
func New(cfg Config) *Engine {
	return &Engine{
		prov:     cfg.Provider,
		scheme:   cfg.Scheme,
		resolver: resolver.New(cfg.Provider, cfg.Scheme),
		dryRun:   cfg.DryRun,
	}
}

// Provision creates one instance for every ordinal in 1..desired missing from the fleet.
// It stops at the first failed create and reports how many were created.
func (e *Engine) Provision(ctx context.Context, desired int) (*Report, error) {
	rep := &Report{Operation: OpProvision, Target: desired, DryRun: e.dryRun}

	snap, err := e.resolver.Resolve(ctx)
	if err != nil {
		return rep, fmt.Errorf("resolver.Resolve: %w", err)
	}
	rep.Observed = snap.Len()

	missing, err := PlanProvision(snap, desired)
	if err != nil {
		return rep, err
	}

	if len(missing) == 0 {
		log.Printf("[INFO] reconciler: ordinals 1..%d already present, nothing to create", desired)
		return rep, nil
	}

	if e.dryRun {
		for _, ord := range missing {
			rep.Created = append(rep.Created, Created{Ordinal: ord})
		}
		return rep, nil
	}

	var created []string
	for _, ord := range missing {
		if err := utils.CtxDone(ctx); err != nil {
			return rep, &fleet.ActionError{Action: fleet.ActionCreate, Handles: created, Done: len(created), Requested: len(missing), Err: err}
		}

		handle, err := e.prov.CreateInstance(ctx, e.scheme.Tags(ord))
		if err != nil {
			rep.record(fleet.ActionCreate, nil, err)
			log.Printf("[ERROR] reconciler: create %s failed: %s", e.scheme.Name(ord), err)
			return rep, &fleet.ActionError{Action: fleet.ActionCreate, Handles: created, Done: len(created), Requested: len(missing), Err: err}
		}

		rep.record(fleet.ActionCreate, []string{handle}, nil)
		rep.Created = append(rep.Created, Created{Ordinal: ord, Handle: handle})
		created = append(created, handle)

		log.Printf("[INFO] reconciler: created %s as %s", e.scheme.Name(ord), handle)
	}

	return rep, nil
}

// SetActive starts numeric ordinals <= active and stops the others, then waits
// until every started worker is running. Stops are not waited for.
func (e *Engine) SetActive(ctx context.Context, active int) (*Report, error) {
	rep := &Report{Operation: OpSetActive, Target: active, DryRun: e.dryRun}

	snap, err := e.resolver.Resolve(ctx)
	if err != nil {
		return rep, fmt.Errorf("resolver.Resolve: %w", err)
	}
	rep.Observed = snap.Len()

	plan, err := PlanSetActive(snap, active)
	if err != nil {
		return rep, err
	}

	toStart, toStop := plan.StartHandles(), plan.StopHandles()

	if e.dryRun {
		rep.Started, rep.Stopped = toStart, toStop
		return rep, nil
	}

	if len(toStart) > 0 {
		if err := e.batch(ctx, rep, fleet.ActionStart, toStart, e.prov.StartInstances); err != nil {
			return rep, err
		}
		rep.Started = toStart
	}

	if len(toStop) > 0 {
		if err := e.batch(ctx, rep, fleet.ActionStop, toStop, e.prov.StopInstances); err != nil {
			return rep, err
		}
		rep.Stopped = toStop
	}

	if len(toStart) > 0 {
		if err := e.wait(ctx, rep, fleet.ActionWaitRunning, toStart, e.prov.WaitUntilRunning); err != nil {
			return rep, err
		}
	}

	return rep, nil
}

// DecommissionAll terminates every worker in the fleet, numeric or not, and
// waits until the provider reports all of them terminated.
func (e *Engine) DecommissionAll(ctx context.Context) (*Report, error) {
	rep := &Report{Operation: OpDecommission, DryRun: e.dryRun}

	snap, err := e.resolver.Resolve(ctx)
	if err != nil {
		return rep, fmt.Errorf("resolver.Resolve: %w", err)
	}
	rep.Observed = snap.Len()

	if snap.Len() == 0 {
		log.Printf("[INFO] reconciler: fleet is empty, nothing to terminate")
		return rep, nil
	}

	handles := snap.Handles()

	if e.dryRun {
		rep.Terminated = handles
		return rep, nil
	}

	if err := e.batch(ctx, rep, fleet.ActionTerminate, handles, e.prov.TerminateInstances); err != nil {
		return rep, err
	}
	rep.Terminated = handles

	if err := e.wait(ctx, rep, fleet.ActionWaitTerminated, handles, e.prov.WaitUntilTerminated); err != nil {
		return rep, err
	}

	return rep, nil
}

// batch issues one batched action and records its result
func (e *Engine) batch(ctx context.Context, rep *Report, action fleet.Action, handles []string, call func(context.Context, []string) error) error {
	log.Printf("[INFO] reconciler: %s %d instances: %v", action, len(handles), handles)

	err := call(ctx, handles)
	rep.record(action, handles, err)
	if err != nil {
		log.Printf("[ERROR] reconciler: %s failed: %s", action, err)
		return &fleet.ActionError{Action: action, Handles: handles, Requested: len(handles), Err: err}
	}

	return nil
}

// wait blocks on a convergence primitive and records its result
func (e *Engine) wait(ctx context.Context, rep *Report, action fleet.Action, handles []string, call func(context.Context, []string) error) error {
	log.Printf("[INFO] reconciler: %s for %d instances", action, len(handles))

	err := call(ctx, handles)
	rep.record(action, handles, err)
	if err != nil {
		return fmt.Errorf("%w: %s on %d instances: %w", fleet.ErrConvergenceTimeout, action, len(handles), err)
	}

	log.Printf("[INFO] reconciler: %s done", action)

	return nil
}
