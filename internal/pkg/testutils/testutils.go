package testutils

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
	"github.com/r-heap47/skylr/skylr-fleet/internal/provider"
)

// ErrUnknownHandle - handle is not present in the fake inventory
var ErrUnknownHandle = errors.New("unknown handle")

// Instance returns a provider.Instance named by the Name tag
func Instance(handle string, state fleet.LifecycleState, name string) provider.Instance {
	return provider.Instance{
		Handle: handle,
		State:  state,
		Tags:   map[string]string{"Name": name},
	}
}

// FakeProvider is an in-memory provider.Provider. State transitions are
// applied immediately, so waits succeed once the matching action was issued.
type FakeProvider struct {
	mu        sync.Mutex
	instances map[string]*provider.Instance
	order     []string
	nextID    int
	hidden    map[string]struct{}

	// HideCreated keeps created instances out of DescribeInstances until Settle.
	HideCreated bool
	// CreateLimit fails every create after CreateLimit successful ones when > 0.
	CreateLimit int
	// Err, keyed by method name, is returned by that method.
	Err map[string]error

	Calls []Call
}

// Call records one provider invocation
type Call struct {
	Method  string
	Handles []string
	Tags    map[string]string
}

// NewFakeProvider seeds a fake with instances
func NewFakeProvider(instances ...provider.Instance) *FakeProvider {
	f := &FakeProvider{
		instances: make(map[string]*provider.Instance),
		hidden:    make(map[string]struct{}),
		Err:       make(map[string]error),
	}
	for _, inst := range instances {
		f.add(inst)
	}

	return f
}

func (f *FakeProvider) add(inst provider.Instance) {
	cp := inst
	f.instances[inst.Handle] = &cp
	f.order = append(f.order, inst.Handle)
}

// Settle makes hidden instances visible
func (f *FakeProvider) Settle() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.hidden = make(map[string]struct{})
}

// State returns the current state of handle
func (f *FakeProvider) State(handle string) fleet.LifecycleState {
	f.mu.Lock()
	defer f.mu.Unlock()

	if inst, ok := f.instances[handle]; ok {
		return inst.State
	}

	return ""
}

// CallsOf returns the recorded calls of method
func (f *FakeProvider) CallsOf(method string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.callsLocked(method)
}

// DescribeInstances implements provider.Provider
func (f *FakeProvider) DescribeInstances(_ context.Context) ([]provider.Instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, Call{Method: "DescribeInstances"})
	if err := f.Err["DescribeInstances"]; err != nil {
		return nil, err
	}

	out := make([]provider.Instance, 0, len(f.order))
	for _, h := range f.order {
		if _, ok := f.hidden[h]; ok {
			continue
		}
		out = append(out, *f.instances[h])
	}

	return out, nil
}

// CreateInstance implements provider.Provider
func (f *FakeProvider) CreateInstance(_ context.Context, tags map[string]string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, Call{Method: "CreateInstance", Tags: tags})
	if err := f.Err["CreateInstance"]; err != nil {
		return "", err
	}
	if f.CreateLimit > 0 && len(f.callsLocked("CreateInstance")) > f.CreateLimit {
		return "", fmt.Errorf("instance limit %d exceeded", f.CreateLimit)
	}

	f.nextID++
	handle := fmt.Sprintf("i-fake%04d", f.nextID)
	f.add(provider.Instance{Handle: handle, State: fleet.StatePending, Tags: tags})
	if f.HideCreated {
		f.hidden[handle] = struct{}{}
	}

	return handle, nil
}

// StartInstances implements provider.Provider
func (f *FakeProvider) StartInstances(_ context.Context, handles []string) error {
	return f.transition("StartInstances", handles, fleet.StateRunning)
}

// StopInstances implements provider.Provider
func (f *FakeProvider) StopInstances(_ context.Context, handles []string) error {
	return f.transition("StopInstances", handles, fleet.StateStopped)
}

// TerminateInstances implements provider.Provider
func (f *FakeProvider) TerminateInstances(_ context.Context, handles []string) error {
	return f.transition("TerminateInstances", handles, fleet.StateTerminated)
}

// WaitUntilRunning implements provider.Provider
func (f *FakeProvider) WaitUntilRunning(_ context.Context, handles []string) error {
	return f.check("WaitUntilRunning", handles, fleet.StateRunning)
}

// WaitUntilTerminated implements provider.Provider
func (f *FakeProvider) WaitUntilTerminated(_ context.Context, handles []string) error {
	return f.check("WaitUntilTerminated", handles, fleet.StateTerminated)
}

func (f *FakeProvider) transition(method string, handles []string, to fleet.LifecycleState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, Call{Method: method, Handles: handles})
	if err := f.Err[method]; err != nil {
		return err
	}

	for _, h := range handles {
		if _, ok := f.instances[h]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownHandle, h)
		}
	}
	for _, h := range handles {
		f.instances[h].State = to
	}

	return nil
}

func (f *FakeProvider) check(method string, handles []string, want fleet.LifecycleState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, Call{Method: method, Handles: handles})
	if err := f.Err[method]; err != nil {
		return err
	}

	for _, h := range handles {
		inst, ok := f.instances[h]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownHandle, h)
		}
		if inst.State != want {
			return fmt.Errorf("instance %s is %s, want %s", h, inst.State, want)
		}
	}

	return nil
}

func (f *FakeProvider) callsLocked(method string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}

	return out
}
