package provider

import (
	"context"

	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
)

// Instance - one entry of the provider's inventory
type Instance struct {
	Handle string
	State  fleet.LifecycleState
	Tags   map[string]string
}

//go:generate minimock -i Provider -o ../../mocks/provider_mock.go -n ProviderMock -p mocks

// Provider is the cloud instance-management API consumed by the fleet core.
// The instance shape (image, type, network, placement) belongs to the
// implementation and is passed through unchanged; the core only supplies tags.
type Provider interface {
	// DescribeInstances lists every instance visible to the account, regardless of fleet.
	DescribeInstances(ctx context.Context) (instances []Instance, err error)
	// CreateInstance launches one instance carrying tags and returns its handle.
	CreateInstance(ctx context.Context, tags map[string]string) (handle string, err error)
	// StartInstances starts handles in one batched call.
	StartInstances(ctx context.Context, handles []string) error
	// StopInstances stops handles in one batched call.
	StopInstances(ctx context.Context, handles []string) error
	// TerminateInstances terminates handles in one batched call.
	TerminateInstances(ctx context.Context, handles []string) error
	// WaitUntilRunning blocks until every handle is reported running.
	WaitUntilRunning(ctx context.Context, handles []string) error
	// WaitUntilTerminated blocks until every handle is reported terminated.
	WaitUntilTerminated(ctx context.Context, handles []string) error
}
