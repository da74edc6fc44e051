package resolver

import (
	"context"
	"fmt"
	"log"

	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
	"github.com/r-heap47/skylr/skylr-fleet/internal/provider"
)

// Resolver turns the provider's inventory into a fleet snapshot.
// It retains no state between calls.
type Resolver struct {
	prov   provider.Provider
	scheme fleet.NamingScheme
}

// New creates a Resolver
func New(prov provider.Provider, scheme fleet.NamingScheme) *Resolver {
	return &Resolver{prov: prov, scheme: scheme}
}

// Resolve issues exactly one inventory query and builds a fresh snapshot from it.
func (r *Resolver) Resolve(ctx context.Context) (fleet.Snapshot, error) {
	instances, err := r.prov.DescribeInstances(ctx)
	if err != nil {
		return fleet.Snapshot{}, fmt.Errorf("%w: DescribeInstances: %w", fleet.ErrProviderQuery, err)
	}

	return Build(instances, r.scheme)
}

// Build maps instances to a snapshot keyed by ordinal.
//
// Terminated instances and instances outside the naming scheme are dropped.
// Non-numeric ordinals are kept under their raw suffix. Two live instances
// sharing a numeric ordinal fail the whole build with fleet.ErrDuplicateOrdinal.
func Build(instances []provider.Instance, scheme fleet.NamingScheme) (fleet.Snapshot, error) {
	records := make([]fleet.WorkerRecord, 0, len(instances))

	for _, inst := range instances {
		if inst.Handle == "" {
			return fleet.Snapshot{}, fmt.Errorf("%w: instance without handle", fleet.ErrProviderQuery)
		}
		if inst.State == fleet.StateTerminated {
			continue
		}

		ord, ok := scheme.Parse(inst.Tags)
		if !ok {
			continue
		}
		if !ord.IsNumeric() {
			log.Printf("[WARN] resolver: instance %s has non-numeric ordinal %q, excluded from range operations", inst.Handle, ord)
		}

		records = append(records, fleet.WorkerRecord{
			Ordinal: ord,
			Handle:  inst.Handle,
			State:   inst.State,
		})
	}

	snap, err := fleet.NewSnapshot(records)
	if err != nil {
		return fleet.Snapshot{}, fmt.Errorf("fleet.NewSnapshot: %w", err)
	}

	return snap, nil
}
