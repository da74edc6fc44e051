package reconciler

import (
	"fmt"

	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
	"github.com/samber/lo"
)

// PlanProvision returns the ordinals in 1..desired absent from snap.
// Presence is the only gate: gaps are filled, existing workers are never touched.
func PlanProvision(snap fleet.Snapshot, desired int) ([]int, error) {
	if desired < 0 {
		return nil, fmt.Errorf("%w: desired count %d", fleet.ErrInvalidTarget, desired)
	}

	return lo.Filter(lo.RangeFrom(1, desired), func(ord int, _ int) bool {
		return !snap.Has(fleet.Numeric(ord))
	}), nil
}

// ActivePlan partitions the numeric part of a snapshot around an active count.
type ActivePlan struct {
	Start []fleet.WorkerRecord
	Stop  []fleet.WorkerRecord
}

// StartHandles returns handles of workers to start
func (p ActivePlan) StartHandles() []string {
	return handles(p.Start)
}

// StopHandles returns handles of workers to stop
func (p ActivePlan) StopHandles() []string {
	return handles(p.Stop)
}

// PlanSetActive puts numeric ordinals <= active into Start and the rest into Stop.
// Opaque ordinals land in neither set.
func PlanSetActive(snap fleet.Snapshot, active int) (ActivePlan, error) {
	if active < 0 {
		return ActivePlan{}, fmt.Errorf("%w: active count %d", fleet.ErrInvalidTarget, active)
	}

	start, stop := lo.FilterReject(snap.Numeric(), func(rec fleet.WorkerRecord, _ int) bool {
		n, _ := rec.Ordinal.Int()
		return n <= active
	})

	return ActivePlan{Start: start, Stop: stop}, nil
}

func handles(recs []fleet.WorkerRecord) []string {
	return lo.Map(recs, func(rec fleet.WorkerRecord, _ int) string {
		return rec.Handle
	})
}
