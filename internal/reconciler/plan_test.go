package reconciler

import (
	"testing"

	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSnapshot(t *testing.T, ords ...fleet.Ordinal) fleet.Snapshot {
	t.Helper()

	recs := lo.Map(ords, func(ord fleet.Ordinal, _ int) fleet.WorkerRecord {
		return fleet.WorkerRecord{Ordinal: ord, Handle: "i-" + ord.String(), State: fleet.StateStopped}
	})

	snap, err := fleet.NewSnapshot(recs)
	require.NoError(t, err)

	return snap
}

func TestPlanProvision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		present []fleet.Ordinal
		desired int
		want    []int
	}{
		{
			name:    "empty fleet",
			desired: 3,
			want:    []int{1, 2, 3},
		},
		{
			name:    "gaps are filled, present ordinals untouched",
			present: []fleet.Ordinal{fleet.Numeric(1), fleet.Numeric(3)},
			desired: 4,
			want:    []int{2, 4},
		},
		{
			name:    "satisfied fleet",
			present: []fleet.Ordinal{fleet.Numeric(1), fleet.Numeric(2)},
			desired: 2,
		},
		{
			name:    "out-of-range and opaque ordinals do not count",
			present: []fleet.Ordinal{fleet.Numeric(7), fleet.Opaque("1"), fleet.Opaque("gpu")},
			desired: 2,
			want:    []int{1, 2},
		},
		{
			name:    "zero desired",
			present: []fleet.Ordinal{fleet.Numeric(1)},
			desired: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := PlanProvision(mustSnapshot(t, tc.present...), tc.desired)
			require.NoError(t, err)
			if len(tc.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlanProvision_Negative(t *testing.T) {
	t.Parallel()

	_, err := PlanProvision(mustSnapshot(t), -1)
	assert.ErrorIs(t, err, fleet.ErrInvalidTarget)
}

// TestPlanSetActive_ExactPartition checks that start and stop are disjoint and
// together cover exactly the numeric ordinals of the snapshot.
func TestPlanSetActive_ExactPartition(t *testing.T) {
	t.Parallel()

	snapshots := map[string][]fleet.Ordinal{
		"empty":   nil,
		"numeric": {fleet.Numeric(1), fleet.Numeric(2), fleet.Numeric(3), fleet.Numeric(8)},
		"mixed":   {fleet.Numeric(0), fleet.Numeric(2), fleet.Opaque("x"), fleet.Opaque("3"), fleet.Numeric(5)},
		"opaque":  {fleet.Opaque("a"), fleet.Opaque("b")},
	}

	for name, ords := range snapshots {
		snap := mustSnapshot(t, ords...)
		numeric := lo.Map(snap.Numeric(), func(rec fleet.WorkerRecord, _ int) string { return rec.Handle })

		for active := 0; active <= 9; active++ {
			plan, err := PlanSetActive(snap, active)
			require.NoError(t, err)

			start, stop := plan.StartHandles(), plan.StopHandles()

			assert.Empty(t, lo.Intersect(start, stop), "%s/%d: start and stop overlap", name, active)
			assert.ElementsMatch(t, numeric, append(append([]string{}, start...), stop...), "%s/%d: union must equal numeric subset", name, active)

			for _, rec := range plan.Start {
				n, ok := rec.Ordinal.Int()
				require.True(t, ok)
				assert.LessOrEqual(t, n, active)
			}
			for _, rec := range plan.Stop {
				n, ok := rec.Ordinal.Int()
				require.True(t, ok)
				assert.Greater(t, n, active)
			}
		}
	}
}

func TestPlanSetActive(t *testing.T) {
	t.Parallel()

	snap := mustSnapshot(t, fleet.Numeric(1), fleet.Numeric(2), fleet.Numeric(3), fleet.Opaque("gpu"))

	plan, err := PlanSetActive(snap, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"i-1", "i-2"}, plan.StartHandles())
	assert.Equal(t, []string{"i-3"}, plan.StopHandles())

	_, err = PlanSetActive(snap, -1)
	assert.ErrorIs(t, err, fleet.ErrInvalidTarget)
}
