package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/r-heap47/skylr/skylr-fleet/internal/fleet"
	"github.com/r-heap47/skylr/skylr-fleet/internal/pkg/testutils"
	"github.com/r-heap47/skylr/skylr-fleet/internal/provider"
	"github.com/r-heap47/skylr/skylr-fleet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scheme = fleet.NamingScheme{
	NameTagKey:   "Name",
	Prefix:       "Worker",
	Separator:    "-",
	RoleTagKey:   "ClusterNodeType",
	RoleTagValue: "Worker",
}

func TestBuild(t *testing.T) {
	t.Parallel()

	snap, err := Build([]provider.Instance{
		testutils.Instance("i-1", fleet.StateRunning, "Worker-1"),
		testutils.Instance("i-2", fleet.StateStopped, "Worker-2"),
		testutils.Instance("i-3", fleet.StatePending, "Worker-gpu"),
		testutils.Instance("i-4", fleet.StateRunning, "Master-1"),
		{Handle: "i-5", State: fleet.StateRunning},
		{Handle: "i-6", State: fleet.StateRunning, Tags: map[string]string{"ClusterNodeType": "Worker"}},
	}, scheme)
	require.NoError(t, err)

	assert.Equal(t, []fleet.WorkerRecord{
		{Ordinal: fleet.Numeric(1), Handle: "i-1", State: fleet.StateRunning},
		{Ordinal: fleet.Numeric(2), Handle: "i-2", State: fleet.StateStopped},
		{Ordinal: fleet.Opaque("gpu"), Handle: "i-3", State: fleet.StatePending},
	}, snap.Records())
}

// TestBuild_TerminatedInvisible verifies that a terminated instance never
// appears in the snapshot and frees its ordinal for reuse.
func TestBuild_TerminatedInvisible(t *testing.T) {
	t.Parallel()

	snap, err := Build([]provider.Instance{
		testutils.Instance("i-old", fleet.StateTerminated, "Worker-3"),
		testutils.Instance("i-new", fleet.StateRunning, "Worker-3"),
		testutils.Instance("i-gone", fleet.StateTerminated, "Worker-4"),
	}, scheme)
	require.NoError(t, err)

	assert.Equal(t, 1, snap.Len())
	rec, ok := snap.Get(fleet.Numeric(3))
	require.True(t, ok)
	assert.Equal(t, "i-new", rec.Handle)
	assert.False(t, snap.Has(fleet.Numeric(4)))
}

func TestBuild_DuplicateOrdinal(t *testing.T) {
	t.Parallel()

	_, err := Build([]provider.Instance{
		testutils.Instance("i-a", fleet.StateRunning, "Worker-3"),
		testutils.Instance("i-b", fleet.StateStopped, "Worker-3"),
	}, scheme)
	require.Error(t, err)
	assert.ErrorIs(t, err, fleet.ErrDuplicateOrdinal)
}

func TestBuild_RepeatedOpaqueOrdinal(t *testing.T) {
	t.Parallel()

	snap, err := Build([]provider.Instance{
		testutils.Instance("i-a", fleet.StateRunning, "Worker-gpu"),
		testutils.Instance("i-b", fleet.StateStopped, "Worker-gpu"),
		testutils.Instance("i-n", fleet.StateStopped, "Worker--1"),
	}, scheme)
	require.NoError(t, err)

	assert.Equal(t, []string{"i-n", "i-a", "i-b"}, snap.Handles())
	assert.Empty(t, snap.Numeric())
}

func TestBuild_MissingHandle(t *testing.T) {
	t.Parallel()

	_, err := Build([]provider.Instance{
		testutils.Instance("", fleet.StateRunning, "Worker-1"),
	}, scheme)
	require.Error(t, err)
	assert.ErrorIs(t, err, fleet.ErrProviderQuery)
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	snap, err := Build(nil, scheme)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Len())
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)
	prov := mocks.NewProviderMock(mc).
		DescribeInstancesMock.Return([]provider.Instance{
		testutils.Instance("i-1", fleet.StateRunning, "Worker-1"),
	}, nil)

	snap, err := New(prov, scheme).Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, uint64(1), prov.DescribeInstancesAfterCounter(), "exactly one inventory query per call")
}

func TestResolver_ResolveQueryError(t *testing.T) {
	t.Parallel()

	cause := errors.New("UnauthorizedOperation")

	mc := minimock.NewController(t)
	prov := mocks.NewProviderMock(mc).
		DescribeInstancesMock.Return(nil, cause)

	_, err := New(prov, scheme).Resolve(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fleet.ErrProviderQuery)
	assert.ErrorIs(t, err, cause)
}
