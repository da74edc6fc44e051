package fleet

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScheme() NamingScheme {
	return NamingScheme{
		NameTagKey:   "Name",
		Prefix:       "Worker",
		Separator:    "-",
		RoleTagKey:   "ClusterNodeType",
		RoleTagValue: "Worker",
	}
}

func TestParseOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in          string
		wantNumeric bool
		wantInt     int
	}{
		{in: "1", wantNumeric: true, wantInt: 1},
		{in: "42", wantNumeric: true, wantInt: 42},
		{in: "0", wantNumeric: true, wantInt: 0},
		{in: "03"},
		{in: "+3"},
		{in: "-1"},
		{in: "-0"},
		{in: "abc"},
		{in: "3-extra"},
		{in: " 3"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			ord := ParseOrdinal(tc.in)
			n, ok := ord.Int()
			assert.Equal(t, tc.wantNumeric, ok)
			assert.Equal(t, tc.wantNumeric, ord.IsNumeric())
			assert.Equal(t, tc.in, ord.String())
			if tc.wantNumeric {
				assert.Equal(t, tc.wantInt, n)
				assert.Equal(t, Numeric(tc.wantInt), ord)
			} else {
				assert.Equal(t, Opaque(tc.in), ord)
			}
		})
	}
}

func TestOrdinal_Less(t *testing.T) {
	t.Parallel()

	assert.True(t, Numeric(2).Less(Numeric(10)))
	assert.False(t, Numeric(10).Less(Numeric(2)))
	assert.True(t, Numeric(100).Less(Opaque("a")), "numeric sorts before opaque")
	assert.False(t, Opaque("a").Less(Numeric(1)))
	assert.True(t, Opaque("a").Less(Opaque("b")))
}

func TestParseLifecycleState(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"pending", "running", "shutting-down", "stopping", "stopped", "terminated"} {
		st, err := ParseLifecycleState(s)
		require.NoError(t, err)
		assert.Equal(t, LifecycleState(s), st)
	}

	_, err := ParseLifecycleState("rebooting")
	require.Error(t, err)
}

func TestNamingScheme_Parse(t *testing.T) {
	t.Parallel()

	ns := testScheme()

	tests := []struct {
		name   string
		tags   map[string]string
		want   Ordinal
		wantOK bool
	}{
		{name: "numeric", tags: map[string]string{"Name": "Worker-3"}, want: Numeric(3), wantOK: true},
		{name: "opaque suffix", tags: map[string]string{"Name": "Worker-abc"}, want: Opaque("abc"), wantOK: true},
		{name: "split on first separator only", tags: map[string]string{"Name": "Worker-3-b"}, want: Opaque("3-b"), wantOK: true},
		{name: "foreign prefix", tags: map[string]string{"Name": "Master-1"}},
		{name: "no separator", tags: map[string]string{"Name": "Worker"}},
		{name: "empty suffix", tags: map[string]string{"Name": "Worker-"}},
		{name: "no name tag", tags: map[string]string{"ClusterNodeType": "Worker"}},
		{name: "nil tags", tags: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ns.Parse(tc.tags)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestNamingScheme_Tags(t *testing.T) {
	t.Parallel()

	ns := testScheme()
	ns.ExtraTags = map[string]string{"team": "graph", "Name": "overridden"}

	tags := ns.Tags(7)
	assert.Equal(t, map[string]string{
		"Name":            "Worker-7",
		"ClusterNodeType": "Worker",
		"team":            "graph",
	}, tags)

	ord, ok := ns.Parse(tags)
	require.True(t, ok)
	assert.Equal(t, Numeric(7), ord)
}

func TestNewSnapshot(t *testing.T) {
	t.Parallel()

	snap, err := NewSnapshot([]WorkerRecord{
		{Ordinal: Opaque("zeta"), Handle: "i-z", State: StateRunning},
		{Ordinal: Numeric(10), Handle: "i-10", State: StateStopped},
		{Ordinal: Numeric(2), Handle: "i-2", State: StateRunning},
		{Ordinal: Opaque("alpha"), Handle: "i-a", State: StatePending},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, snap.Len())
	assert.Equal(t, []string{"i-2", "i-10", "i-a", "i-z"}, snap.Handles())
	assert.Len(t, snap.Numeric(), 2)
	assert.Len(t, snap.Opaque(), 2)
	assert.True(t, snap.Has(Numeric(10)))
	assert.False(t, snap.Has(Numeric(3)))

	rec, ok := snap.Get(Opaque("alpha"))
	require.True(t, ok)
	assert.Equal(t, "i-a", rec.Handle)
}

func TestNewSnapshot_Empty(t *testing.T) {
	t.Parallel()

	snap, err := NewSnapshot(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Len())
	assert.Empty(t, snap.Handles())
	assert.Empty(t, snap.Records())
}

func TestNewSnapshot_DuplicateOrdinal(t *testing.T) {
	t.Parallel()

	_, err := NewSnapshot([]WorkerRecord{
		{Ordinal: Numeric(3), Handle: "i-b"},
		{Ordinal: Numeric(3), Handle: "i-a"},
		{Ordinal: Numeric(5), Handle: "i-f"},
		{Ordinal: Numeric(5), Handle: "i-g"},
		{Ordinal: Opaque("x"), Handle: "i-c"},
		{Ordinal: Opaque("x"), Handle: "i-d"},
		{Ordinal: Numeric(4), Handle: "i-e"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateOrdinal)
	assert.Contains(t, err.Error(), "3 held by [i-a, i-b]; 5 held by [i-f, i-g]")
	assert.NotContains(t, err.Error(), "i-c")
	assert.NotContains(t, err.Error(), "i-e")
}

func TestNewSnapshot_RepeatedOpaqueKept(t *testing.T) {
	t.Parallel()

	snap, err := NewSnapshot([]WorkerRecord{
		{Ordinal: Opaque("gpu"), Handle: "i-b", State: StateRunning},
		{Ordinal: Numeric(1), Handle: "i-1", State: StateRunning},
		{Ordinal: Opaque("gpu"), Handle: "i-a", State: StateStopped},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Len())
	assert.Equal(t, []string{"i-1", "i-a", "i-b"}, snap.Handles())
	assert.Len(t, snap.Opaque(), 2)
	assert.Len(t, snap.Numeric(), 1)

	rec, ok := snap.Get(Opaque("gpu"))
	require.True(t, ok)
	assert.Equal(t, "i-a", rec.Handle)
}

func TestActionError(t *testing.T) {
	t.Parallel()

	cause := errors.New("InsufficientInstanceCapacity")
	var err error = &ActionError{Action: ActionCreate, Done: 2, Requested: 5, Err: cause}
	wrapped := fmt.Errorf("Provision: %w", err)

	assert.ErrorIs(t, wrapped, ErrProviderAction)
	assert.ErrorIs(t, wrapped, cause)
	assert.EqualError(t, err, "create: 2 of 5 requested done: InsufficientInstanceCapacity")

	var actionErr *ActionError
	require.ErrorAs(t, wrapped, &actionErr)
	assert.Equal(t, 2, actionErr.Done)
}
