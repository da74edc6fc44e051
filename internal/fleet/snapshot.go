package fleet

import (
	"fmt"
	"sort"
	"strings"
)

// WorkerRecord - one known, non-terminated instance
type WorkerRecord struct {
	Ordinal Ordinal
	Handle  string
	State   LifecycleState
}

// Snapshot is an immutable view of the fleet built by one resolver pass.
// Numeric ordinals are unique; opaque ones may repeat and are kept per handle.
type Snapshot struct {
	records []WorkerRecord
	index   map[Ordinal]int
}

// NewSnapshot builds a snapshot from records.
// Fails with ErrDuplicateOrdinal if a numeric ordinal is held by more than one record.
func NewSnapshot(records []WorkerRecord) (Snapshot, error) {
	sorted := make([]WorkerRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Ordinal != b.Ordinal {
			return a.Ordinal.Less(b.Ordinal)
		}
		return a.Handle < b.Handle
	})

	snap := Snapshot{records: sorted, index: make(map[Ordinal]int, len(sorted))}

	var dups []string
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Ordinal == sorted[i].Ordinal {
			j++
		}

		ord := sorted[i].Ordinal
		snap.index[ord] = i

		if ord.IsNumeric() && j-i > 1 {
			handles := make([]string, 0, j-i)
			for _, rec := range sorted[i:j] {
				handles = append(handles, rec.Handle)
			}
			dups = append(dups, fmt.Sprintf("%s held by [%s]", ord, strings.Join(handles, ", ")))
		}

		i = j
	}
	if len(dups) > 0 {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrDuplicateOrdinal, strings.Join(dups, "; "))
	}

	return snap, nil
}

// Len returns the number of workers in the snapshot
func (s Snapshot) Len() int {
	return len(s.records)
}

// Has reports whether ord is present
func (s Snapshot) Has(ord Ordinal) bool {
	_, ok := s.index[ord]
	return ok
}

// Get returns the record for ord. For a repeated opaque ordinal it returns
// the record with the lowest handle.
func (s Snapshot) Get(ord Ordinal) (WorkerRecord, bool) {
	i, ok := s.index[ord]
	if !ok {
		return WorkerRecord{}, false
	}

	return s.records[i], true
}

// Records returns all records, numeric ordinals ascending first, then opaque ones.
func (s Snapshot) Records() []WorkerRecord {
	out := make([]WorkerRecord, len(s.records))
	copy(out, s.records)

	return out
}

// Numeric returns records with numeric ordinals in ascending order
func (s Snapshot) Numeric() []WorkerRecord {
	var out []WorkerRecord
	for _, rec := range s.records {
		if rec.Ordinal.IsNumeric() {
			out = append(out, rec)
		}
	}

	return out
}

// Opaque returns records whose ordinal did not parse as an integer
func (s Snapshot) Opaque() []WorkerRecord {
	var out []WorkerRecord
	for _, rec := range s.records {
		if !rec.Ordinal.IsNumeric() {
			out = append(out, rec)
		}
	}

	return out
}

// Handles returns every handle in Records order
func (s Snapshot) Handles() []string {
	out := make([]string, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Handle)
	}

	return out
}
