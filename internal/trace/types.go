package trace

import "slices"

// Kind identifies which event of the sort a snapshot documents.
type Kind int

const (
	KindInitial Kind = iota
	KindDivide
	KindMerge
	KindMerged
	KindComplete
)

var kindNames = [...]string{"initial", "divide", "merge", "merged", "complete"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Stats holds the counters accumulated while recording.
type Stats struct {
	Comparisons   int `json:"comparisons"`
	ArrayAccesses int `json:"array_accesses"`
	Merges        int `json:"merges"`
}

// Snapshot is one recorded instant of the sort. Every index slice is sorted
// ascending and lies in [0, len(Array)).
type Snapshot struct {
	Step      int
	Kind      Kind
	Operation string
	Array     []int
	Left      []int
	Right     []int
	Sorted    []int
	// Stats are the counters as of this snapshot, not the run totals.
	Stats Stats
}

func (s Snapshot) IsLeft(i int) bool   { return contains(s.Left, i) }
func (s Snapshot) IsRight(i int) bool  { return contains(s.Right, i) }
func (s Snapshot) IsSorted(i int) bool { return contains(s.Sorted, i) }

func contains(set []int, i int) bool {
	_, ok := slices.BinarySearch(set, i)
	return ok
}

// Trace is the finished snapshot sequence of one recording.
type Trace struct {
	input     []int
	snapshots []Snapshot
	stats     Stats
	order     []int
	maxValue  int
}

// Len returns the number of snapshots (totalSteps).
func (t *Trace) Len() int { return len(t.snapshots) }

// At returns the snapshot at step i. It panics when i is out of range, the
// same as indexing a slice; use Lookup for a checked variant.
func (t *Trace) At(i int) Snapshot { return t.snapshots[i] }

// Lookup returns the snapshot at step i or ErrStepOutOfRange.
func (t *Trace) Lookup(i int) (Snapshot, error) {
	if i < 0 || i >= len(t.snapshots) {
		return Snapshot{}, ErrStepOutOfRange
	}
	return t.snapshots[i], nil
}

// Final returns the "Sorting complete!" snapshot.
func (t *Trace) Final() Snapshot { return t.snapshots[len(t.snapshots)-1] }

// Snapshots returns the full sequence. The returned slice is shared and
// must not be modified.
func (t *Trace) Snapshots() []Snapshot { return t.snapshots }

// Input returns a copy of the array the trace was recorded from.
func (t *Trace) Input() []int { return slices.Clone(t.input) }

// Size returns N, the length of every snapshot array.
func (t *Trace) Size() int { return len(t.input) }

// Stats returns the totals for the whole run.
func (t *Trace) Stats() Stats { return t.stats }

// Order returns, for each position of the sorted array, the input position
// the element came from. Equal values appear in ascending input order.
func (t *Trace) Order() []int { return slices.Clone(t.order) }

// MaxValue returns the largest element of the input, used to scale bars.
func (t *Trace) MaxValue() int { return t.maxValue }
