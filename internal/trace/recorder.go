package trace

import (
	"fmt"
	"slices"
)

const (
	opInitial  = "Initial unsorted array"
	opComplete = "Sorting complete!"
)

type recorder struct {
	arr       []int
	buf       []int
	// origin[k] is the input position of the element now at arr[k].
	origin    []int
	originBuf []int
	snapshots []Snapshot
	stats     Stats
}

// Record runs a stable top-down merge sort over a copy of input and returns
// every state transition it went through. The same input always yields an
// identical Trace. For N >= 1 the trace holds exactly 3N-1 snapshots.
func Record(input []int) (*Trace, error) {
	n := len(input)
	if n == 0 {
		return nil, &RecordError{Size: n, Wrapped: ErrEmptyInput}
	}

	r := &recorder{
		arr:       slices.Clone(input),
		buf:       make([]int, 0, n),
		origin:    span(0, n-1),
		originBuf: make([]int, 0, n),
		snapshots: make([]Snapshot, 0, 3*n-1),
	}

	r.emit(KindInitial, opInitial, nil, nil, nil)
	r.sort(0, n-1)
	r.emit(KindComplete, opComplete, nil, nil, span(0, n-1))

	return &Trace{
		input:     slices.Clone(input),
		snapshots: r.snapshots,
		stats:     r.stats,
		order:     r.origin,
		maxValue:  slices.Max(input),
	}, nil
}

func (r *recorder) sort(left, right int) {
	if left >= right {
		return
	}

	r.emit(KindDivide, fmt.Sprintf("Dividing subarray [%d..%d]", left, right), span(left, right), nil, nil)

	mid := left + (right-left)/2
	r.sort(left, mid)
	r.sort(mid+1, right)
	r.merge(left, mid, right)
}

func (r *recorder) merge(left, mid, right int) {
	r.emit(KindMerge,
		fmt.Sprintf("Merging subarrays [%d..%d] and [%d..%d]", left, mid, mid+1, right),
		span(left, mid), span(mid+1, right), nil)

	r.buf, r.originBuf = r.buf[:0], r.originBuf[:0]
	i, j := left, mid+1
	for i <= mid && j <= right {
		r.stats.Comparisons++
		// <= keeps equal elements in input order.
		if r.arr[i] <= r.arr[j] {
			r.take(i)
			i++
		} else {
			r.take(j)
			j++
		}
	}
	for ; i <= mid; i++ {
		r.take(i)
	}
	for ; j <= right; j++ {
		r.take(j)
	}

	for k, v := range r.buf {
		r.arr[left+k] = v
		r.origin[left+k] = r.originBuf[k]
		r.stats.ArrayAccesses++
	}
	r.stats.Merges++

	r.emit(KindMerged, fmt.Sprintf("Merged subarray [%d..%d]", left, right), nil, nil, span(left, right))
}

func (r *recorder) take(k int) {
	r.buf = append(r.buf, r.arr[k])
	r.originBuf = append(r.originBuf, r.origin[k])
}

func (r *recorder) emit(kind Kind, op string, left, right, sorted []int) {
	r.snapshots = append(r.snapshots, Snapshot{
		Step:      len(r.snapshots),
		Kind:      kind,
		Operation: op,
		Array:     slices.Clone(r.arr),
		Left:      left,
		Right:     right,
		Sorted:    sorted,
		Stats:     r.stats,
	})
}

// span returns the indices lo..hi inclusive.
func span(lo, hi int) []int {
	s := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		s = append(s, i)
	}
	return s
}
