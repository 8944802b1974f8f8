// Package trace records merge sort as an ordered sequence of immutable
// snapshots that can be replayed without running the algorithm again.
//
// The package defines:
//
//   - [Snapshot]: one recorded instant of the sort (array, label, highlights)
//   - [Trace]: the complete, read-only snapshot sequence for one run
//   - [Stats]: comparison, array-access and merge counters
//   - [Record]: the recorder that produces a Trace from an input
//
// # Example
//
//	tr, err := trace.Record([]int{9, 1})
//	if err != nil {
//		return err
//	}
//	for i := 0; i < tr.Len(); i++ {
//		fmt.Println(tr.At(i).Operation)
//	}
//
// # Thread Safety
//
// A Trace is never mutated after Record returns, so it may be read from any
// number of goroutines without synchronization. Callers must treat the
// slices inside a Snapshot as read-only.
package trace
