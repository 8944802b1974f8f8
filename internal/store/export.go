// Package store writes recorded traces out for use outside the visualizer.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/trace"
)

// Formats lists the names accepted by Export.
var Formats = []string{"json", "csv"}

type ExportStep struct {
	Step      int         `json:"step"`
	Kind      string      `json:"kind"`
	Operation string      `json:"operation"`
	Array     []int       `json:"array"`
	Left      []int       `json:"left,omitempty"`
	Right     []int       `json:"right,omitempty"`
	Sorted    []int       `json:"sorted,omitempty"`
	Stats     trace.Stats `json:"stats"`
}

type ExportData struct {
	Session string       `json:"session,omitempty"`
	Input   []int        `json:"input"`
	Order   []int        `json:"order"`
	Steps   int          `json:"steps"`
	Stats   trace.Stats  `json:"stats"`
	Trace   []ExportStep `json:"trace"`
}

func newExportData(session string, tr *trace.Trace) ExportData {
	data := ExportData{
		Session: session,
		Input:   tr.Input(),
		Order:   tr.Order(),
		Steps:   tr.Len(),
		Stats:   tr.Stats(),
		Trace:   make([]ExportStep, 0, tr.Len()),
	}
	for _, s := range tr.Snapshots() {
		data.Trace = append(data.Trace, ExportStep{
			Step:      s.Step,
			Kind:      s.Kind.String(),
			Operation: s.Operation,
			Array:     s.Array,
			Left:      s.Left,
			Right:     s.Right,
			Sorted:    s.Sorted,
			Stats:     s.Stats,
		})
	}
	return data
}

// ExportJSON writes the whole trace as one indented JSON document.
func ExportJSON(w io.Writer, session string, tr *trace.Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(session, tr))
}

// ExportCSV writes one row per snapshot. Arrays are space separated inside
// their cell.
func ExportCSV(w io.Writer, tr *trace.Trace) error {
	cw := csv.NewWriter(w)
	header := []string{"step", "kind", "operation", "comparisons", "array_accesses", "merges", "array"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range tr.Snapshots() {
		row := []string{
			strconv.Itoa(s.Step),
			s.Kind.String(),
			s.Operation,
			strconv.Itoa(s.Stats.Comparisons),
			strconv.Itoa(s.Stats.ArrayAccesses),
			strconv.Itoa(s.Stats.Merges),
			joinInts(s.Array),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export dispatches on format name.
func Export(w io.Writer, format, session string, tr *trace.Trace) error {
	switch strings.ToLower(format) {
	case "json":
		return ExportJSON(w, session, tr)
	case "csv":
		return ExportCSV(w, tr)
	default:
		return fmt.Errorf("unknown export format %q (available: %v)", format, Formats)
	}
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
