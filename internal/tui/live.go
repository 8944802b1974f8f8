// Package tui plays a trace back as plain ANSI frames, for terminals and
// pipes where the full-screen interface is unavailable.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/trace"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Glyphs per highlight, in the same priority order as the colour renderer.
const (
	glyphNormal = '|'
	glyphLeft   = '<'
	glyphRight  = '>'
	glyphSorted = '#'
)

// LiveRenderer draws snapshots into a fixed character canvas.
type LiveRenderer struct {
	out    io.Writer
	ansi   bool
	canvas [][]rune
}

// NewLiveRenderer writes frames to out. With ansi set, each frame clears
// the screen first; otherwise frames are separated by a blank line.
func NewLiveRenderer(out io.Writer, ansi bool) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{out: out, ansi: ansi, canvas: canvas}
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func glyph(s trace.Snapshot, i int) rune {
	switch {
	case s.IsSorted(i):
		return glyphSorted
	case s.IsLeft(i):
		return glyphLeft
	case s.IsRight(i):
		return glyphRight
	default:
		return glyphNormal
	}
}

func (r *LiveRenderer) drawBars(s trace.Snapshot, maxValue int) {
	n := len(s.Array)
	if n == 0 || maxValue <= 0 {
		return
	}
	cols := min(n, width)
	for c := 0; c < cols; c++ {
		lo, hi := c*n/cols, (c+1)*n/cols
		v, g := s.Array[lo], glyph(s, lo)
		for i := lo + 1; i < hi; i++ {
			v = max(v, s.Array[i])
			if gi := glyph(s, i); priority(gi) > priority(g) {
				g = gi
			}
		}
		h := max(1, v*height/maxValue)
		x0, x1 := c*width/cols, (c+1)*width/cols
		if x1-x0 >= 3 {
			x1--
		}
		for x := x0; x < x1; x++ {
			for y := height - 1; y >= height-h; y-- {
				r.set(x, y, g)
			}
		}
	}
}

func priority(g rune) int {
	switch g {
	case glyphSorted:
		return 3
	case glyphLeft:
		return 2
	case glyphRight:
		return 1
	}
	return 0
}

// Render draws one frame for the controller's current snapshot.
func (r *LiveRenderer) Render(ctrl *playback.Controller) error {
	snap := ctrl.Current()
	tr := ctrl.Trace()

	r.clear()
	r.drawBars(snap, tr.MaxValue())

	var b strings.Builder
	if r.ansi {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(&b, "  Status: %s | Step: %d/%d | Speed: %dms\n",
		ctrl.Status(), ctrl.Step()+1, ctrl.Total(), ctrl.Speed().Milliseconds())
	fmt.Fprintf(&b, "  %s\n", snap.Operation)
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	total := tr.Stats()
	fmt.Fprintf(&b, "  comparisons %d/%d  accesses %d/%d  merges %d/%d\n",
		snap.Stats.Comparisons, total.Comparisons,
		snap.Stats.ArrayAccesses, total.ArrayAccesses,
		snap.Stats.Merges, total.Merges)
	fmt.Fprintf(&b, "  %s\n", input.Describe(ctrl.Input()))
	if !r.ansi {
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *LiveRenderer) Start() {
	if r.ansi {
		io.WriteString(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.ansi {
		io.WriteString(r.out, showCursor)
	}
}

// Play starts ctrl and renders a frame every time the cursor moves, polling
// at the given frame interval, until the trace finishes or ctx ends. A last
// frame is drawn once playback stops so the final status reads Done.
func Play(ctx context.Context, ctrl *playback.Controller, r *LiveRenderer, frame time.Duration) error {
	if frame <= 0 {
		frame = time.Second / 30
	}
	if !ctrl.Playing() {
		ctrl.TogglePlay()
	}

	r.Start()
	defer r.Stop()

	if err := r.Render(ctrl); err != nil {
		return err
	}

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()

	for ctrl.Playing() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			moved := ctrl.Tick(now.Sub(last))
			last = now
			if moved {
				if err := r.Render(ctrl); err != nil {
					return err
				}
			}
		}
	}
	return r.Render(ctrl)
}
