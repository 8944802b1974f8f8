package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/trace"
)

// role orders highlight colours by priority: a bar that is both sorted and
// part of the left half is drawn as sorted.
type role int

const (
	roleNormal role = iota
	roleRight
	roleLeft
	roleSorted
)

// Values are printed above bars only for arrays this small.
const valueLabelLimit = 20

// Eighth-block glyphs for the partially filled top cell of a bar.
var partials = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇'}

func roleOf(s trace.Snapshot, i int) role {
	switch {
	case s.IsSorted(i):
		return roleSorted
	case s.IsLeft(i):
		return roleLeft
	case s.IsRight(i):
		return roleRight
	default:
		return roleNormal
	}
}

type column struct {
	value int
	role  role
}

// BarChart draws a snapshot as vertical bars in a Width x Height cell grid.
// When there are more bars than columns, adjacent bars share a column that
// shows their maximum value and highest-priority role.
type BarChart struct {
	Width  int
	Height int
	Theme  Theme
}

// columns maps a snapshot onto at most width columns and reports how many
// terminal cells each column spans.
func columns(s trace.Snapshot, width int) ([]column, int) {
	n := len(s.Array)
	if n == 0 || width <= 0 {
		return nil, 0
	}
	if n <= width {
		cols := make([]column, n)
		for i, v := range s.Array {
			cols[i] = column{value: v, role: roleOf(s, i)}
		}
		return cols, width / n
	}

	cols := make([]column, width)
	for c := range cols {
		lo, hi := c*n/width, (c+1)*n/width
		col := column{value: s.Array[lo], role: roleOf(s, lo)}
		for i := lo + 1; i < hi; i++ {
			col.value = max(col.value, s.Array[i])
			col.role = max(col.role, roleOf(s, i))
		}
		cols[c] = col
	}
	return cols, 1
}

// eighths is the bar height in eighth-cells, at least one for a positive value.
func eighths(value, maxValue, height int) int {
	if value <= 0 || maxValue <= 0 {
		return 0
	}
	h := value * height * 8 / maxValue
	return max(1, min(height*8, h))
}

func (b BarChart) style(r role) lipgloss.Style {
	var c lipgloss.Color
	switch r {
	case roleSorted:
		c = b.Theme.Sorted
	case roleLeft:
		c = b.Theme.Left
	case roleRight:
		c = b.Theme.Right
	default:
		c = b.Theme.Bar
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Render draws s with bars scaled against maxValue.
func (b BarChart) Render(s trace.Snapshot, maxValue int) string {
	cols, cw := columns(s, b.Width)
	if len(cols) == 0 || b.Height <= 0 {
		return ""
	}
	barW := cw
	if cw >= 3 {
		barW = cw - 1
	}

	heights := make([]int, len(cols))
	for i, c := range cols {
		heights[i] = eighths(c.value, maxValue, b.Height)
	}

	styles := [...]lipgloss.Style{
		b.style(roleNormal), b.style(roleRight), b.style(roleLeft), b.style(roleSorted),
	}

	var out strings.Builder
	if len(s.Array) <= valueLabelLimit && cw >= 3 {
		out.WriteString(b.valueRow(cols, cw))
		out.WriteByte('\n')
	}

	for row := b.Height - 1; row >= 0; row-- {
		// Group runs of equal role so each run is styled once.
		var run strings.Builder
		runRole := role(-1)
		flush := func() {
			if run.Len() > 0 {
				out.WriteString(styles[runRole].Render(run.String()))
				run.Reset()
			}
		}
		for i, c := range cols {
			if c.role != runRole {
				flush()
				runRole = c.role
			}
			level := heights[i] - row*8
			var cell rune
			switch {
			case level >= 8:
				cell = '█'
			case level <= 0:
				cell = ' '
			default:
				cell = partials[level-1]
			}
			run.WriteString(strings.Repeat(string(cell), barW))
			run.WriteString(strings.Repeat(" ", cw-barW))
		}
		flush()
		if row > 0 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func (b BarChart) valueRow(cols []column, cw int) string {
	var row strings.Builder
	for _, c := range cols {
		label := strconv.Itoa(c.value)
		if len(label) > cw {
			label = label[:cw]
		}
		pad := cw - len(label)
		row.WriteString(strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2))
	}
	return lipgloss.NewStyle().Foreground(b.Theme.Text).Render(row.String())
}
