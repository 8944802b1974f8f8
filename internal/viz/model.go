package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/muesli/reflow/truncate"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/trace"
)

const (
	title         = "Merge Sort Visualizer"
	controlsLine  = "SPACE: Play/Pause | R: Reset | UP/DOWN: Speed | N: New Array | ESC: Exit"
	defaultWidth  = 100
	defaultHeight = 30
	statsWidth    = 34
	// title, status, operation, array line, progress, help, spacing
	chromeRows   = 9
	minBarHeight = 4
	graphMinRows = 24
)

type TickMsg time.Time

// Model is the Bubble Tea front end for a playback controller. It reads the
// current snapshot each frame and turns key presses into commands; the
// trace itself is never modified.
type Model struct {
	ctrl          *playback.Controller
	theme         Theme
	help          help.Model
	frame         time.Duration
	last          time.Time
	width, height int
	err           error
}

// NewModel wraps ctrl. frame is the redraw interval; it also bounds how
// finely Tick sees elapsed time.
func NewModel(ctrl *playback.Controller, theme Theme, frame time.Duration) Model {
	if frame <= 0 {
		frame = time.Second / 60
	}
	h := help.New()
	h.ShortSeparator = " | "
	return Model{
		ctrl:   ctrl,
		theme:  theme,
		help:   h,
		frame:  frame,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles key presses, resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, ok := keys.commandFor(msg)
		if !ok {
			return m, nil
		}
		quit, err := m.ctrl.Apply(cmd)
		m.err = err
		if quit {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case TickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.ctrl.Tick(now.Sub(m.last))
		}
		m.last = now
		return m, m.tick()
	}
	return m, nil
}

// View renders the header, bars, statistics and controls.
func (m Model) View() string {
	snap := m.ctrl.Current()
	tr := m.ctrl.Trace()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent)
	textStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	opStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)
	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	chartWidth := max(10, m.width-statsWidth-4)
	barHeight := max(minBarHeight, m.height-chromeRows)

	chart := BarChart{Width: chartWidth, Height: barHeight, Theme: m.theme}
	bars := chart.Render(snap, tr.MaxValue())

	stats := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(statsWidth - 2).
		Render(m.statsPanel(tr, snap))

	var s strings.Builder
	s.WriteString(titleStyle.Render(title) + "\n")
	s.WriteString(textStyle.Render(m.statusLine()) + "\n")
	s.WriteString(opStyle.Render(truncate.StringWithTail(snap.Operation, uint(chartWidth), "…")) + "\n\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, bars, "  ", stats) + "\n\n")
	s.WriteString(mutedStyle.Render(truncate.StringWithTail(input.Describe(m.ctrl.Input()), uint(m.width), "…")) + "\n")
	s.WriteString(ProgressBar(m.theme, progress(m.ctrl.Step(), m.ctrl.Total()), chartWidth) + "\n")
	if m.err != nil {
		s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Left).Render("error: "+m.err.Error()) + "\n")
	}
	s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Keys).Render(m.controls()))
	return s.String()
}

func (m Model) statusLine() string {
	return fmt.Sprintf("Status: %s | Step: %d/%d | Speed: %dms",
		m.ctrl.Status(), m.ctrl.Step()+1, m.ctrl.Total(), m.ctrl.Speed().Milliseconds())
}

// statsPanel shows the counters as of the current snapshot next to the
// run totals, plus a plot of comparisons so far on tall terminals.
func (m Model) statsPanel(tr *trace.Trace, snap trace.Snapshot) string {
	label := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(18)
	value := lipgloss.NewStyle().Foreground(m.theme.Text)
	total := tr.Stats()

	var s strings.Builder
	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render("Statistics") + "\n")
	s.WriteString(label.Render("Array Size") + value.Render(fmt.Sprint(tr.Size())) + "\n")
	s.WriteString(label.Render("Comparisons") + value.Render(fmt.Sprintf("%d/%d", snap.Stats.Comparisons, total.Comparisons)) + "\n")
	s.WriteString(label.Render("Array Accesses") + value.Render(fmt.Sprintf("%d/%d", snap.Stats.ArrayAccesses, total.ArrayAccesses)) + "\n")
	s.WriteString(label.Render("Merge Operations") + value.Render(fmt.Sprintf("%d/%d", snap.Stats.Merges, total.Merges)))

	if m.height >= graphMinRows && snap.Step > 0 {
		history := make([]float64, snap.Step+1)
		for i := range history {
			history[i] = float64(tr.At(i).Stats.Comparisons)
		}
		graph := asciigraph.Plot(history,
			asciigraph.Height(5),
			asciigraph.Width(statsWidth-12),
			asciigraph.Caption("comparisons"))
		s.WriteString("\n\n" + lipgloss.NewStyle().Foreground(m.theme.Right).Render(graph))
	}
	return s.String()
}

func (m Model) controls() string {
	if m.width >= len(controlsLine) {
		return controlsLine
	}
	return m.help.ShortHelpView(keys.ShortHelp())
}

func progress(step, total int) float64 {
	if total <= 1 {
		return 1
	}
	return float64(step) / float64(total-1)
}
