package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

var _ = Describe("Model", func() {
	var (
		ctrl *playback.Controller
		m    Model
	)

	BeforeEach(func() {
		var err error
		ctrl, err = playback.New([]int{9, 1}, playback.WithGenerator(input.NewRandom(3)))
		Expect(err).NotTo(HaveOccurred())
		m = NewModel(ctrl, ThemeClassic, 10*time.Millisecond)
	})

	It("starts the frame ticker", func() {
		Expect(m.Init()).NotTo(BeNil())
	})

	It("maps space to play/pause", func() {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		Expect(ctrl.Playing()).To(BeTrue())
		m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		Expect(ctrl.Playing()).To(BeFalse())
	})

	It("maps arrows to speed changes", func() {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
		Expect(ctrl.Speed()).To(Equal(700 * time.Millisecond))
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
		Expect(ctrl.Speed()).To(Equal(900 * time.Millisecond))
	})

	It("maps n to a new array and r to reset", func() {
		ctrl.TogglePlay()
		m, _ = update(m, runeKey('r'))
		Expect(ctrl.Playing()).To(BeFalse())

		m, _ = update(m, runeKey('n'))
		Expect(ctrl.Input()).To(HaveLen(2))
		Expect(ctrl.Step()).To(Equal(0))
	})

	It("quits on escape", func() {
		_, cmd := update(m, tea.KeyMsg{Type: tea.KeyEscape})
		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(tea.QuitMsg{}))
	})

	It("ignores unbound keys", func() {
		_, cmd := update(m, runeKey('x'))
		Expect(cmd).To(BeNil())
		Expect(ctrl.Step()).To(Equal(0))
		Expect(ctrl.Playing()).To(BeFalse())
	})

	It("feeds elapsed frame time into the controller", func() {
		ctrl.TogglePlay()
		start := time.Now()
		m, _ = update(m, TickMsg(start))
		Expect(ctrl.Step()).To(Equal(0))

		var cmd tea.Cmd
		m, cmd = update(m, TickMsg(start.Add(801*time.Millisecond)))
		Expect(ctrl.Step()).To(Equal(1))
		Expect(cmd).NotTo(BeNil())
	})

	It("renders status, operation, stats and controls", func() {
		m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 30})
		view := m.View()
		Expect(view).To(ContainSubstring("Merge Sort Visualizer"))
		Expect(view).To(ContainSubstring("Status: Ready | Step: 1/5 | Speed: 800ms"))
		Expect(view).To(ContainSubstring("Initial unsorted array"))
		Expect(view).To(ContainSubstring("Comparisons"))
		Expect(view).To(ContainSubstring("Array: [9, 1]"))
		Expect(view).To(ContainSubstring("SPACE: Play/Pause"))
	})

	It("shows per-step counters against run totals", func() {
		ctrl.TogglePlay()
		for !ctrl.Finished() {
			ctrl.Tick(time.Hour)
		}
		view := m.View()
		Expect(view).To(ContainSubstring("Sorting complete!"))
		Expect(view).To(ContainSubstring("1/1"))
	})
})

var _ = Describe("progress", func() {
	It("reports the fraction of the trace played", func() {
		Expect(progress(0, 5)).To(Equal(0.0))
		Expect(progress(4, 5)).To(Equal(1.0))
		Expect(progress(0, 1)).To(Equal(1.0))
	})
})

var _ = Describe("GetTheme", func() {
	It("falls back to classic", func() {
		Expect(GetTheme("ocean").Name).To(Equal("ocean"))
		Expect(GetTheme("nope").Name).To(Equal("classic"))
		Expect(ThemeNames()).To(ContainElement("sunset"))
	})
})
