package playback_test

import (
	"bytes"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/trace"
)

type fixedGenerator struct {
	next    []int
	calls   int
	lastMax int
}

func (g *fixedGenerator) Generate(n, maxValue int) []int {
	g.calls++
	g.lastMax = maxValue
	out := make([]int, n)
	for i := range out {
		out[i] = g.next[i%len(g.next)]
	}
	return out
}

const big = time.Hour

var _ = Describe("Controller", func() {
	var ctrl *playback.Controller

	BeforeEach(func() {
		var err error
		ctrl, err = playback.New([]int{9, 1})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("starts paused at step 0 of a full trace", func() {
			Expect(ctrl.State()).To(Equal(playback.Paused))
			Expect(ctrl.Step()).To(Equal(0))
			Expect(ctrl.Total()).To(Equal(5))
			Expect(ctrl.Current().Operation).To(Equal("Initial unsorted array"))
			Expect(ctrl.Status()).To(Equal("Ready"))
			Expect(ctrl.Session()).NotTo(BeEmpty())
		})

		It("rejects empty input", func() {
			_, err := playback.New(nil)
			Expect(err).To(MatchError(trace.ErrEmptyInput))
		})

		It("picks the default speed from the input size", func() {
			Expect(ctrl.Speed()).To(Equal(800 * time.Millisecond))

			large, err := playback.New(make([]int, 51))
			Expect(err).NotTo(HaveOccurred())
			Expect(large.Speed()).To(Equal(200 * time.Millisecond))
		})

		It("clamps an explicit speed to the tier", func() {
			c, err := playback.New([]int{3, 2, 1}, playback.WithSpeed(10*time.Second))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Speed()).To(Equal(playback.SmallTier.Max))
		})

		It("does not alias the caller's slice", func() {
			in := []int{5, 4, 3}
			c, err := playback.New(in)
			Expect(err).NotTo(HaveOccurred())
			in[0] = 100
			Expect(c.Input()).To(Equal([]int{5, 4, 3}))
		})
	})

	Describe("TogglePlay", func() {
		It("flips between paused and playing", func() {
			ctrl.TogglePlay()
			Expect(ctrl.Playing()).To(BeTrue())
			Expect(ctrl.Status()).To(Equal("Playing"))
			ctrl.TogglePlay()
			Expect(ctrl.Playing()).To(BeFalse())
		})
	})

	Describe("Tick", func() {
		It("does nothing while paused", func() {
			Expect(ctrl.Tick(big)).To(BeFalse())
			Expect(ctrl.Step()).To(Equal(0))
		})

		It("advances only once elapsed time exceeds the speed", func() {
			ctrl.TogglePlay()
			Expect(ctrl.Tick(800 * time.Millisecond)).To(BeFalse())
			Expect(ctrl.Step()).To(Equal(0))

			Expect(ctrl.Tick(time.Millisecond)).To(BeTrue())
			Expect(ctrl.Step()).To(Equal(1))
		})

		It("accumulates small ticks and restarts after each advance", func() {
			ctrl.TogglePlay()
			for i := 0; i < 8; i++ {
				ctrl.Tick(100 * time.Millisecond)
			}
			Expect(ctrl.Step()).To(Equal(0))
			ctrl.Tick(100 * time.Millisecond)
			Expect(ctrl.Step()).To(Equal(1))

			ctrl.Tick(500 * time.Millisecond)
			Expect(ctrl.Step()).To(Equal(1))
		})

		It("moves at most one step per tick", func() {
			ctrl.TogglePlay()
			ctrl.Tick(big)
			Expect(ctrl.Step()).To(Equal(1))
		})

		It("clamps at the last step and pauses", func() {
			ctrl.TogglePlay()
			for i := 0; i < 100; i++ {
				ctrl.Tick(big)
				Expect(ctrl.Step()).To(BeNumerically("<", ctrl.Total()))
			}
			Expect(ctrl.Step()).To(Equal(ctrl.Total() - 1))
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(ctrl.Finished()).To(BeTrue())
			Expect(ctrl.Status()).To(Equal("Done"))
			Expect(ctrl.Current().Operation).To(Equal("Sorting complete!"))
		})

		It("walks the recorded snapshots in order", func() {
			ctrl.TogglePlay()
			seen := []int{ctrl.Current().Step}
			for ctrl.Playing() {
				if ctrl.Tick(big) {
					seen = append(seen, ctrl.Current().Step)
				}
			}
			Expect(seen).To(Equal([]int{0, 1, 2, 3, 4}))
		})
	})

	Describe("SetSpeed", func() {
		It("moves by one tier step and clamps to the small tier", func() {
			ctrl.Faster()
			Expect(ctrl.Speed()).To(Equal(700 * time.Millisecond))

			for i := 0; i < 50; i++ {
				ctrl.Faster()
			}
			Expect(ctrl.Speed()).To(Equal(100 * time.Millisecond))

			for i := 0; i < 50; i++ {
				ctrl.Slower()
			}
			Expect(ctrl.Speed()).To(Equal(2000 * time.Millisecond))
		})

		It("uses tighter bounds for large inputs", func() {
			c, err := playback.New(make([]int, 150))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Tier()).To(Equal(playback.LargeTier))

			c.Faster()
			Expect(c.Speed()).To(Equal(150 * time.Millisecond))
			for i := 0; i < 50; i++ {
				c.Faster()
			}
			Expect(c.Speed()).To(Equal(50 * time.Millisecond))
			for i := 0; i < 50; i++ {
				c.Slower()
			}
			Expect(c.Speed()).To(Equal(1000 * time.Millisecond))
		})

		It("never moves the cursor", func() {
			ctrl.TogglePlay()
			ctrl.Tick(big)
			ctrl.Faster()
			ctrl.SetSpeed(-time.Hour)
			Expect(ctrl.Step()).To(Equal(1))
			Expect(ctrl.Playing()).To(BeTrue())
		})
	})

	Describe("Reset", func() {
		It("rewinds, pauses and re-records the same input", func() {
			before := ctrl.Trace()
			ctrl.TogglePlay()
			ctrl.Tick(big)
			ctrl.Tick(big)

			Expect(ctrl.Reset()).To(Succeed())
			Expect(ctrl.Step()).To(Equal(0))
			Expect(ctrl.Playing()).To(BeFalse())
			Expect(ctrl.Trace()).NotTo(BeIdenticalTo(before))
			Expect(ctrl.Trace()).To(Equal(before))
		})

		It("keeps the speed setting", func() {
			ctrl.Slower()
			Expect(ctrl.Reset()).To(Succeed())
			Expect(ctrl.Speed()).To(Equal(900 * time.Millisecond))
		})
	})

	Describe("Regenerate", func() {
		It("fails without a generator", func() {
			Expect(ctrl.Regenerate()).To(MatchError(playback.ErrNoGenerator))
			Expect(ctrl.Input()).To(Equal([]int{9, 1}))
		})

		It("loads a fresh input of the same size and rewinds", func() {
			gen := &fixedGenerator{next: []int{4, 2, 8}}
			c, err := playback.New([]int{7, 3, 5, 1, 6}, playback.WithGenerator(gen))
			Expect(err).NotTo(HaveOccurred())
			session := c.Session()

			c.TogglePlay()
			c.Tick(big)
			Expect(c.Regenerate()).To(Succeed())

			Expect(gen.calls).To(Equal(1))
			Expect(gen.lastMax).To(Equal(7))
			Expect(c.Input()).To(Equal([]int{4, 2, 8, 4, 2}))
			Expect(c.Trace().Input()).To(Equal([]int{4, 2, 8, 4, 2}))
			Expect(c.Step()).To(Equal(0))
			Expect(c.Playing()).To(BeFalse())
			Expect(c.Session()).NotTo(Equal(session))
		})
	})

	Describe("Apply", func() {
		It("dispatches every command", func() {
			gen := &fixedGenerator{next: []int{1}}
			c, err := playback.New([]int{2, 1}, playback.WithGenerator(gen))
			Expect(err).NotTo(HaveOccurred())

			quit, err := c.Apply(playback.CmdTogglePlay)
			Expect(quit).To(BeFalse())
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Playing()).To(BeTrue())

			_, _ = c.Apply(playback.CmdSpeedUp)
			Expect(c.Speed()).To(Equal(700 * time.Millisecond))
			_, _ = c.Apply(playback.CmdSpeedDown)
			Expect(c.Speed()).To(Equal(800 * time.Millisecond))

			_, err = c.Apply(playback.CmdReset)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Playing()).To(BeFalse())

			_, err = c.Apply(playback.CmdRegenerate)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Input()).To(Equal([]int{1, 1}))

			quit, err = c.Apply(playback.CmdQuit)
			Expect(quit).To(BeTrue())
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects unknown commands", func() {
			_, err := ctrl.Apply(playback.Command(99))
			Expect(err).To(MatchError(playback.ErrUnknownCommand))
		})
	})

	Describe("logging", func() {
		It("logs transitions with the session id", func() {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			c, err := playback.New([]int{2, 1}, playback.WithLogger(logger))
			Expect(err).NotTo(HaveOccurred())

			c.TogglePlay()
			Expect(buf.String()).To(ContainSubstring("playback toggle"))
			Expect(buf.String()).To(ContainSubstring("session=" + c.Session()))
		})
	})
})

var _ = Describe("ParseCommand", func() {
	DescribeTable("known names",
		func(name string, want playback.Command) {
			got, err := playback.ParseCommand(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("toggle", "toggle", playback.CmdTogglePlay),
		Entry("play", " Play ", playback.CmdTogglePlay),
		Entry("reset", "reset", playback.CmdReset),
		Entry("faster", "up", playback.CmdSpeedUp),
		Entry("slower", "down", playback.CmdSpeedDown),
		Entry("new", "new", playback.CmdRegenerate),
		Entry("quit", "exit", playback.CmdQuit),
	)

	It("rejects anything else", func() {
		_, err := playback.ParseCommand("rewind")
		Expect(err).To(MatchError(playback.ErrUnknownCommand))
	})

	It("names commands", func() {
		Expect(playback.CmdRegenerate.String()).To(Equal("new"))
		Expect(playback.Command(0).String()).To(Equal("command(0)"))
	})
})

var _ = Describe("TierFor", func() {
	It("splits at 100 elements", func() {
		Expect(playback.TierFor(100)).To(Equal(playback.SmallTier))
		Expect(playback.TierFor(101)).To(Equal(playback.LargeTier))
	})
})
