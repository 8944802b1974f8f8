package playback

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/trace"
)

// State is the controller's play flag.
type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Controller holds a cursor into a trace and advances it over time.
type Controller struct {
	input    []int
	maxValue int
	trace    *trace.Trace

	step    int
	state   State
	speed   time.Duration
	elapsed time.Duration
	tier    Tier

	gen     input.Generator
	session string
	logger  *slog.Logger
}

type Option func(*Controller)

// WithGenerator sets the source of fresh arrays for CmdRegenerate.
func WithGenerator(g input.Generator) Option {
	return func(c *Controller) { c.gen = g }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithSpeed overrides the size-based default step interval. The value is
// clamped to the input's speed tier.
func WithSpeed(d time.Duration) Option {
	return func(c *Controller) { c.speed = d }
}

// New records a trace of in and returns a paused controller at step 0.
func New(in []int, opts ...Option) (*Controller, error) {
	c := &Controller{
		input: slices.Clone(in),
		tier:  TierFor(len(in)),
		speed: DefaultSpeed(len(in)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	c.speed = c.tier.Clamp(c.speed)

	if err := c.load(); err != nil {
		return nil, err
	}
	c.maxValue = c.trace.MaxValue()
	return c, nil
}

// load records a fresh trace of c.input and rewinds. The previous trace is
// dropped only once the new one exists.
func (c *Controller) load() error {
	tr, err := trace.Record(c.input)
	if err != nil {
		return fmt.Errorf("load trace: %w", err)
	}
	c.trace = tr
	c.step = 0
	c.state = Paused
	c.elapsed = 0
	c.session = uuid.NewString()
	return nil
}

func (c *Controller) TogglePlay() {
	if c.state == Playing {
		c.state = Paused
	} else {
		c.state = Playing
		c.elapsed = 0
	}
	c.log("toggle")
}

// Tick feeds elapsed wall-clock time into the controller. Once the time
// accumulated since the last advance exceeds the step interval, the cursor
// moves one step and the accumulator restarts. Advancing past the final
// snapshot clamps the cursor there and pauses. Tick reports whether the
// cursor moved.
func (c *Controller) Tick(elapsed time.Duration) bool {
	if c.state != Playing || c.trace == nil {
		return false
	}

	c.elapsed += elapsed
	if c.elapsed <= c.speed {
		return false
	}
	c.elapsed = 0

	last := c.trace.Len() - 1
	if c.step+1 > last {
		c.step = last
		c.state = Paused
		c.log("finished")
		return false
	}
	c.step++
	return true
}

// Reset re-records the current input and rewinds to a paused step 0.
func (c *Controller) Reset() error {
	if err := c.load(); err != nil {
		return err
	}
	c.log("reset")
	return nil
}

// Regenerate draws a new input of the same size with values no larger than
// the maximum of the input the controller started with, then behaves like Reset.
func (c *Controller) Regenerate() error {
	if c.gen == nil {
		return ErrNoGenerator
	}
	next := c.gen.Generate(len(c.input), c.maxValue)
	if len(next) != len(c.input) {
		return fmt.Errorf("regenerate: generator returned %d elements, want %d", len(next), len(c.input))
	}

	prev := c.input
	c.input = next
	if err := c.load(); err != nil {
		c.input = prev
		return err
	}
	c.log("regenerate")
	return nil
}

// SetSpeed shifts the step interval by delta within the speed tier. It
// never touches the cursor.
func (c *Controller) SetSpeed(delta time.Duration) {
	c.speed = c.tier.Clamp(c.speed + delta)
	c.log("speed")
}

// Faster shortens the step interval by one tier step.
func (c *Controller) Faster() { c.SetSpeed(-c.tier.Step) }

// Slower lengthens the step interval by one tier step.
func (c *Controller) Slower() { c.SetSpeed(c.tier.Step) }

// Apply executes cmd and reports whether the caller should quit.
func (c *Controller) Apply(cmd Command) (quit bool, err error) {
	switch cmd {
	case CmdTogglePlay:
		c.TogglePlay()
	case CmdReset:
		err = c.Reset()
	case CmdSpeedUp:
		c.Faster()
	case CmdSpeedDown:
		c.Slower()
	case CmdRegenerate:
		err = c.Regenerate()
	case CmdQuit:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrUnknownCommand, cmd)
	}
	return false, err
}

// Current returns the snapshot under the cursor.
func (c *Controller) Current() trace.Snapshot { return c.trace.At(c.step) }

func (c *Controller) Trace() *trace.Trace  { return c.trace }
func (c *Controller) Step() int            { return c.step }
func (c *Controller) Total() int           { return c.trace.Len() }
func (c *Controller) State() State         { return c.state }
func (c *Controller) Playing() bool        { return c.state == Playing }
func (c *Controller) Speed() time.Duration { return c.speed }
func (c *Controller) Tier() Tier           { return c.tier }
func (c *Controller) Session() string      { return c.session }

// Input returns a copy of the array currently being replayed.
func (c *Controller) Input() []int { return slices.Clone(c.input) }

// Finished reports whether the cursor sits on the final snapshot.
func (c *Controller) Finished() bool { return c.step == c.trace.Len()-1 }

// Status is the human label for the status line.
func (c *Controller) Status() string {
	switch {
	case c.state == Playing:
		return "Playing"
	case c.step == 0:
		return "Ready"
	case c.Finished():
		return "Done"
	default:
		return "Paused"
	}
}

func (c *Controller) log(event string) {
	c.logger.Debug("playback "+event,
		"session", c.session,
		"state", c.state,
		"step", c.step,
		"total", c.trace.Len(),
		"speed", c.speed,
	)
}
