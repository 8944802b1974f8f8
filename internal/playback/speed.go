package playback

import "time"

// Tier bounds the step interval for a given input size. Large inputs get a
// lower floor and ceiling so their longer traces stay watchable.
type Tier struct {
	Name string
	Min  time.Duration
	Max  time.Duration
	Step time.Duration
}

const (
	largeTierThreshold = 100
	fastDefaultAbove   = 50

	defaultSpeed = 800 * time.Millisecond
	fastSpeed    = 200 * time.Millisecond
)

var (
	SmallTier = Tier{Name: "small", Min: 100 * time.Millisecond, Max: 2000 * time.Millisecond, Step: 100 * time.Millisecond}
	LargeTier = Tier{Name: "large", Min: 50 * time.Millisecond, Max: 1000 * time.Millisecond, Step: 50 * time.Millisecond}
)

// TierFor picks the speed tier for an input of n elements.
func TierFor(n int) Tier {
	if n > largeTierThreshold {
		return LargeTier
	}
	return SmallTier
}

// DefaultSpeed is the starting step interval for n elements.
func DefaultSpeed(n int) time.Duration {
	if n > fastDefaultAbove {
		return fastSpeed
	}
	return defaultSpeed
}

func (t Tier) Clamp(d time.Duration) time.Duration {
	return max(t.Min, min(t.Max, d))
}
