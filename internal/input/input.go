// Package input produces the arrays that get sorted: size validation,
// seeded random generation and a one-line description for display.
package input

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

const (
	MinSize         = 5
	MaxSize         = 500
	DefaultMaxValue = 500

	// Arrays up to this size are listed element by element.
	listLimit = 20
)

// ClampSize forces n into [MinSize, MaxSize].
func ClampSize(n int) int {
	return max(MinSize, min(MaxSize, n))
}

// Generator draws a fresh array of n values in [1, maxValue].
type Generator interface {
	Generate(n, maxValue int) []int
}

// Random is a Generator backed by a seeded math/rand source. It is not safe
// for concurrent use.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Generate(n, maxValue int) []int {
	if maxValue < 1 {
		maxValue = 1
	}
	arr := make([]int, n)
	for i := range arr {
		arr[i] = r.rng.Intn(maxValue) + 1
	}
	return arr
}

// Describe renders the "Array: ..." line: every element for small arrays,
// the size and value range otherwise.
func Describe(arr []int) string {
	if len(arr) == 0 {
		return "Array: []"
	}
	if len(arr) <= listLimit {
		parts := make([]string, len(arr))
		for i, v := range arr {
			parts[i] = fmt.Sprint(v)
		}
		return "Array: [" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("Array: %d elements, range: %d-%d", len(arr), slices.Min(arr), slices.Max(arr))
}
