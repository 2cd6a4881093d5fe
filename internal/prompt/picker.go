package prompt

import "math/rand/v2"

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int {
	return rand.IntN(n)
}

// RandomPicker is the process-wide uniform picker; safe for concurrent use
var RandomPicker Picker = globalPicker{}

// Pick returns a uniformly chosen element, or the zero value for an empty list
func Pick[T any](p Picker, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	if p == nil {
		p = RandomPicker
	}
	return items[p.IntN(len(items))]
}
