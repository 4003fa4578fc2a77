package tuplekit

import (
	"go.llib.dev/frameless/pkg/pointer"
	"go.llib.dev/frameless/port/option"
)

// SliceConfig describes a slicing window over a Tuple.
// An unset Start/Stop means the extreme of the traversal direction.
type SliceConfig struct {
	// Start is the index of the first element of the window (inclusive).
	Start *int
	// Stop is the index where the window ends (exclusive).
	Stop *int
	// Step is the traversal stride, negative for reverse traversal.
	// A zero Step is normalized to 1.
	Step int
}

func (c SliceConfig) Configure(t *SliceConfig) {
	if c.Start != nil {
		t.Start = c.Start
	}
	if c.Stop != nil {
		t.Stop = c.Stop
	}
	if c.Step != 0 {
		t.Step = c.Step
	}
}

type SliceOption option.Option[SliceConfig]

// Start sets the inclusive begin index of the slicing window.
// Negative values count back from the end.
func Start(idx int) SliceOption {
	return option.Func[SliceConfig](func(c *SliceConfig) {
		c.Start = pointer.Of(idx)
	})
}

// Stop sets the exclusive end index of the slicing window.
// Negative values count back from the end.
func Stop(idx int) SliceOption {
	return option.Func[SliceConfig](func(c *SliceConfig) {
		c.Stop = pointer.Of(idx)
	})
}

// Step sets the traversal stride, negative for reverse traversal.
func Step(n int) SliceOption {
	return option.Func[SliceConfig](func(c *SliceConfig) {
		c.Step = n
	})
}

// Slice returns a new Tuple holding the elements of the configured window.
//
// Slicing never fails: negative bounds wrap around from the end,
// out-of-range bounds clamp to the valid range,
// and the result is simply empty when the window selects nothing.
func (t Tuple[T]) Slice(opts ...SliceOption) Tuple[T] {
	var (
		c    = option.ToConfig(opts)
		n    = len(t.vs)
		step = c.Step
	)
	if step == 0 {
		step = 1
	}
	var out []T
	if 0 < step {
		var start, stop = 0, n
		if c.Start != nil {
			start = clampIndex(*c.Start, n, 0, n)
		}
		if c.Stop != nil {
			stop = clampIndex(*c.Stop, n, 0, n)
		}
		for i := start; i < stop; i += step {
			out = append(out, t.vs[i])
		}
	} else {
		var start, stop = n - 1, -1
		if c.Start != nil {
			start = clampIndex(*c.Start, n, -1, n-1)
		}
		if c.Stop != nil {
			stop = clampIndex(*c.Stop, n, -1, n-1)
		}
		for i := start; stop < i; i += step {
			out = append(out, t.vs[i])
		}
	}
	return Tuple[T]{vs: out}
}

// Reverse returns a new Tuple with the elements in reverse order.
func (t Tuple[T]) Reverse() Tuple[T] {
	return t.Slice(Step(-1))
}

// clampIndex resolves a bound the way sequence slicing traditionally does:
// negative values are offset by the length, then the result is clamped into [lo, hi].
func clampIndex(idx, length, lo, hi int) int {
	if idx < 0 {
		idx += length
	}
	if idx < lo {
		return lo
	}
	if hi < idx {
		return hi
	}
	return idx
}
