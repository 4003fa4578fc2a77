package tuplekit

import (
	"go.llib.dev/frameless/pkg/pointer"
	"go.llib.dev/frameless/port/option"
)

// FoldConfig holds the optional initial values of a fold.
type FoldConfig[O any] struct {
	// Start is the initial accumulator value, used regardless of emptiness.
	Start *O
	// Default is the fallback result for folding an empty Tuple.
	Default *O
}

func (c FoldConfig[O]) Configure(t *FoldConfig[O]) {
	if c.Start != nil {
		t.Start = c.Start
	}
	if c.Default != nil {
		t.Default = c.Default
	}
}

type FoldOption[O any] option.Option[FoldConfig[O]]

// WithStart sets the initial accumulator value of a fold.
func WithStart[O any](v O) FoldOption[O] {
	return option.Func[FoldConfig[O]](func(c *FoldConfig[O]) {
		c.Start = pointer.Of(v)
	})
}

// WithDefault sets the value a fold returns for an empty Tuple
// when no start value is given.
func WithDefault[O any](v O) FoldOption[O] {
	return option.Func[FoldConfig[O]](func(c *FoldConfig[O]) {
		c.Default = pointer.Of(v)
	})
}

// Foldl reduces the Tuple left to right into a single accumulated value.
// The first argument of fn is the accumulator.
//
// The initial accumulator is resolved in this order:
//   - the WithStart value when given, regardless of emptiness
//   - else the first element, when the Tuple is not empty
//     (the element type must then match the accumulator type)
//   - else the WithDefault value when given
//   - else the fold fails with ErrInvalidArgument
func Foldl[O, I any, FN foldlFunc[O, I]](t Tuple[I], fn FN, opts ...FoldOption[O]) (O, error) {
	var (
		c    = option.ToConfig(opts)
		fold = toFoldlFunc[O, I](fn)
		acc  O
		vs   = t.vs
	)
	switch {
	case c.Start != nil:
		acc = *c.Start
	case 0 < len(vs):
		seed, ok := any(vs[0]).(O)
		if !ok {
			return acc, ErrTypeMismatch.F("foldl: cannot seed a %T accumulator from a %T element", acc, vs[0])
		}
		acc, vs = seed, vs[1:]
	case c.Default != nil:
		acc = *c.Default
	default:
		return acc, ErrInvalidArgument.F("foldl: both start and default cannot be absent for an empty tuple")
	}
	for _, v := range vs {
		var err error
		acc, err = fold(acc, v)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// Foldr reduces the Tuple right to left into a single accumulated value.
// The second argument of fn is the accumulator.
//
// The initial accumulator resolution mirrors Foldl,
// except that the seed taken from a non-empty Tuple is the last element.
func Foldr[O, I any, FN foldrFunc[O, I]](t Tuple[I], fn FN, opts ...FoldOption[O]) (O, error) {
	var (
		c    = option.ToConfig(opts)
		fold = toFoldrFunc[O, I](fn)
		acc  O
		vs   = t.vs
	)
	switch {
	case c.Start != nil:
		acc = *c.Start
	case 0 < len(vs):
		seed, ok := any(vs[len(vs)-1]).(O)
		if !ok {
			return acc, ErrTypeMismatch.F("foldr: cannot seed a %T accumulator from a %T element", acc, vs[len(vs)-1])
		}
		acc, vs = seed, vs[:len(vs)-1]
	case c.Default != nil:
		acc = *c.Default
	default:
		return acc, ErrInvalidArgument.F("foldr: both start and default cannot be absent for an empty tuple")
	}
	for i := len(vs) - 1; 0 <= i; i-- {
		var err error
		acc, err = fold(vs[i], acc)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// Accumulate returns the Tuple of the running partial fold results (prefix scan).
//
// Without a start value the first output element is the Tuple's own first
// element, and the output has the input's length; an empty input yields an
// empty output. With a start value the output begins with the start itself,
// followed by one running fold result per input element.
func Accumulate[O, I any, FN foldlFunc[O, I]](t Tuple[I], fn FN, start ...O) (Tuple[O], error) {
	if 1 < len(start) {
		return Tuple[O]{}, ErrInvalidArgument.F("accumulate: expected at most 1 start value, got %d", len(start))
	}
	var (
		fold = toFoldlFunc[O, I](fn)
		acc  O
		vs   = t.vs
	)
	switch {
	case len(start) == 1:
		acc = start[0]
	case len(vs) == 0:
		return Tuple[O]{}, nil
	default:
		seed, ok := any(vs[0]).(O)
		if !ok {
			return Tuple[O]{}, ErrTypeMismatch.F("accumulate: cannot seed a %T accumulator from a %T element", acc, vs[0])
		}
		acc, vs = seed, vs[1:]
	}
	out := make([]O, 0, len(vs)+1)
	out = append(out, acc)
	for _, v := range vs {
		var err error
		acc, err = fold(acc, v)
		if err != nil {
			return Tuple[O]{}, err
		}
		out = append(out, acc)
	}
	return Tuple[O]{vs: out}, nil
}

// --------------------------------------------------------------------------------- //

type mapFunc[O, I any] interface {
	func(I) O | func(I) (O, error)
}

func toMapFunc[O, I any, FN mapFunc[O, I]](m FN) func(I) (O, error) {
	switch fn := any(m).(type) {
	case func(I) O:
		return func(i I) (O, error) {
			return fn(i), nil
		}
	case func(I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type foldlFunc[O, I any] interface {
	func(O, I) O | func(O, I) (O, error)
}

func toFoldlFunc[O, I any, FN foldlFunc[O, I]](m FN) func(O, I) (O, error) {
	switch fn := any(m).(type) {
	case func(O, I) O:
		return func(o O, i I) (O, error) {
			return fn(o, i), nil
		}
	case func(O, I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type foldrFunc[O, I any] interface {
	func(I, O) O | func(I, O) (O, error)
}

func toFoldrFunc[O, I any, FN foldrFunc[O, I]](m FN) func(I, O) (O, error) {
	switch fn := any(m).(type) {
	case func(I, O) O:
		return func(i I, o O) (O, error) {
			return fn(i, o), nil
		}
	case func(I, O) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}
