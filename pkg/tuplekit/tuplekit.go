// Package tuplekit provides Tuple, an immutable, ordered, fixed length
// collection with a functional API.
//
// A Tuple never changes after construction; every operation that would alter
// it returns a brand new Tuple instead. Because of this, a Tuple value can be
// freely shared between goroutines without synchronization.
//
// The Tuple type serves two usage patterns:
// embed it in your own type to extend it, or keep it as a field and compose.
// Both work on the same single implementation.
package tuplekit

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
)

const (
	// ErrInvalidArgument is returned when an operation receives arguments
	// it cannot work with, like multiple source sequences at construction.
	ErrInvalidArgument errorkit.Error = "invalid argument"
	// ErrIndexOutOfRange is returned by Get for an index outside [-len, len).
	ErrIndexOutOfRange errorkit.Error = "index is out of range"
	// ErrTypeMismatch is returned when a value's dynamic type
	// does not line up with the expected container or element type.
	ErrTypeMismatch errorkit.Error = "type mismatch"
)

// Tuple is an immutable, ordered, fixed length collection of T.
//
// The zero value is an empty Tuple, ready to use.
type Tuple[T any] struct {
	vs []T
}

// New creates a Tuple from at most one source sequence.
// Without a source it returns an empty Tuple.
// Passing more than one source sequence is a caller error (ErrInvalidArgument).
func New[T any](srcs ...iter.Seq[T]) (Tuple[T], error) {
	switch len(srcs) {
	case 0:
		return Tuple[T]{}, nil
	case 1:
		return Tuple[T]{vs: iterkit.Collect(srcs[0])}, nil
	default:
		return Tuple[T]{}, ErrInvalidArgument.F("tuplekit.New expects at most 1 source sequence, got %d", len(srcs))
	}
}

// Of creates a Tuple from the listed values.
func Of[T any](vs ...T) Tuple[T] {
	return Tuple[T]{vs: slices.Clone(vs)}
}

// FromSlice creates a Tuple holding the elements of the given slice.
// The slice is cloned, later changes to it won't be visible in the Tuple.
func FromSlice[T any](vs []T) Tuple[T] {
	return Tuple[T]{vs: slices.Clone(vs)}
}

// Must is a panic based error handling helper for the constructor
// and transformation functions of this package.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(fmt.Errorf("tuplekit.Must: %w", err))
	}
	return v
}

// Cast recovers a Tuple[T] from a value that travelled as any.
// A value of any other dynamic type yields ErrTypeMismatch.
func Cast[T any](v any) (Tuple[T], error) {
	t, ok := reflectkit.Cast[Tuple[T]](v)
	if !ok {
		return Tuple[T]{}, ErrTypeMismatch.F("%T is not a %T", v, Tuple[T]{})
	}
	return t, nil
}

// Len returns the number of elements.
func (t Tuple[T]) Len() int { return len(t.vs) }

// IsEmpty reports whether the Tuple has no elements.
func (t Tuple[T]) IsEmpty() bool { return len(t.vs) == 0 }

// Lookup returns the element at the given index.
// Negative indexes count back from the end, so Lookup(-1) is the last element.
func (t Tuple[T]) Lookup(idx int) (T, bool) {
	if idx < 0 {
		idx += len(t.vs)
	}
	if idx < 0 || len(t.vs) <= idx {
		var zero T
		return zero, false
	}
	return t.vs[idx], true
}

// Get returns the element at the given index, supporting negative wraparound.
// An index outside [-Len, Len) yields ErrIndexOutOfRange.
func (t Tuple[T]) Get(idx int) (T, error) {
	v, ok := t.Lookup(idx)
	if !ok {
		return v, ErrIndexOutOfRange.F("index %d, valid range is [-%d, %d)", idx, len(t.vs), len(t.vs))
	}
	return v, nil
}

// Concat returns a new Tuple with the receiver's elements
// followed by the elements of each argument, in order.
func (t Tuple[T]) Concat(oths ...Tuple[T]) Tuple[T] {
	if len(oths) == 0 {
		return t
	}
	size := len(t.vs)
	for _, o := range oths {
		size += len(o.vs)
	}
	vs := make([]T, 0, size)
	vs = append(vs, t.vs...)
	for _, o := range oths {
		vs = append(vs, o.vs...)
	}
	return Tuple[T]{vs: vs}
}

// Repeat returns the Tuple concatenated with itself n times.
// A non-positive n yields an empty Tuple.
func (t Tuple[T]) Repeat(n int) Tuple[T] {
	if n <= 0 || len(t.vs) == 0 {
		return Tuple[T]{}
	}
	vs := make([]T, 0, n*len(t.vs))
	for i := 0; i < n; i++ {
		vs = append(vs, t.vs...)
	}
	return Tuple[T]{vs: vs}
}

// Copy returns a Tuple equal to the receiver in O(1) time and space.
// Since a Tuple is immutable, the backing elements are shared.
func (t Tuple[T]) Copy() Tuple[T] { return t }

// Equal reports whether both tuples hold pairwise equal elements in the same order.
func (t Tuple[T]) Equal(oth Tuple[T]) bool {
	if len(t.vs) != len(oth.vs) {
		return false
	}
	if len(t.vs) == 0 {
		return true
	}
	if &t.vs[0] == &oth.vs[0] { // shared backing
		return true
	}
	for i := range t.vs {
		if !reflectkit.Equal(t.vs[i], oth.vs[i]) {
			return false
		}
	}
	return true
}

// Seq iterates over the elements in order.
func (t Tuple[T]) Seq() iter.Seq[T] {
	return slices.Values(t.vs)
}

// Reversed iterates over the elements from the last towards the first.
func (t Tuple[T]) Reversed() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(t.vs) - 1; 0 <= i; i-- {
			if !yield(t.vs[i]) {
				return
			}
		}
	}
}

// ToSlice returns the elements as a new slice that the caller owns.
func (t Tuple[T]) ToSlice() []T {
	return slices.Clone(t.vs)
}

func (t Tuple[T]) String() string {
	var sb strings.Builder
	sb.WriteString("((")
	for i, v := range t.vs {
		if 0 < i {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("))")
	return sb.String()
}

// Map returns a new Tuple with fn applied to every element, in order.
// The length and the element order are preserved.
func Map[O, I any, FN mapFunc[O, I]](t Tuple[I], fn FN) (Tuple[O], error) {
	var (
		out    = make([]O, len(t.vs))
		mapper = toMapFunc[O, I](fn)
	)
	for i, v := range t.vs {
		o, err := mapper(v)
		if err != nil {
			return Tuple[O]{}, err
		}
		out[i] = o
	}
	return Tuple[O]{vs: out}, nil
}
