// Package boxkit provides Box, a mutable container that holds at most one value.
//
// Emptiness is tracked with an explicit tag rather than a sentinel value,
// so any value of the element type is storable, including zero values.
//
// Box mutation is not synchronized. When a Box is shared between goroutines,
// guard Put/Pop with external locking or confine the Box to a single owner.
package boxkit

import (
	"fmt"
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/reflectkit"
)

const (
	// ErrAlreadyFull is returned by Put when the Box already holds a value.
	ErrAlreadyFull errorkit.Error = "box is already full"
	// ErrEmpty is returned by Pop and Get when the Box holds no value.
	ErrEmpty errorkit.Error = "box is empty"
)

// Box holds at most one value of T.
type Box[T any] struct {
	item   T
	filled bool
}

// New returns an empty Box.
func New[T any]() *Box[T] { return &Box[T]{} }

// Of returns a Box pre-filled with the given value.
func Of[T any](v T) *Box[T] { return &Box[T]{item: v, filled: true} }

// Put stores the value in the Box.
// Putting into an already full Box is a caller error (ErrAlreadyFull).
func (b *Box[T]) Put(v T) error {
	if b.filled {
		return ErrAlreadyFull
	}
	b.item, b.filled = v, true
	return nil
}

// Pop removes and returns the contained value, leaving the Box empty.
func (b *Box[T]) Pop() (T, error) {
	if !b.filled {
		var zero T
		return zero, ErrEmpty
	}
	var zero T
	v := b.item
	b.item, b.filled = zero, false
	return v, nil
}

// Get returns the contained value without removing it.
// On an empty Box it returns the first alternate value when one is given,
// otherwise ErrEmpty.
func (b *Box[T]) Get(alt ...T) (T, error) {
	if b.filled {
		return b.item, nil
	}
	if 0 < len(alt) {
		return alt[0], nil
	}
	var zero T
	return zero, ErrEmpty
}

// Lookup returns the contained value and whether the Box holds one.
func (b *Box[T]) Lookup() (T, bool) { return b.item, b.filled }

// IsEmpty reports whether the Box holds no value.
func (b *Box[T]) IsEmpty() bool { return !b.filled }

// Len returns 1 for a filled Box and 0 for an empty one.
func (b *Box[T]) Len() int {
	if b.filled {
		return 1
	}
	return 0
}

// Seq iterates over the zero or one contained value.
func (b *Box[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if b.filled {
			yield(b.item)
		}
	}
}

// Equal reports whether both boxes are empty, or both hold an equal value.
func (b *Box[T]) Equal(oth *Box[T]) bool {
	if b == oth {
		return true
	}
	if b == nil || oth == nil {
		return false
	}
	if b.filled != oth.filled {
		return false
	}
	if !b.filled {
		return true
	}
	return reflectkit.Equal(b.item, oth.item)
}

func (b *Box[T]) String() string {
	if b.filled {
		return fmt.Sprintf("Box(%v)", b.item)
	}
	return "Box()"
}

// Map returns a new Box with fn applied to the contained value.
// An empty input yields an empty output without calling fn.
func Map[O, I any](b *Box[I], fn func(I) O) *Box[O] {
	if v, ok := b.Lookup(); ok {
		return Of(fn(v))
	}
	return New[O]()
}

// Bind returns the Box produced by fn for the contained value.
// An empty input yields an empty output without calling fn.
func Bind[O, I any](b *Box[I], fn func(I) *Box[O]) *Box[O] {
	if v, ok := b.Lookup(); ok {
		return fn(v)
	}
	return New[O]()
}
