package tuplekit

import "fmt"

// MergePolicy selects how Bind combines the sub tuples produced per element.
type MergePolicy int

const (
	// PolicyConcat concatenates the sub tuples one after the other in source order.
	PolicyConcat MergePolicy = iota
	// PolicyMerge interleaves the sub tuples round-robin
	// and stops as soon as any of them is exhausted.
	PolicyMerge
	// PolicyExhaust interleaves the sub tuples round-robin
	// and continues until all of them are exhausted.
	PolicyExhaust
)

func (p MergePolicy) String() string {
	switch p {
	case PolicyConcat:
		return "concat"
	case PolicyMerge:
		return "merge"
	case PolicyExhaust:
		return "exhaust"
	default:
		return fmt.Sprintf("MergePolicy(%d)", int(p))
	}
}

// Bind applies fn to every element in order, producing one sub tuple per
// element, then combines the sub tuples into a single Tuple per the given
// merge policy. Without a policy argument it concatenates (PolicyConcat).
//
// The sub tuples are fully realized before combination,
// fn must not depend on lazy consumption.
func Bind[O, I any](t Tuple[I], fn func(I) Tuple[O], policy ...MergePolicy) (Tuple[O], error) {
	if 1 < len(policy) {
		return Tuple[O]{}, ErrInvalidArgument.F("bind: expected at most 1 merge policy, got %d", len(policy))
	}
	var p = PolicyConcat
	if len(policy) == 1 {
		p = policy[0]
	}
	switch p {
	case PolicyConcat, PolicyMerge, PolicyExhaust:
	default:
		return Tuple[O]{}, ErrInvalidArgument.F("bind: unrecognized merge policy: %s", p)
	}
	subs := make([]Tuple[O], len(t.vs))
	for i, v := range t.vs {
		subs[i] = fn(v)
	}
	switch p {
	case PolicyMerge:
		return interleave(subs, minLen(subs)), nil
	case PolicyExhaust:
		return interleave(subs, maxLen(subs)), nil
	default:
		return flatten(subs), nil
	}
}

func flatten[T any](subs []Tuple[T]) Tuple[T] {
	var size int
	for _, sub := range subs {
		size += len(sub.vs)
	}
	if size == 0 {
		return Tuple[T]{}
	}
	out := make([]T, 0, size)
	for _, sub := range subs {
		out = append(out, sub.vs...)
	}
	return Tuple[T]{vs: out}
}

// interleave emits the given number of round-robin rounds over the sub tuples.
// In round k only the sub tuples that still have an element at position k
// contribute. The round count is the sole difference between the merge policy
// (min length, full rounds only) and the exhaust policy (max length).
func interleave[T any](subs []Tuple[T], rounds int) Tuple[T] {
	var out []T
	for round := 0; round < rounds; round++ {
		for _, sub := range subs {
			if round < len(sub.vs) {
				out = append(out, sub.vs[round])
			}
		}
	}
	return Tuple[T]{vs: out}
}

func minLen[T any](subs []Tuple[T]) int {
	if len(subs) == 0 {
		return 0
	}
	m := len(subs[0].vs)
	for _, sub := range subs[1:] {
		if len(sub.vs) < m {
			m = len(sub.vs)
		}
	}
	return m
}

func maxLen[T any](subs []Tuple[T]) int {
	var m int
	for _, sub := range subs {
		if m < len(sub.vs) {
			m = len(sub.vs)
		}
	}
	return m
}
