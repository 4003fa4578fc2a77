package tuplekit_test

import (
	"fmt"

	"go.llib.dev/containerkit/pkg/tuplekit"
)

func ExampleOf() {
	tup := tuplekit.Of(1, 2, 3)

	fmt.Println(tup)
	// Output: ((1, 2, 3))
}

func ExampleMap() {
	tup := tuplekit.Of("a", "b", "c")

	got := tuplekit.Must(tuplekit.Map[string](tup, func(v string) string {
		return v + "!"
	}))

	fmt.Println(got)
	// Output: ((a!, b!, c!))
}

func ExampleFoldl() {
	tup := tuplekit.Of(1, 2, 3, 4, 5)

	sum, err := tuplekit.Foldl[int](tup, func(acc, v int) int { return acc + v })
	if err != nil {
		panic(err)
	}

	fmt.Println(sum)
	// Output: 15
}

func ExampleFoldl_withStart() {
	tup := tuplekit.Of(1, 2, 3, 4, 5)

	sum := tuplekit.Must(tuplekit.Foldl[int](tup,
		func(acc, v int) int { return acc + v },
		tuplekit.WithStart(10)))

	fmt.Println(sum)
	// Output: 25
}

func ExampleAccumulate() {
	tup := tuplekit.Of(1, 2, 3, 4, 5)

	scan := tuplekit.Must(tuplekit.Accumulate[int](tup, func(acc, v int) int { return acc + v }))

	fmt.Println(scan)
	// Output: ((1, 3, 6, 10, 15))
}

func ExampleBind() {
	rng := func(n int) tuplekit.Tuple[int] {
		var vs []int
		for i := 0; i < n; i++ {
			vs = append(vs, i)
		}
		return tuplekit.FromSlice(vs)
	}

	tup := tuplekit.Of(2, 3)

	fmt.Println(tuplekit.Must(tuplekit.Bind(tup, rng)))
	fmt.Println(tuplekit.Must(tuplekit.Bind(tup, rng, tuplekit.PolicyMerge)))
	fmt.Println(tuplekit.Must(tuplekit.Bind(tup, rng, tuplekit.PolicyExhaust)))
	// Output:
	// ((0, 1, 0, 1, 2))
	// ((0, 0, 1, 1))
	// ((0, 0, 1, 1, 2))
}

func ExampleTuple_Slice() {
	tup := tuplekit.Of(0, 1, 2, 3, 4, 5)

	fmt.Println(tup.Slice(tuplekit.Start(1), tuplekit.Stop(4)))
	fmt.Println(tup.Slice(tuplekit.Start(-2)))
	fmt.Println(tup.Slice(tuplekit.Step(-2)))
	// Output:
	// ((1, 2, 3))
	// ((4, 5))
	// ((5, 3, 1))
}

func ExampleTuple_Concat() {
	a := tuplekit.Of(1, 2)
	b := tuplekit.Of(3, 4)

	fmt.Println(a.Concat(b))
	// Output: ((1, 2, 3, 4))
}

func ExampleTuple_Repeat() {
	tup := tuplekit.Of("na")

	fmt.Println(tup.Repeat(4))
	// Output: ((na, na, na, na))
}
