package collections_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hasbyte1/go-fnutils/collections"
)

func ExampleEach() {
	collections.Each(collections.Of("a", "b"), func(v string, i int, _ collections.Collection[int, string]) {
		fmt.Println(i, v)
	})
	// Output:
	// 0 a
	// 1 b
}

func ExampleFilter() {
	evens := collections.Filter(collections.Of(1, 2, 3, 4, 5, 6),
		func(n, _ int, _ collections.Collection[int, int]) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4 6]
}

func ExampleReduce() {
	sum := collections.Reduce(collections.Of(1, 2, 3),
		func(acc, n, _ int, _ collections.Collection[int, int]) int { return acc + n })
	fmt.Println(sum)
	// Output: 6
}

func ExampleReduce_mapping() {
	stock := collections.Mapping[string, int]{"apples": 3, "pears": 4}
	total := collections.Reduce(stock,
		func(acc, n int, _ string, _ collections.Collection[string, int]) int { return acc + n })
	keys := stock.Keys()
	slices.Sort(keys)
	fmt.Println(keys, total)
	// Output: [apples pears] 7
}

func ExampleUniq() {
	fmt.Println(collections.Uniq(collections.Of(1, 2, 2, 3, 1)))
	// Output: [1 2 3]
}

func ExampleSome() {
	hasLong := collections.Some(collections.Of("go", "rust", "zig"),
		func(s string, _ int, _ collections.Collection[int, string]) bool { return len(s) > 3 })
	fmt.Println(hasLong)
	// Output: true
}

func ExampleInvoke() {
	upper, err := collections.Invoke(collections.Of("a", "b"),
		collections.Shared(func(s string, _ ...any) string { return strings.ToUpper(s) }))
	fmt.Println(upper, err)
	// Output: [A B] <nil>
}

func ExamplePluckPath() {
	rows := collections.Of(
		map[string]any{"user": map[string]any{"name": "Alice"}},
		map[string]any{"user": map[string]any{"name": "Bob"}},
	)
	fmt.Println(collections.PluckPath(rows, "user.name"))
	// Output: [Alice Bob]
}
