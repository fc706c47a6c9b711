package views_test

import (
	"fmt"

	"vista/views"
)

func ExampleMap() {
	input := views.Of(1, 2, 3)

	result := views.Map(input, func(v int) int {
		return v * 10
	})

	for v := range result.Seq() {
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
}

func ExampleGroup() {
	input := views.Of(1, 2, 3, 4, 5)

	// Sliding windows of size 3, moving forward one element at a time.
	for w := range views.Group(input, 3, 1).Seq() {
		fmt.Println(w)
	}

	// Output:
	// [1 2 3]
	// [2 3 4]
	// [3 4 5]
}

func ExampleSeries() {
	powers := views.Series(1, func(x int) int { return x * 2 })

	fmt.Println(powers.TakeWhile(func(x int) bool { return x < 40 }).Collect())

	// Output:
	// [1 2 4 8 16 32]
}

func ExampleView_Stage() {
	big := views.Of(1, 19, 4, 2, 5, -1, 5).
		Filter(func(x int) bool { return x > 2 }).
		Stage() // computed views must be staged before sorting

	fmt.Println(views.Sort(big).Collect())

	// Output:
	// [4 5 5 19]
}

func ExampleZip() {
	names := views.Of("a", "b", "c")
	values := views.Range(10, 40, 10)

	for p := range views.Zip(names, values).Seq() {
		fmt.Printf("%s=%d\n", p.V1, p.V2)
	}

	// Output:
	// a=10
	// b=20
	// c=30
}
