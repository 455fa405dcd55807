package order_test

import (
	"fmt"

	"github.com/katalvlaran/toposort/matrix"
	"github.com/katalvlaran/toposort/order"
)

// ExampleValid checks two candidate orderings of a three-vertex chain
// 0 → 1 → 2: the forward order holds, the reversed one breaks both edges.
func ExampleValid() {
	g := matrix.Adjacency[int]{
		{0, 1, 0}, // 0 → 1
		{0, 0, 1}, // 1 → 2
		{0, 0, 0}, // 2
	}

	ok, _ := order.Valid(g, []int{0, 1, 2})
	fmt.Println("forward:", ok)

	ok, _ = order.Valid(g, []int{2, 1, 0})
	fmt.Println("reversed:", ok)

	// Output:
	// forward: true
	// reversed: false
}
