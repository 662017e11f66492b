package core_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// ExampleGraph builds a three-node graph, links it, and inspects the result.
func ExampleGraph() {
	g := core.NewGraph()
	for _, city := range []string{"berlin", "kyiv", "lviv"} {
		_ = g.Set(city, nil)
	}
	_ = g.Connect("kyiv", "lviv", 540)
	_ = g.Connect("lviv", "berlin", 890)

	ok, _ := g.Connected("kyiv", "lviv")
	fmt.Println("kyiv→lviv:", ok)
	ok, _ = g.Connected("lviv", "kyiv")
	fmt.Println("lviv→kyiv:", ok)

	_ = g.Delete("lviv")
	fmt.Println("nodes after delete:", g.Names())
	fmt.Println("edges after delete:", g.EdgeCount())
	// Output:
	// kyiv→lviv: true
	// lviv→kyiv: false
	// nodes after delete: [berlin kyiv]
	// edges after delete: 0
}
