package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dijkstra"
)

// ExampleTraversal routes across a small weighted network and prints each
// node the moment its distance is final, then the cheapest route to the
// far end.
func ExampleTraversal() {
	g := core.NewGraph()
	for _, name := range []string{"gw", "edge1", "edge2", "db"} {
		_ = g.Set(name, nil)
	}
	_ = g.Connect("gw", "edge1", 2)
	_ = g.Connect("gw", "edge2", 7)
	_ = g.Connect("edge1", "edge2", 3)
	_ = g.Connect("edge2", "db", 1)

	tr, err := dijkstra.New(g, "gw")
	if err != nil {
		fmt.Println("routing failed:", err)
		return
	}
	for {
		s, ok := tr.Next()
		if !ok {
			break
		}
		fmt.Printf("%s at cost %g\n", s.Node.Name(), s.Dist)
	}

	path, _ := tr.PathTo("db")
	fmt.Println("route:", path)

	// Output:
	// gw at cost 0
	// edge1 at cost 2
	// edge2 at cost 5
	// db at cost 6
	// route: [gw edge1 edge2 db]
}
