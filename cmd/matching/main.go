// Maximum matching of the 8-vertex cube graph, as an integer program.
package main

import (
	"fmt"
	"log"

	"github.com/tmaesen/gomo/combi"
	"github.com/tmaesen/gomo/graph"
)

func main() {
	// the 3-dimensional hypercube: vertices are adjacent when their
	// binary labels differ in exactly one bit
	g, err := graph.New([][]int{
		{0, 1, 1, 0, 1, 0, 0, 0},
		{1, 0, 0, 1, 0, 1, 0, 0},
		{1, 0, 0, 1, 0, 0, 1, 0},
		{0, 1, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 1, 0},
		{0, 1, 0, 0, 1, 0, 0, 1},
		{0, 0, 1, 0, 1, 0, 0, 1},
		{0, 0, 0, 1, 0, 1, 1, 0},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("graph on %d vertices, %d edges:\n%s\n", g.Order(), g.Size(), g)

	matching, err := combi.MaxMatching(g)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("maximum matching (cardinality %d):\n", matching.Size())
	for _, e := range matching.Edges {
		fmt.Printf("  %d -- %d\n", e.U, e.V)
	}
	if 2*matching.Size() == g.Order() {
		fmt.Println("the matching is perfect")
	}
}
