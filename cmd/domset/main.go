// Minimum dominating set of a fixed 11-vertex graph, as an integer
// program.
package main

import (
	"fmt"
	"log"

	"github.com/tmaesen/gomo/combi"
	"github.com/tmaesen/gomo/graph"
)

func main() {
	// three stars whose centers 0, 4 and 8 form a path
	g, err := graph.New([][]int{
		{0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("graph on %d vertices, %d edges:\n%s\n", g.Order(), g.Size(), g)

	dom, err := combi.MinDominatingSet(g)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("minimum dominating set: %v (size %d)\n", dom.Vertices, dom.Size())
	for _, v := range dom.Vertices {
		fmt.Printf("  vertex %d dominates itself and %v\n", v, g.Neighbors(v))
	}
}
