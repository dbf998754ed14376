// Minimum vertex cover of a fixed 6-vertex graph, as an integer
// program, together with its linear relaxation to show the
// integrality gap (or absence thereof).
package main

import (
	"fmt"
	"log"

	"github.com/tmaesen/gomo/combi"
	"github.com/tmaesen/gomo/graph"
)

func main() {
	// triangle 0-1-2 joined through vertex 3 to two pendant vertices
	g, err := graph.New([][]int{
		{0, 1, 1, 0, 0, 0},
		{1, 0, 1, 0, 0, 0},
		{1, 1, 0, 1, 0, 0},
		{0, 0, 1, 0, 1, 1},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0, 0},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("graph on %d vertices, %d edges:\n%s\n", g.Order(), g.Size(), g)

	cover, err := combi.MinVertexCover(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("minimum vertex cover: %v (size %d)\n", cover.Vertices, len(cover.Vertices))

	obj, values, err := combi.FractionalVertexCover(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("fractional relaxation: objective %.2f, values %.2f\n", obj, values)
}
