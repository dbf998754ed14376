// Coloring the 10-vertex Petersen graph: k-colorability as an integer
// program and as a SAT instance, plus the chromatic number.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/tmaesen/gomo/combi"
	"github.com/tmaesen/gomo/graph"
)

var k int

func init() {
	flag.IntVar(&k, "k", 3, "Number of colors to try.")
}

func main() {
	flag.Parse()

	// outer 5-cycle 0..4, inner pentagram 5..9, five spokes
	g, err := graph.New([][]int{
		{0, 1, 0, 0, 1, 1, 0, 0, 0, 0},
		{1, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		{0, 1, 0, 1, 0, 0, 0, 1, 0, 0},
		{0, 0, 1, 0, 1, 0, 0, 0, 1, 0},
		{1, 0, 0, 1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 1, 1, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 1, 1},
		{0, 0, 1, 0, 0, 1, 0, 0, 0, 1},
		{0, 0, 0, 1, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 1, 1, 0, 0},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("graph on %d vertices, %d edges:\n%s\n", g.Order(), g.Size(), g)

	coloring, err := combi.ColorGraph(g, k)
	switch {
	case errors.Is(err, combi.ErrInfeasible):
		fmt.Printf("the graph is not %d-colorable\n", k)
	case err != nil:
		log.Fatal(err)
	default:
		fmt.Printf("ILP %d-coloring: %v\n", k, coloring.Colors)
	}

	satColoring, err := combi.ColorGraphSAT(g, k)
	switch {
	case errors.Is(err, combi.ErrInfeasible):
		fmt.Printf("SAT agrees: not %d-colorable\n", k)
	case err != nil:
		log.Fatal(err)
	default:
		fmt.Printf("SAT %d-coloring: %v\n", k, satColoring.Colors)
	}

	chrom, err := combi.ChromaticNumber(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("chromatic number: %d, witness %v\n", chrom.K, chrom.Colors)
}
