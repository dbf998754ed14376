/*
Copyright © 2026 Tomas Maesen <tomas@maesen.dev>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/
package combi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaesen/gomo/graph"
)

const delta = 0.0000001 // acceptable numerical deviation for test results

/* solution validity helpers */

func isCover(g *graph.Graph, vertices []int) bool {
	in := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		in[v] = true
	}
	for _, e := range g.Edges() {
		if !in[e.U] && !in[e.V] {
			return false
		}
	}
	return true
}

func isDominating(g *graph.Graph, vertices []int) bool {
	dominated := make([]bool, g.Order())
	for _, v := range vertices {
		dominated[v] = true
		for _, u := range g.Neighbors(v) {
			dominated[u] = true
		}
	}
	for _, d := range dominated {
		if !d {
			return false
		}
	}
	return true
}

func isMatching(g *graph.Graph, edges []graph.Edge) bool {
	usedVertex := make(map[int]bool)
	for _, e := range edges {
		if !g.HasEdge(e.U, e.V) || usedVertex[e.U] || usedVertex[e.V] {
			return false
		}
		usedVertex[e.U] = true
		usedVertex[e.V] = true
	}
	return true
}

func isProperColoring(g *graph.Graph, coloring *Coloring) bool {
	if len(coloring.Colors) != g.Order() {
		return false
	}
	for _, c := range coloring.Colors {
		if c < 0 || c >= coloring.K {
			return false
		}
	}
	for _, e := range g.Edges() {
		if coloring.Colors[e.U] == coloring.Colors[e.V] {
			return false
		}
	}
	return true
}

/* vertex cover */

func TestMinVertexCover(t *testing.T) {
	g := graph.CoverExample()

	cover, err := MinVertexCover(g)
	require.NoError(t, err)

	assert.Len(t, cover.Vertices, 3)
	assert.InDelta(t, 3.0, cover.Weight, delta)
	assert.True(t, isCover(g, cover.Vertices))
}

func TestMinWeightVertexCover(t *testing.T) {
	// make the triangle vertices expensive; the optimum must still pick
	// two of them, plus the cheap hub
	g := graph.CoverExample()
	weights := []float64{5, 1, 1, 1, 10, 10}

	cover, err := MinWeightVertexCover(g, weights)
	require.NoError(t, err)

	assert.True(t, isCover(g, cover.Vertices))
	assert.InDelta(t, 3.0, cover.Weight, delta) // {1, 2, 3}

	_, err = MinWeightVertexCover(g, []float64{1})
	assert.Error(t, err)
}

func TestFractionalVertexCoverGap(t *testing.T) {
	// the odd cycle C5 has fractional cover 5/2 but integer cover 3
	g := graph.Cycle(5)

	obj, values, err := FractionalVertexCover(g)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, obj, delta)
	for _, x := range values {
		assert.InDelta(t, 0.5, x, delta)
	}

	cover, err := MinVertexCover(g)
	require.NoError(t, err)
	assert.Len(t, cover.Vertices, 3)
}

func TestMinVertexCoverEmptyGraph(t *testing.T) {
	g, err := graph.New(nil)
	require.NoError(t, err)

	cover, err := MinVertexCover(g)
	require.NoError(t, err)
	assert.Empty(t, cover.Vertices)
	assert.Equal(t, 0.0, cover.Weight)
}

/* dominating set */

func TestMinDominatingSet(t *testing.T) {
	g := graph.DominationExample()

	dom, err := MinDominatingSet(g)
	require.NoError(t, err)

	assert.Equal(t, 3, dom.Size())
	assert.True(t, isDominating(g, dom.Vertices))
	// the three star centers are the unique optimum
	assert.Equal(t, []int{0, 4, 8}, dom.Vertices)
}

func TestMinDominatingSetCube(t *testing.T) {
	g := graph.Cube()

	dom, err := MinDominatingSet(g)
	require.NoError(t, err)

	assert.Equal(t, 2, dom.Size())
	assert.True(t, isDominating(g, dom.Vertices))
}

/* matching */

func TestMaxMatching(t *testing.T) {
	g := graph.Cube()

	matching, err := MaxMatching(g)
	require.NoError(t, err)

	assert.Equal(t, 4, matching.Size(), "the cube graph has a perfect matching")
	assert.True(t, isMatching(g, matching.Edges))
}

func TestMaxMatchingOddCycle(t *testing.T) {
	g := graph.Cycle(5)

	matching, err := MaxMatching(g)
	require.NoError(t, err)

	assert.Equal(t, 2, matching.Size())
	assert.True(t, isMatching(g, matching.Edges))
}

func TestMaxMatchingEmptyGraph(t *testing.T) {
	g, err := graph.New(nil)
	require.NoError(t, err)

	matching, err := MaxMatching(g)
	require.NoError(t, err)
	assert.Equal(t, 0, matching.Size())
}

/* coloring */

func TestColorGraphPetersen(t *testing.T) {
	g := graph.Petersen()

	coloring, err := ColorGraph(g, 3)
	require.NoError(t, err)
	assert.True(t, isProperColoring(g, coloring))

	_, err = ColorGraph(g, 2)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestChromaticNumber(t *testing.T) {
	pet := graph.Petersen()
	coloring, err := ChromaticNumber(pet)
	require.NoError(t, err)
	assert.Equal(t, 3, coloring.K)
	assert.True(t, isProperColoring(pet, coloring))

	k4 := graph.Complete(4)
	coloring, err = ChromaticNumber(k4)
	require.NoError(t, err)
	assert.Equal(t, 4, coloring.K)

	cube := graph.Cube()
	coloring, err = ChromaticNumber(cube)
	require.NoError(t, err)
	assert.Equal(t, 2, coloring.K, "the cube graph is bipartite")
}

func TestColorGraphSAT(t *testing.T) {
	g := graph.Petersen()

	coloring, err := ColorGraphSAT(g, 3)
	require.NoError(t, err)
	assert.True(t, isProperColoring(g, coloring))

	_, err = ColorGraphSAT(g, 2)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestColoringEdgeCases(t *testing.T) {
	g, err := graph.New(nil)
	require.NoError(t, err)

	coloring, err := ColorGraph(g, 0)
	require.NoError(t, err)
	assert.Empty(t, coloring.Colors)

	coloring, err = ChromaticNumber(g)
	require.NoError(t, err)
	assert.Equal(t, 0, coloring.K)

	single, err := graph.New([][]int{{0}})
	require.NoError(t, err)
	coloring, err = ChromaticNumber(single)
	require.NoError(t, err)
	assert.Equal(t, 1, coloring.K)

	_, err = ColorGraph(single, 0)
	assert.ErrorIs(t, err, ErrInfeasible)
	_, err = ColorGraphSAT(single, 0)
	assert.ErrorIs(t, err, ErrInfeasible)
}
