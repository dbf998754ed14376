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

package graph

// The fixture graphs below are the fixed inputs of the worked examples.
// Their optima are known by inspection and pinned down in the tests.

// CoverExample returns the 6-vertex graph of the vertex cover example:
// a triangle 0-1-2 joined through vertex 3 to the two pendant vertices
// 4 and 5. Its minimum vertex cover has size 3, e.g. {0, 2, 3}.
func CoverExample() *Graph {
	return fromEdges(6, [][2]int{
		{0, 1}, {0, 2}, {1, 2},
		{2, 3}, {3, 4}, {3, 5},
	})
}

// DominationExample returns the 11-vertex graph of the dominating set
// example: three stars whose centers 0, 4 and 8 form a path. Its
// minimum dominating set is {0, 4, 8}.
func DominationExample() *Graph {
	return fromEdges(11, [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{4, 5}, {4, 6}, {4, 7},
		{8, 9}, {8, 10},
		{0, 4}, {4, 8},
	})
}

// Cube returns the 3-dimensional hypercube graph Q3 on 8 vertices,
// used by the matching example. Vertices are adjacent when their
// binary labels differ in exactly one bit; the maximum matching is a
// perfect matching of cardinality 4.
func Cube() *Graph {
	var edges [][2]int
	for v := 0; v < 8; v++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if u := v ^ bit; v < u {
				edges = append(edges, [2]int{v, u})
			}
		}
	}
	return fromEdges(8, edges)
}

// Petersen returns the Petersen graph on 10 vertices, used by the
// coloring example: an outer 5-cycle 0..4, an inner pentagram 5..9 and
// five spokes. Its chromatic number is 3.
func Petersen() *Graph {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		edges = append(edges,
			[2]int{i, (i + 1) % 5},     // outer cycle
			[2]int{i, i + 5},           // spoke
			[2]int{i + 5, (i+2)%5 + 5}, // inner pentagram
		)
	}
	return fromEdges(10, dedupe(edges))
}

// Cycle returns the cycle graph on n >= 3 vertices.
func Cycle(n int) *Graph {
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		u, v := i, (i+1)%n
		if u > v {
			u, v = v, u
		}
		edges[i] = [2]int{u, v}
	}
	return fromEdges(n, edges)
}

// Complete returns the complete graph on n vertices.
func Complete(n int) *Graph {
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	return fromEdges(n, edges)
}

// dedupe drops duplicate undirected edges from an edge list.
func dedupe(edges [][2]int) [][2]int {
	seen := make(map[[2]int]bool, len(edges))
	out := edges[:0]
	for _, e := range edges {
		if e[0] > e[1] {
			e[0], e[1] = e[1], e[0]
		}
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}
