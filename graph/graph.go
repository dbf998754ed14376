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

// Package graph provides small undirected simple graphs represented as
// dense 0/1 adjacency matrices, the input format of every worked
// example in this repository. Graphs are immutable after construction.
package graph

import (
	"errors"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for adjacency matrix validation.
var (
	// ErrNotSquare indicates the adjacency rows do not form a square matrix.
	ErrNotSquare = errors.New("graph: adjacency matrix is not square")

	// ErrNotSymmetric indicates entries (i,j) and (j,i) disagree.
	ErrNotSymmetric = errors.New("graph: adjacency matrix is not symmetric")

	// ErrSelfLoop indicates a nonzero diagonal entry.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrBadEntry indicates an adjacency entry other than 0 or 1.
	ErrBadEntry = errors.New("graph: adjacency entries must be 0 or 1")
)

// Edge is an undirected edge between vertices U and V, with U < V.
type Edge struct {
	U, V int
}

// Graph is an undirected simple graph on vertices 0..n-1.
type Graph struct {
	n   int
	adj *mat.SymDense
}

// New constructs a Graph from a dense 0/1 adjacency matrix given as a
// slice of rows. The matrix must be square and symmetric with a zero
// diagonal.
func New(adj [][]int) (*Graph, error) {
	n := len(adj)
	for _, row := range adj {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}

	m := mat.NewSymDense(max(n, 1), nil)
	for i, row := range adj {
		for j, a := range row {
			switch {
			case a != 0 && a != 1:
				return nil, ErrBadEntry
			case i == j && a != 0:
				return nil, ErrSelfLoop
			case a != adj[j][i]:
				return nil, ErrNotSymmetric
			}
			if i <= j {
				m.SetSym(i, j, float64(a))
			}
		}
	}

	return &Graph{n: n, adj: m}, nil
}

// fromEdges builds a graph on n vertices from an edge list.
// It is only used by the fixture constructors, whose input is trusted.
func fromEdges(n int, edges [][2]int) *Graph {
	m := mat.NewSymDense(max(n, 1), nil)
	for _, e := range edges {
		m.SetSym(e[0], e[1], 1)
	}
	return &Graph{n: n, adj: m}
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return g.n
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	return len(g.Edges())
}

// HasEdge reports whether vertices u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	return u != v && g.adj.At(u, v) != 0
}

// Degree returns the number of neighbors of vertex v.
func (g *Graph) Degree(v int) int {
	deg := 0
	for u := 0; u < g.n; u++ {
		if g.adj.At(v, u) != 0 {
			deg++
		}
	}
	return deg
}

// Neighbors returns the vertices adjacent to v, in increasing order.
func (g *Graph) Neighbors(v int) []int {
	var ns []int
	for u := 0; u < g.n; u++ {
		if g.adj.At(v, u) != 0 {
			ns = append(ns, u)
		}
	}
	return ns
}

// Edges returns all edges with U < V, ordered lexicographically.
func (g *Graph) Edges() []Edge {
	var es []Edge
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if g.adj.At(u, v) != 0 {
				es = append(es, Edge{U: u, V: v})
			}
		}
	}
	return es
}

// Adjacency returns a copy of the graph's adjacency matrix.
func (g *Graph) Adjacency() *mat.SymDense {
	m := mat.NewSymDense(max(g.n, 1), nil)
	m.CopySym(g.adj)
	return m
}

// String renders the adjacency matrix as rows of 0s and 1s.
func (g *Graph) String() string {
	s := new(strings.Builder)
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if j > 0 {
				s.WriteByte(' ')
			}
			if g.adj.At(i, j) != 0 {
				s.WriteByte('1')
			} else {
				s.WriteByte('0')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
