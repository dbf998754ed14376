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
	"fmt"

	"github.com/crillab/gophersat/bf"

	"github.com/tmaesen/gomo/graph"
)

// ColorGraphSAT decides k-colorability of g with a SAT solver instead
// of an integer program, as a second worked reduction of the same
// problem. The encoding is the usual one: a propositional variable
// per (vertex, color) pair, at-least-one and pairwise at-most-one
// clauses per vertex, and a conflict clause per edge and color.
// A non-colorable instance is reported as ErrInfeasible.
func ColorGraphSAT(g *graph.Graph, k int) (*Coloring, error) {
	n := g.Order()
	if n == 0 {
		return &Coloring{K: k}, nil
	}
	if k <= 0 {
		return nil, ErrInfeasible
	}

	atom := func(v, c int) string {
		return fmt.Sprintf("x%d_%d", v, c)
	}

	var clauses []bf.Formula
	for v := 0; v < n; v++ {
		some := make([]bf.Formula, k)
		for c := 0; c < k; c++ {
			some[c] = bf.Var(atom(v, c))
		}
		clauses = append(clauses, bf.Or(some...))

		for c := 0; c < k; c++ {
			for d := c + 1; d < k; d++ {
				clauses = append(clauses, bf.Or(bf.Not(bf.Var(atom(v, c))), bf.Not(bf.Var(atom(v, d)))))
			}
		}
	}
	for _, e := range g.Edges() {
		for c := 0; c < k; c++ {
			clauses = append(clauses, bf.Or(bf.Not(bf.Var(atom(e.U, c))), bf.Not(bf.Var(atom(e.V, c)))))
		}
	}

	model := bf.Solve(bf.And(clauses...))
	if model == nil {
		return nil, ErrInfeasible
	}

	coloring := &Coloring{K: k, Colors: make([]int, n)}
	for v := 0; v < n; v++ {
		for c := 0; c < k; c++ {
			if model[atom(v, c)] {
				coloring.Colors[v] = c
				break
			}
		}
	}
	return coloring, nil
}
