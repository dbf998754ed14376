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
	"math"

	"github.com/tmaesen/gomo/graph"
	"github.com/tmaesen/gomo/mip"
)

// DominatingSet is a set of vertices such that every vertex of the
// graph either belongs to it or has a neighbor in it.
type DominatingSet struct {
	// Vertices of the dominating set, in increasing order.
	Vertices []int
}

// Size returns the cardinality of the dominating set.
func (d *DominatingSet) Size() int {
	return len(d.Vertices)
}

// MinDominatingSet computes a minimum cardinality dominating set of g
// as an integer program: one binary indicator per vertex and, for
// every vertex v, the domination constraint
//
//	x_v + sum over neighbors u of v of x_u >= 1
//
// minimizing the indicator sum.
func MinDominatingSet(g *graph.Graph, opts ...mip.Option) (*DominatingSet, error) {
	n := g.Order()

	model, err := mip.NewModel("dominating set", mip.Minimize, opts...)
	if err != nil {
		return nil, err
	}

	vars := make([]*mip.Variable, n)
	for v := 0; v < n; v++ {
		if vars[v], err = model.AddDefinedVariable(fmt.Sprintf("x%d", v), mip.BinaryVariable, 1, 0, 1); err != nil {
			return nil, err
		}
	}

	for v := 0; v < n; v++ {
		closed := []*mip.Variable{vars[v]}
		coefs := []float64{1}
		for _, u := range g.Neighbors(v) {
			closed = append(closed, vars[u])
			coefs = append(coefs, 1)
		}
		if err = model.AddConstraint(1, math.Inf(1), closed, coefs); err != nil {
			return nil, err
		}
	}

	res, err := model.Solve()
	if err != nil {
		return nil, translateSolveError(err)
	}

	dom := new(DominatingSet)
	for v := 0; v < n; v++ {
		if res.Value(vars[v]) > selected {
			dom.Vertices = append(dom.Vertices, v)
		}
	}
	return dom, nil
}
