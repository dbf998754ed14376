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

// VertexCover is a set of vertices touching every edge of a graph.
type VertexCover struct {
	// Vertices of the cover, in increasing order.
	Vertices []int

	// Weight is the total weight of the cover (its cardinality for the
	// unweighted problem).
	Weight float64
}

// MinVertexCover computes a minimum cardinality vertex cover of g as
// an integer program: one binary indicator per vertex, one covering
// constraint x_u + x_v >= 1 per edge, minimizing the indicator sum.
func MinVertexCover(g *graph.Graph, opts ...mip.Option) (*VertexCover, error) {
	return MinWeightVertexCover(g, nil, opts...)
}

// MinWeightVertexCover computes a minimum weight vertex cover of g.
// A nil weights slice means unit weights; otherwise weights must hold
// one nonnegative weight per vertex.
func MinWeightVertexCover(g *graph.Graph, weights []float64, opts ...mip.Option) (*VertexCover, error) {
	n := g.Order()
	if weights != nil && len(weights) != n {
		return nil, fmt.Errorf("expected %d vertex weights, got %d", n, len(weights))
	}

	model, err := mip.NewModel("vertex cover", mip.Minimize, opts...)
	if err != nil {
		return nil, err
	}

	vars := make([]*mip.Variable, n)
	for v := 0; v < n; v++ {
		w := 1.0
		if weights != nil {
			w = weights[v]
		}
		if vars[v], err = model.AddDefinedVariable(fmt.Sprintf("x%d", v), mip.BinaryVariable, w, 0, 1); err != nil {
			return nil, err
		}
	}

	for _, e := range g.Edges() {
		err = model.AddConstraint(1, math.Inf(1), []*mip.Variable{vars[e.U], vars[e.V]}, []float64{1, 1})
		if err != nil {
			return nil, err
		}
	}

	res, err := model.Solve()
	if err != nil {
		return nil, translateSolveError(err)
	}

	cover := &VertexCover{Weight: res.ObjectiveValue()}
	for v := 0; v < n; v++ {
		if res.Value(vars[v]) > selected {
			cover.Vertices = append(cover.Vertices, v)
		}
	}
	return cover, nil
}

// FractionalVertexCover solves the linear relaxation of the vertex
// cover program and returns its objective together with the per-vertex
// fractional values. For odd cycles the relaxation assigns 1/2
// everywhere, illustrating the integrality gap of the formulation.
func FractionalVertexCover(g *graph.Graph, opts ...mip.Option) (float64, []float64, error) {
	n := g.Order()

	model, err := mip.NewModel("fractional vertex cover", mip.Minimize, opts...)
	if err != nil {
		return 0, nil, err
	}

	vars := make([]*mip.Variable, n)
	for v := 0; v < n; v++ {
		if vars[v], err = model.AddDefinedVariable(fmt.Sprintf("x%d", v), mip.BinaryVariable, 1, 0, 1); err != nil {
			return 0, nil, err
		}
	}
	for _, e := range g.Edges() {
		err = model.AddConstraint(1, math.Inf(1), []*mip.Variable{vars[e.U], vars[e.V]}, []float64{1, 1})
		if err != nil {
			return 0, nil, err
		}
	}

	rel, err := model.Relax()
	if err != nil {
		return 0, nil, translateSolveError(err)
	}

	values := make([]float64, n)
	for v := 0; v < n; v++ {
		values[v] = rel.Value(vars[v])
	}
	return rel.ObjectiveValue(), values, nil
}
