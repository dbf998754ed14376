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

// Coloring assigns one of K colors to every vertex such that no edge
// is monochromatic.
type Coloring struct {
	// K is the number of colors the assignment may use.
	K int

	// Colors holds one color in [0,K) per vertex.
	Colors []int
}

// ColorGraph decides whether g is k-colorable and returns a proper
// coloring if so. The formulation uses one binary indicator per
// (vertex, color) pair: every vertex picks exactly one color and both
// endpoints of an edge may use a color at most once between them.
// A non-colorable instance is reported as ErrInfeasible.
func ColorGraph(g *graph.Graph, k int, opts ...mip.Option) (*Coloring, error) {
	n := g.Order()
	if n == 0 {
		return &Coloring{K: k}, nil
	}
	if k <= 0 {
		return nil, ErrInfeasible
	}

	model, err := mip.NewModel(fmt.Sprintf("%d-coloring", k), mip.Minimize, opts...)
	if err != nil {
		return nil, err
	}

	vars, err := addColorVariables(model, n, k)
	if err != nil {
		return nil, err
	}
	if err = addColoringConstraints(model, g, vars, k); err != nil {
		return nil, err
	}

	res, err := model.Solve()
	if err != nil {
		return nil, translateSolveError(err)
	}

	return &Coloring{K: k, Colors: extractColors(res, vars, n, k)}, nil
}

// ChromaticNumber computes the chromatic number of g together with a
// witness coloring. On top of the k-coloring constraints (with the
// Brooks bound k = maxdegree+1) it uses one indicator per color that
// is forced on whenever the color is used anywhere, minimizes the
// number of colors switched on, and breaks the color permutation
// symmetry by ordering the indicators.
func ChromaticNumber(g *graph.Graph, opts ...mip.Option) (*Coloring, error) {
	n := g.Order()
	if n == 0 {
		return &Coloring{}, nil
	}

	k := 1
	for v := 0; v < n; v++ {
		if d := g.Degree(v); d+1 > k {
			k = d + 1
		}
	}

	model, err := mip.NewModel("chromatic number", mip.Minimize, opts...)
	if err != nil {
		return nil, err
	}

	vars, err := addColorVariables(model, n, k)
	if err != nil {
		return nil, err
	}
	if err = addColoringConstraints(model, g, vars, k); err != nil {
		return nil, err
	}

	used := make([]*mip.Variable, k)
	for c := 0; c < k; c++ {
		if used[c], err = model.AddDefinedVariable(fmt.Sprintf("y%d", c), mip.BinaryVariable, 1, 0, 1); err != nil {
			return nil, err
		}
	}
	for v := 0; v < n; v++ {
		for c := 0; c < k; c++ {
			// x[v][c] <= y[c]
			err = model.AddConstraint(math.Inf(-1), 0, []*mip.Variable{vars[v][c], used[c]}, []float64{1, -1})
			if err != nil {
				return nil, err
			}
		}
	}
	for c := 0; c+1 < k; c++ {
		// y[c] >= y[c+1] rules out permuted copies of the same coloring
		err = model.AddConstraint(0, math.Inf(1), []*mip.Variable{used[c], used[c+1]}, []float64{1, -1})
		if err != nil {
			return nil, err
		}
	}

	res, err := model.Solve()
	if err != nil {
		return nil, translateSolveError(err)
	}

	return &Coloring{
		K:      int(math.Round(res.ObjectiveValue())),
		Colors: extractColors(res, vars, n, k),
	}, nil
}

// addColorVariables declares the n*k binary (vertex, color) indicators
// with zero objective coefficient.
func addColorVariables(model *mip.Model, n, k int) ([][]*mip.Variable, error) {
	vars := make([][]*mip.Variable, n)
	for v := 0; v < n; v++ {
		vars[v] = make([]*mip.Variable, k)
		for c := 0; c < k; c++ {
			x, err := model.AddDefinedVariable(fmt.Sprintf("x%d_%d", v, c), mip.BinaryVariable, 0, 0, 1)
			if err != nil {
				return nil, err
			}
			vars[v][c] = x
		}
	}
	return vars, nil
}

// addColoringConstraints states the proper-coloring conditions: every
// vertex has exactly one color and adjacent vertices never share one.
func addColoringConstraints(model *mip.Model, g *graph.Graph, vars [][]*mip.Variable, k int) error {
	ones := make([]float64, k)
	for i := range ones {
		ones[i] = 1
	}
	for v := 0; v < g.Order(); v++ {
		if err := model.AddConstraint(1, 1, vars[v], ones); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		for c := 0; c < k; c++ {
			err := model.AddConstraint(math.Inf(-1), 1, []*mip.Variable{vars[e.U][c], vars[e.V][c]}, []float64{1, 1})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// extractColors reads the selected color of every vertex out of a
// solved model.
func extractColors(res *mip.SolveResult, vars [][]*mip.Variable, n, k int) []int {
	colors := make([]int, n)
	for v := 0; v < n; v++ {
		for c := 0; c < k; c++ {
			if res.Value(vars[v][c]) > selected {
				colors[v] = c
				break
			}
		}
	}
	return colors
}
