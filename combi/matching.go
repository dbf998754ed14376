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

// Matching is a set of pairwise non-adjacent edges.
type Matching struct {
	// Edges of the matching, in the order the graph reports them.
	Edges []graph.Edge
}

// Size returns the cardinality of the matching.
func (m *Matching) Size() int {
	return len(m.Edges)
}

// MaxMatching computes a maximum cardinality matching of g as an
// integer program: one binary indicator per edge and, for every
// vertex, a degree constraint limiting its incident selected edges to
// at most one, maximizing the indicator sum.
func MaxMatching(g *graph.Graph, opts ...mip.Option) (*Matching, error) {
	edges := g.Edges()

	model, err := mip.NewModel("maximum matching", mip.Maximize, opts...)
	if err != nil {
		return nil, err
	}

	vars := make([]*mip.Variable, len(edges))
	incident := make([][]*mip.Variable, g.Order())
	for i, e := range edges {
		if vars[i], err = model.AddDefinedVariable(fmt.Sprintf("y%d_%d", e.U, e.V), mip.BinaryVariable, 1, 0, 1); err != nil {
			return nil, err
		}
		incident[e.U] = append(incident[e.U], vars[i])
		incident[e.V] = append(incident[e.V], vars[i])
	}

	for v := 0; v < g.Order(); v++ {
		if len(incident[v]) == 0 {
			continue
		}
		coefs := make([]float64, len(incident[v]))
		for i := range coefs {
			coefs[i] = 1
		}
		if err = model.AddConstraint(math.Inf(-1), 1, incident[v], coefs); err != nil {
			return nil, err
		}
	}

	res, err := model.Solve()
	if err != nil {
		return nil, translateSolveError(err)
	}

	matching := new(Matching)
	for i, e := range edges {
		if res.Value(vars[i]) > selected {
			matching.Edges = append(matching.Edges, e)
		}
	}
	return matching, nil
}
