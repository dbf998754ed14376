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

// Package combi expresses classic combinatorial graph problems as
// integer programs over the mip package: minimum vertex cover,
// minimum dominating set, maximum matching and graph coloring. The
// formulations are the textbook ones; all searching is left to the
// solver.
package combi

import (
	"errors"

	"github.com/tmaesen/gomo/mip"
)

// ErrInfeasible indicates the problem instance admits no feasible
// solution, e.g. coloring a graph with fewer colors than it needs.
var ErrInfeasible = errors.New("combi: no feasible solution")

// binary solution values come back as floats; everything above this
// threshold counts as selected
const selected = 0.5

// translateSolveError maps solver-level infeasibility onto the
// package's own sentinel and passes everything else through.
func translateSolveError(err error) error {
	if errors.Is(err, mip.ErrModelInfeasible) || errors.Is(err, mip.ErrModelInfeasibleOrUnbounded) {
		return ErrInfeasible
	}
	return err
}
