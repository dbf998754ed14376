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

package mip

import "github.com/lanl/highs"

/* Types */

type SolveResult struct {
	model     *Model
	status    SolveStatus
	objective float64
	primal    []float64
}

type SolveStatus int

const (
	SolutionOptimal SolveStatus = iota
	SolutionSuboptimal
)

// SolveError wraps the HiGHS model status of a solve that produced no
// usable solution.
type SolveError highs.ModelStatus

const (
	ErrModelInfeasible            = SolveError(highs.Infeasible)
	ErrModelUnbounded             = SolveError(highs.Unbounded)
	ErrModelInfeasibleOrUnbounded = SolveError(highs.UnboundedOrInfeasible)
	ErrTimeout                    = SolveError(highs.TimeLimit)
)

// Error returns a string representation of the given error value.
func (e SolveError) Error() string {
	switch e {
	case ErrModelInfeasible:
		return "model is infeasible"
	case ErrModelUnbounded:
		return "model is unbounded"
	case ErrModelInfeasibleOrUnbounded:
		return "model is infeasible or unbounded"
	case ErrTimeout:
		return "timeout occurred before any integer solution could be found"
	default:
		return "solver failure: " + highs.ModelStatus(e).String()
	}
}

// Status reports if the solution is optimal (SolutionOptimal) or
// not (SolutionSuboptimal).
func (res *SolveResult) Status() SolveStatus {
	return res.status
}

// Value returns the computed value of the given variable for this
// optimization result. This is a shorthand for PrimalValue.
func (res *SolveResult) Value(v *Variable) float64 {
	return res.PrimalValue(v)
}

// PrimalValue returns the computed value of the given variable for
// this optimization result.
func (res *SolveResult) PrimalValue(v *Variable) float64 {
	if v.model != res.model || v.index >= len(res.primal) {
		return 0
	}
	return res.primal[v.index]
}

// ObjectiveValue returns the value of the objective function for this
// optimization result. This value is only optimal if Status also
// returns SolutionOptimal.
func (res *SolveResult) ObjectiveValue() float64 {
	return res.objective
}
