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

/*
Package mip provides declarative modelling of linear and mixed-integer
programs, solved by the external HiGHS engine.

As an example of the API, the model of the following problem:

    Maximize:
      z = x1 + 2 x2 - 3 x3
    With:
      0 <= x1 <= 40
      5 <= x3 <= 11
    Subject to:
      0 <= - x1 + x2 + 5.3 x3 <= 10
      -inf <= 2 x1 - 5 x2 + 3 x3 <= 20
      x2 - 8 x3 = 0

can be expressed like this:

	package main

	import (
		"fmt"
		"math"

		"github.com/tmaesen/gomo/mip"
	)

	func main() {
		model, _ := mip.NewModel("some model", mip.Maximize)
		x1, _ := model.AddVariable("x1")
		x1.SetBounds(0, 40)
		x2, _ := model.AddVariable("x2")
		x2.SetObjectiveCoefficient(2)
		// alternatively, all information pertaining can be given at once:
		x3, _ := model.AddDefinedVariable("x3", mip.ContinuousVariable, 3, 5, 11)

		model.AddConstraint(0, 10, []*mip.Variable{x1, x2, x3}, []float64{-1, 1, 5.3})
		model.AddConstraint(math.Inf(-1), 20, []*mip.Variable{x1, x2, x3}, []float64{2, -5, 3})
		model.AddConstraint(0, 0, []*mip.Variable{x2, x3}, []float64{1, -8})

		result, _ := model.Solve() // you should check for errors

		fmt.Printf("solution optimal? %t\n", result.Status() == mip.SolutionOptimal)
		fmt.Printf("z = %f\n", result.ObjectiveValue())
		fmt.Printf("x1 = %f\n", result.Value(x1))
	}

The actual search is delegated entirely to HiGHS through the
github.com/lanl/highs binding; this package only assembles the column and
row data the engine expects and maps its statuses back to Go errors.
*/
package mip

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/lanl/highs"
)

/* Types */

type Model struct {
	mu     sync.RWMutex
	name   string
	dir    Direction
	vars   []*Variable
	rows   []row
	logger Logger
}

// row is a single two-sided constraint: lower <= sum(coefs[i]*x[cols[i]]) <= upper.
type row struct {
	lower, upper float64
	cols         []int
	coefs        []float64
}

type Direction int

const (
	Minimize Direction = iota
	Maximize
)

/* Model related functions */

// NewModel instantiates a new optimization model, providing a name
// (purely informational) and an optimization direction (either
// Minimize or Maximize).
func NewModel(name string, dir Direction, opts ...Option) (*Model, error) {
	model := &Model{
		name:   name,
		dir:    dir,
		logger: noopLogger{},
	}

	for _, opt := range opts {
		if err := opt(model); err != nil {
			return nil, fmt.Errorf("applying model option: %w", err)
		}
	}

	return model, nil
}

// Clone returns a copy of the model. The copy has its own variables;
// variables of the original model must not be mixed with it.
func (model *Model) Clone() *Model {
	model.mu.RLock()
	defer model.mu.RUnlock()

	newModel := &Model{
		name:   model.name,
		dir:    model.dir,
		logger: model.logger,
	}

	newModel.vars = make([]*Variable, len(model.vars))
	for i, v := range model.vars {
		nv := *v
		nv.model = newModel
		newModel.vars[i] = &nv
	}

	newModel.rows = make([]row, len(model.rows))
	for i, r := range model.rows {
		newModel.rows[i] = row{
			lower: r.lower,
			upper: r.upper,
			cols:  append([]int(nil), r.cols...),
			coefs: append([]float64(nil), r.coefs...),
		}
	}

	return newModel
}

// Name returns the name provided upon instantiation of a model.
func (model *Model) Name() string {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.name
}

// SetDirection changes the direction of the model's optimization.
func (model *Model) SetDirection(dir Direction) {
	model.mu.Lock()
	defer model.mu.Unlock()

	model.dir = dir
}

// Direction returns the model's current optimization direction.
func (model *Model) Direction() Direction {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.dir
}

/* Column-related functions */

func (model *Model) VariableCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return len(model.vars)
}

// Variables returns a new slice with the model's variables. Changes to
// the slice will not be reflected in the model.
func (model *Model) Variables() []*Variable {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return append([]*Variable(nil), model.vars...)
}

// AddVariable adds a variable to the model and returns a reference to
// it. A freshly instantiated variable has the default type of
// ContinuousVariable, no bounds and an objective coefficient of 1.
//
// A variable is bound to its model. Attempting to use a variable
// created in one model for fetching solutions from a different model
// results in undefined behaviour.
//
// Empty names will automatically be replaced by a unique name.
func (model *Model) AddVariable(name string) (*Variable, error) {
	return model.AddDefinedVariable(name, ContinuousVariable, 1, math.Inf(-1), math.Inf(1))
}

// AddBinaryVariable is a convenience function for adding a single
// named binary variable to the model, with a default coefficient of 1.
// Empty names will automatically be replaced by a unique name.
func (model *Model) AddBinaryVariable(name string) (*Variable, error) {
	return model.AddDefinedVariable(name, BinaryVariable, 1, 0, 1)
}

// AddIntegerVariable is a convenience function for adding a single
// named unbounded integer variable to the model, with a default
// objective coefficient of 1.
// Empty names will automatically be replaced by a unique name.
func (model *Model) AddIntegerVariable(name string) (*Variable, error) {
	return model.AddDefinedVariable(name, IntegerVariable, 1, math.Inf(-1), math.Inf(1))
}

// AddDefinedVariable adds a variable to the model with its attributes
// passed as arguments. If varType is BinaryVariable, the bounds are
// ignored and fixed at [0,1].
// Empty names will automatically be replaced by a unique name.
func (model *Model) AddDefinedVariable(name string, varType VariableType, coefficient, lowerBound, upperBound float64) (*Variable, error) {
	model.mu.Lock()
	defer model.mu.Unlock()

	v := &Variable{
		model: model,
		index: len(model.vars),
		vtype: varType,
		coef:  coefficient,
		lower: lowerBound,
		upper: upperBound,
	}

	if varType == BinaryVariable {
		v.lower, v.upper = 0, 1
	}

	if name == "" {
		name = fmt.Sprintf("V%d", v.index)
	}
	v.name = name

	model.vars = append(model.vars, v)

	return v, nil
}

// SetObjectiveFunction defines the objective function for the model as
// a slice of coefficients and a slice of its respective variables.
// E.g.: an objective function of the form 2x+3y is passed as:
//
//	SetObjectiveFunction([]float64{2,3}, []*Variable{x, y})
//
// Where x and y are the return values of one of the Add*Variable
// functions.
func (model *Model) SetObjectiveFunction(coefs []float64, vars []*Variable) error {
	if len(vars) != len(coefs) {
		return fmt.Errorf("inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}

	for i, v := range vars {
		v.SetObjectiveCoefficient(coefs[i])
	}
	return nil
}

/* Constraint-related functions */

// ConstraintCount returns the number of individual constraints in the
// model.
func (model *Model) ConstraintCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return len(model.rows)
}

// AddConstraint adds a constraint to the model as a lower and an upper
// bound, a slice of variables and a slice of their respective
// coefficients. Pass math.Inf(-1) or math.Inf(1) for one-sided
// constraints and equal bounds for an equality constraint.
func (model *Model) AddConstraint(lower, upper float64, vars []*Variable, coefs []float64) error {
	if len(vars) != len(coefs) {
		return fmt.Errorf("inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}
	if math.IsInf(lower, 0) && math.IsInf(upper, 0) {
		// unconstrained row; adding it would only slow the solver down
		return nil
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	r := row{
		lower: lower,
		upper: upper,
		cols:  make([]int, 0, len(vars)),
		coefs: make([]float64, 0, len(vars)),
	}
	for i, v := range vars {
		if v.model != model {
			return fmt.Errorf("variable %q belongs to a different model", v.name)
		}
		if coefs[i] == 0 {
			continue
		}
		r.cols = append(r.cols, v.index)
		r.coefs = append(r.coefs, coefs[i])
	}

	model.rows = append(model.rows, r)

	return nil
}

/* Solving */

// lower assembles the column and row data of the model in the form the
// HiGHS binding expects.
func (model *Model) lower() *highs.Model {
	hm := new(highs.Model)
	hm.Maximize = model.dir == Maximize

	n := len(model.vars)
	hm.ColCosts = make([]float64, n)
	hm.ColLower = make([]float64, n)
	hm.ColUpper = make([]float64, n)
	hm.VarTypes = make([]highs.VariableType, n)
	for i, v := range model.vars {
		hm.ColCosts[i] = v.coef
		hm.ColLower[i] = v.lower
		hm.ColUpper[i] = v.upper
		switch v.vtype {
		case IntegerVariable, BinaryVariable:
			hm.VarTypes[i] = highs.IntegerType
		default:
			hm.VarTypes[i] = highs.ContinuousType
		}
	}

	hm.RowLower = make([]float64, len(model.rows))
	hm.RowUpper = make([]float64, len(model.rows))
	for i, r := range model.rows {
		hm.RowLower[i] = r.lower
		hm.RowUpper[i] = r.upper
		for j, col := range r.cols {
			hm.ConstMatrix = append(hm.ConstMatrix, highs.Nonzero{
				Row: i,
				Col: col,
				Val: r.coefs[j],
			})
		}
	}

	return hm
}

// Solve attempts to find an optimal solution to the model.
// Information about the solution can be queried from the returned
// SolveResult value.
func (model *Model) Solve() (*SolveResult, error) {
	model.mu.Lock()
	defer model.mu.Unlock()

	if len(model.vars) == 0 {
		return &SolveResult{model: model, status: SolutionOptimal}, nil
	}

	model.logger.Print(fmt.Sprintf("solving %q: %d variables, %d constraints", model.name, len(model.vars), len(model.rows)))

	sol, err := model.lower().Solve()
	if err != nil {
		return nil, fmt.Errorf("invoking solver: %w", err)
	}

	switch sol.Status {
	case highs.Optimal:
		return &SolveResult{
			model:     model,
			status:    SolutionOptimal,
			objective: sol.Objective,
			primal:    sol.ColumnPrimal,
		}, nil
	case highs.TimeLimit, highs.IterationLimit:
		if len(sol.ColumnPrimal) > 0 {
			return &SolveResult{
				model:     model,
				status:    SolutionSuboptimal,
				objective: sol.Objective,
				primal:    sol.ColumnPrimal,
			}, nil
		}
		return nil, SolveError(sol.Status)
	default:
		return nil, SolveError(sol.Status)
	}
}

// SolveWithContext wraps Solve() with a context. If the context is
// cancelled or times out before the solver finishes, the context error
// is returned. The underlying solve cannot be interrupted and is
// abandoned to run to completion in the background.
func (model *Model) SolveWithContext(ctx context.Context) (*SolveResult, error) {
	type outcome struct {
		res *SolveResult
		err error
	}

	ch := make(chan outcome, 1)
	go func() {
		res, err := model.Solve()
		ch <- outcome{res, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-ch:
		return out.res, out.err
	}
}
