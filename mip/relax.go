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

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// stdCol describes how one model variable maps onto the standard-form
// column space: x = shift + sign*x'  (or x = x⁺ - x⁻ for free variables).
type stdCol struct {
	col   int     // first standard-form column of the variable
	neg   int     // column of x⁻ for free variables, -1 otherwise
	shift float64 // constant part of the substitution
	sign  float64 // +1 or -1
}

// Relax solves the linear relaxation of the model: integrality of
// integer and binary variables is dropped and the resulting LP is
// handed to gonum's simplex implementation. The model itself is not
// modified.
//
// The relaxation is useful to bound the integer optimum and to
// illustrate integrality gaps: for a minimization its objective is a
// lower bound on the integer objective.
func (model *Model) Relax() (*SolveResult, error) {
	model.mu.RLock()
	defer model.mu.RUnlock()

	if len(model.rows) == 0 {
		return nil, errors.New("relaxation of a model without constraints")
	}

	// Substitute every variable by a nonnegative standard-form column.
	cols := make([]stdCol, len(model.vars))
	nCols := 0
	type boundRow struct {
		col int
		rhs float64
	}
	var boundRows []boundRow
	for i, v := range model.vars {
		l, u := v.lower, v.upper
		switch {
		case !math.IsInf(l, -1):
			cols[i] = stdCol{col: nCols, neg: -1, shift: l, sign: 1}
			nCols++
			if !math.IsInf(u, 1) {
				boundRows = append(boundRows, boundRow{cols[i].col, u - l})
			}
		case !math.IsInf(u, 1):
			// only an upper bound: mirror the variable
			cols[i] = stdCol{col: nCols, neg: -1, shift: u, sign: -1}
			nCols++
		default:
			cols[i] = stdCol{col: nCols, neg: nCols + 1, shift: 0, sign: 1}
			nCols += 2
		}
	}

	// Every one-sided row gets a slack column; range rows become two
	// one-sided rows sharing their coefficients.
	type stdRow struct {
		coefs map[int]float64
		rhs   float64
	}
	var rows []stdRow

	expand := func(r row) (coefs map[int]float64, shift float64) {
		coefs = make(map[int]float64, len(r.cols)+1)
		for j, ci := range r.cols {
			c := cols[ci]
			coefs[c.col] += r.coefs[j] * c.sign
			if c.neg >= 0 {
				coefs[c.neg] -= r.coefs[j]
			}
			shift += r.coefs[j] * c.shift
		}
		return coefs, shift
	}

	addRow := func(coefs map[int]float64, slack float64, rhs float64) {
		r := stdRow{coefs: make(map[int]float64, len(coefs)+1), rhs: rhs}
		for c, v := range coefs {
			r.coefs[c] = v
		}
		if slack != 0 {
			r.coefs[nCols] = slack
			nCols++
		}
		rows = append(rows, r)
	}

	for _, r := range model.rows {
		coefs, shift := expand(r)
		lo, up := r.lower-shift, r.upper-shift
		switch {
		case lo == up:
			addRow(coefs, 0, up)
		case math.IsInf(lo, -1):
			addRow(coefs, 1, up)
		case math.IsInf(up, 1):
			addRow(coefs, -1, lo)
		default:
			addRow(coefs, 1, up)
			addRow(coefs, -1, lo)
		}
	}
	for _, br := range boundRows {
		addRow(map[int]float64{br.col: 1}, 1, br.rhs)
	}

	// Assemble the dense standard form: minimize c·x s.t. Ax = b, x >= 0.
	c := make([]float64, nCols)
	offset := 0.0
	objSign := 1.0
	if model.dir == Maximize {
		objSign = -1
	}
	for i, v := range model.vars {
		sc := cols[i]
		c[sc.col] += objSign * v.coef * sc.sign
		if sc.neg >= 0 {
			c[sc.neg] -= objSign * v.coef
		}
		offset += v.coef * sc.shift
	}

	a := mat.NewDense(len(rows), nCols, nil)
	b := make([]float64, len(rows))
	for i, r := range rows {
		b[i] = r.rhs
		for col, val := range r.coefs {
			a.Set(i, col, val)
		}
	}

	opt, x, err := lp.Simplex(c, a, b, 0, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return nil, ErrModelInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return nil, ErrModelUnbounded
	case err != nil:
		return nil, fmt.Errorf("solving relaxation: %w", err)
	}

	primal := make([]float64, len(model.vars))
	for i := range model.vars {
		sc := cols[i]
		val := sc.shift + sc.sign*x[sc.col]
		if sc.neg >= 0 {
			val -= x[sc.neg]
		}
		primal[i] = val
	}

	return &SolveResult{
		model:     model,
		status:    SolutionOptimal,
		objective: objSign*opt + offset,
		primal:    primal,
	}, nil
}
