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

import "math"

// Variable is a single decision variable of a Model. Values are always
// retrieved through a SolveResult of the owning model.
type Variable struct {
	model *Model
	index int
	name  string
	vtype VariableType
	coef  float64
	lower float64
	upper float64
}

type VariableType int

const (
	ContinuousVariable VariableType = iota
	IntegerVariable
	BinaryVariable
)

/* Variable-related functions (model variables, as opposed to Go variables) */

// Name returns the name given to the variable on creation.
func (v *Variable) Name() string {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.name
}

// Type returns the variable's type.
func (v *Variable) Type() VariableType {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.vtype
}

// SetType changes the variable's type. Changing a variable to
// BinaryVariable also fixes its bounds to [0,1].
func (v *Variable) SetType(vtype VariableType) {
	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	v.vtype = vtype
	if vtype == BinaryVariable {
		v.lower, v.upper = 0, 1
	}
}

// SetBounds sets the boundaries for the given variable.
// To leave a side unbounded, pass math.Inf(1) or math.Inf(-1). The
// sign of the infinity is ignored, as the lower and upper bounds are
// always assumed to be the negative and positive infinities,
// respectively.
func (v *Variable) SetBounds(lower, upper float64) {
	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	if math.IsInf(lower, 0) {
		lower = math.Inf(-1)
	}
	if math.IsInf(upper, 0) {
		upper = math.Inf(1)
	}
	v.lower, v.upper = lower, upper
}

// Bounds returns the variable's lower and upper bounds.
func (v *Variable) Bounds() (lower, upper float64) {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.lower, v.upper
}

// SetObjectiveCoefficient sets the variable's coefficient in the
// model's objective function.
func (v *Variable) SetObjectiveCoefficient(coef float64) {
	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	v.coef = coef
}

// Coefficient returns the variable's coefficient in the model's
// objective function.
func (v *Variable) Coefficient() float64 {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.coef
}
