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
package logreg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const delta = 0.0000001 // acceptable numerical deviation for test results

func TestSyntheticDeterminism(t *testing.T) {
	a := Synthetic(50, 8, 3, 42)
	b := Synthetic(50, 8, 3, 42)

	assert.True(t, mat.Equal(a.X, b.X))
	assert.Equal(t, a.Y, b.Y)
	assert.Equal(t, a.TrueCoef, b.TrueCoef)

	c := Synthetic(50, 8, 3, 43)
	assert.False(t, mat.Equal(a.X, c.X))
}

func TestSyntheticShape(t *testing.T) {
	ds := Synthetic(30, 10, 4, 1)

	n, d := ds.X.Dims()
	assert.Equal(t, 30, n)
	assert.Equal(t, 10, d)
	assert.Len(t, ds.Y, 30)

	for _, y := range ds.Y {
		assert.True(t, y == 1 || y == -1)
	}

	assert.Equal(t, []float64{1, -1, 1, -1, 0, 0, 0, 0, 0, 0}, ds.TrueCoef)

	// more requested nonzeros than features saturates at d
	ds = Synthetic(5, 2, 10, 1)
	assert.Len(t, ds.TrueCoef, 2)
}

func TestFitValidation(t *testing.T) {
	x := mat.NewDense(2, 1, []float64{1, -1})

	_, err := Fit(x, []float64{1, -1}, -1)
	assert.Error(t, err)

	_, err = Fit(x, []float64{1}, 0)
	assert.Error(t, err)

	_, err = Fit(x, []float64{1, 0.5}, 0)
	assert.Error(t, err)

	_, err = Fit(x, []float64{1, -1}, 0, WithMaxIterations(-1))
	assert.Error(t, err)
	_, err = Fit(x, []float64{1, -1}, 0, WithCorrections(0))
	assert.Error(t, err)
	_, err = Fit(x, []float64{1, -1}, 0, WithTolerance(0))
	assert.Error(t, err)
}

func TestFitSeparable(t *testing.T) {
	// one feature, perfectly separated by its sign; a small penalty
	// keeps the optimum finite
	x := mat.NewDense(6, 1, []float64{-3, -2, -1, 1, 2, 3})
	y := []float64{-1, -1, -1, 1, 1, 1}

	res, err := Fit(x, y, 0.1)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Greater(t, res.Coef[0], 0.0)
	assert.InDelta(t, 1.0, res.Accuracy(x, y), delta)
	assert.Greater(t, res.Probability([]float64{2}), 0.5)
	assert.Less(t, res.Probability([]float64{-2}), 0.5)
}

func TestFitSparsity(t *testing.T) {
	ds := Synthetic(200, 20, 5, 7)

	loose, err := Fit(ds.X, ds.Y, 0.01)
	require.NoError(t, err)

	tight, err := Fit(ds.X, ds.Y, 50)
	require.NoError(t, err)

	assert.Less(t, tight.NumNonzero(1e-6), loose.NumNonzero(1e-6),
		"a heavier penalty must produce a sparser model")
	assert.LessOrEqual(t, tight.Objective, float64(200)*math.Ln2+delta,
		"the all-zero model bounds the optimum from above")
}

func TestFitGalleryInstance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	ds := Synthetic(2000, 100, 10, 2026)

	res, err := Fit(ds.X, ds.Y, 10)
	require.NoError(t, err)

	// lambda = 10 recovers a model concentrated on the true support
	nnz := res.NumNonzero(1e-6)
	assert.Greater(t, nnz, 0)
	assert.Less(t, nnz, 40)
	assert.Greater(t, res.Accuracy(ds.X, ds.Y), 0.8)
}

func TestNumNonzero(t *testing.T) {
	res := &FitResult{Coef: []float64{0, 1e-9, -0.5, 2}}
	assert.Equal(t, 2, res.NumNonzero(1e-6))
	assert.Equal(t, 3, res.NumNonzero(0))
}

func TestNumericHelpers(t *testing.T) {
	assert.InDelta(t, math.Ln2, softplus(0), delta)
	assert.InDelta(t, 0.5, sigmoid(0), delta)
	assert.Equal(t, 1000.0, softplus(1000))
	assert.False(t, math.IsNaN(softplus(-1000)))
	assert.InDelta(t, 1.0, sigmoid(100), delta)
	assert.InDelta(t, 0.0, sigmoid(-100), delta)
}
