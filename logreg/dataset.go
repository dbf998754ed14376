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
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dataset is a synthetic binary classification problem drawn from a
// sparse logistic ground-truth model.
type Dataset struct {
	// X is the n×d feature matrix, entries drawn i.i.d. standard normal.
	X *mat.Dense

	// Y holds the n labels, each -1 or +1.
	Y []float64

	// TrueCoef is the sparse coefficient vector the labels were drawn
	// from; useful to compare against a fitted model.
	TrueCoef []float64
}

// Synthetic generates a reproducible n×d dataset whose labels follow a
// logistic model with the given number of nonzero ground-truth
// coefficients (alternating ±1 on the first features). The same seed
// always yields the same dataset.
func Synthetic(n, d, nonzero int, seed uint64) *Dataset {
	if nonzero > d {
		nonzero = d
	}

	rng := rand.New(rand.NewSource(seed))
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	coef := make([]float64, d)
	for j := 0; j < nonzero; j++ {
		if j%2 == 0 {
			coef[j] = 1
		} else {
			coef[j] = -1
		}
	}

	x := mat.NewDense(n, d, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		z := 0.0
		for j := 0; j < d; j++ {
			v := normal.Rand()
			x.Set(i, j, v)
			z += v * coef[j]
		}
		if rng.Float64() < sigmoid(z) {
			y[i] = 1
		} else {
			y[i] = -1
		}
	}

	return &Dataset{X: x, Y: y, TrueCoef: coef}
}
