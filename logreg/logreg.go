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
Package logreg fits L1-regularized (sparse) logistic regression by
delegating the minimization to an external L-BFGS-B implementation.

The objective is

	sum over samples of softplus(-y_i * (x_i·w + b)) + lambda * ‖w‖₁

with softplus(t) = log(1+exp(t)). The nonsmooth L1 term is removed by
the standard positive/negative split w = p - n with p, n >= 0, which
makes the penalty linear and the whole problem a smooth minimization
over bound-constrained variables, exactly the shape L-BFGS-B solves.
The intercept b is unpenalized and unbounded.
*/
package logreg

import (
	"errors"
	"fmt"
	"math"

	"github.com/curioloop/optimizer/lbfgsb"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/* Types */

// FitResult holds the fitted model and solver statistics.
type FitResult struct {
	// Coef is the fitted coefficient vector, one entry per feature.
	Coef []float64

	// Intercept is the fitted unpenalized bias term.
	Intercept float64

	// Objective is the final value of the penalized loss.
	Objective float64

	// Iterations and Evaluations count the optimizer's work.
	Iterations  int
	Evaluations int

	// Converged reports whether the optimizer met its tolerance before
	// hitting its iteration limit.
	Converged bool
}

type config struct {
	maxIterations int
	corrections   int
	tolerance     float64
}

// FitOption configures a call to Fit.
type FitOption func(*config) error

// WithMaxIterations bounds the number of L-BFGS-B iterations.
func WithMaxIterations(n int) FitOption {
	return func(c *config) error {
		if n <= 0 {
			return errors.New("max iterations must be positive")
		}
		c.maxIterations = n

		return nil
	}
}

// WithCorrections sets the number of BFGS correction pairs kept.
func WithCorrections(m int) FitOption {
	return func(c *config) error {
		if m <= 0 {
			return errors.New("correction count must be positive")
		}
		c.corrections = m

		return nil
	}
}

// WithTolerance sets the projected gradient tolerance used as the
// convergence criterion.
func WithTolerance(tol float64) FitOption {
	return func(c *config) error {
		if tol <= 0 {
			return errors.New("tolerance must be positive")
		}
		c.tolerance = tol

		return nil
	}
}

/* Fitting */

// Fit trains an L1-regularized logistic regression model on the n×d
// feature matrix x and the ±1 labels y. lambda is the L1 penalty
// weight; lambda = 0 gives plain logistic regression.
func Fit(x mat.Matrix, y []float64, lambda float64, opts ...FitOption) (*FitResult, error) {
	n, d := x.Dims()

	switch {
	case lambda < 0:
		return nil, errors.New("negative regularization weight")
	case len(y) != n:
		return nil, fmt.Errorf("expected %d labels, got %d", n, len(y))
	}
	for i, label := range y {
		if label != 1 && label != -1 {
			return nil, fmt.Errorf("label %d is %v, want -1 or +1", i, label)
		}
	}

	cfg := &config{
		maxIterations: 500,
		corrections:   10,
		tolerance:     1e-6,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying fit option: %w", err)
		}
	}

	// variable layout: d positive parts, d negative parts, intercept
	dim := 2*d + 1

	eval := func(v []float64, g []float64) float64 {
		for i := range g {
			g[i] = 0
		}

		f := 0.0
		for i := 0; i < n; i++ {
			z := v[2*d]
			for j := 0; j < d; j++ {
				z += x.At(i, j) * (v[j] - v[d+j])
			}
			margin := -y[i] * z
			f += softplus(margin)

			common := -y[i] * sigmoid(margin)
			for j := 0; j < d; j++ {
				g[j] += common * x.At(i, j)
				g[d+j] -= common * x.At(i, j)
			}
			g[2*d] += common
		}

		f += lambda * (floats.Sum(v[:d]) + floats.Sum(v[d:2*d]))
		for j := 0; j < 2*d; j++ {
			g[j] += lambda
		}

		return f
	}

	bounds := make([]lbfgsb.Bound, dim)
	for j := 0; j < 2*d; j++ {
		bounds[j] = lbfgsb.Bound{Lower: 0, Upper: math.NaN()}
	}
	bounds[2*d] = lbfgsb.Bound{Lower: math.NaN(), Upper: math.NaN()}

	problem := lbfgsb.Problem{
		N:    dim,
		M:    cfg.corrections,
		Eval: eval,
		Stop: lbfgsb.Termination{
			MaxIterations:     cfg.maxIterations,
			EpsAccuracyFactor: 1e7,
			ProjGradTolerance: cfg.tolerance,
		},
		Bounds: bounds,
	}

	optimizer, err := problem.New(nil)
	if err != nil {
		return nil, fmt.Errorf("configuring optimizer: %w", err)
	}

	res := optimizer.Fit(make([]float64, dim), optimizer.Init())

	coef := make([]float64, d)
	for j := 0; j < d; j++ {
		coef[j] = res.X[j] - res.X[d+j]
	}

	return &FitResult{
		Coef:        coef,
		Intercept:   res.X[2*d],
		Objective:   res.F,
		Iterations:  res.NumIter,
		Evaluations: res.NumEval,
		Converged:   res.OK,
	}, nil
}

/* Result helpers */

// NumNonzero counts coefficients whose magnitude exceeds tol.
func (r *FitResult) NumNonzero(tol float64) int {
	count := 0
	for _, c := range r.Coef {
		if math.Abs(c) > tol {
			count++
		}
	}
	return count
}

// Probability returns the model's estimate of P(y = +1 | x).
func (r *FitResult) Probability(x []float64) float64 {
	return sigmoid(floats.Dot(x, r.Coef) + r.Intercept)
}

// Accuracy returns the fraction of rows of x whose predicted sign
// matches the corresponding ±1 label.
func (r *FitResult) Accuracy(x mat.Matrix, y []float64) float64 {
	n, d := x.Dims()
	if n == 0 {
		return 0
	}

	correct := 0
	row := make([]float64, d)
	for i := 0; i < n; i++ {
		mat.Row(row, i, x)
		p := r.Probability(row)
		if (p >= 0.5) == (y[i] > 0) {
			correct++
		}
	}
	return float64(correct) / float64(n)
}

/* numerics */

// softplus computes log(1+exp(t)) without overflowing for large |t|.
func softplus(t float64) float64 {
	switch {
	case t > 35:
		return t
	case t < -35:
		return math.Exp(t)
	default:
		return math.Log1p(math.Exp(t))
	}
}

// sigmoid computes 1/(1+exp(-t)) without overflowing for large |t|.
func sigmoid(t float64) float64 {
	if t >= 0 {
		return 1 / (1 + math.Exp(-t))
	}
	e := math.Exp(t)
	return e / (1 + e)
}
