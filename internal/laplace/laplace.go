// Package laplace evaluates Laplace coefficients, the special functions of
// the semi-major-axis ratio that appear in the expansion of the mutual
// gravitational perturbation between two orbits:
//
//	b_s^(j)(α) = (2/π) ∫₀^π cos(jψ) (1 − 2α·cos ψ + α²)^−s dψ
//
// The secular matrices only need s = 3/2 with j = 1, 2, evaluated through
// the equivalent Gauss hypergeometric series
//
//	b_s^(j)(α) = 2 (s)_j/j! · α^j · F(s, s+j; j+1; α²)
//
// which converges for 0 < α < 1. No symbolic machinery is involved.
package laplace

import (
	"fmt"
	"math"
)

// seriesTol terminates the hypergeometric sum once a term falls below this
// fraction of the accumulated value. Convergence slows as α → 1; maxTerms
// bounds the pathological near-singular case.
const (
	seriesTol = 1e-15
	maxTerms  = 100000
)

// Coefficient returns b_s^(j)(α) for half-integer s > 0, j ≥ 0 and
// 0 < α < 1. The coupling integral is singular at α = 1 (orbit crossing)
// and undefined outside the open interval.
func Coefficient(s float64, j int, alpha float64) (float64, error) {
	if alpha <= 0 || alpha >= 1 {
		return 0, fmt.Errorf("laplace: ratio α=%g outside (0,1)", alpha)
	}
	if s <= 0 || j < 0 {
		return 0, fmt.Errorf("laplace: invalid order s=%g j=%d", s, j)
	}

	// Prefactor 2·(s)_j/j! · α^j.
	pre := 2.0
	for n := 0; n < j; n++ {
		pre *= (s + float64(n)) / float64(n+1)
	}
	pre *= math.Pow(alpha, float64(j))

	// F(s, s+j; j+1; α²) by term-ratio recursion.
	x := alpha * alpha
	term := 1.0
	sum := 1.0
	for n := 0; n < maxTerms; n++ {
		fn := float64(n)
		term *= (s + fn) * (s + float64(j) + fn) / ((float64(j) + 1 + fn) * (fn + 1)) * x
		sum += term
		if math.Abs(term) < seriesTol*math.Abs(sum) {
			return pre * sum, nil
		}
	}
	return 0, fmt.Errorf("laplace: series for b_%g^(%d)(%g) did not converge in %d terms", s, j, alpha, maxTerms)
}

// B32 returns the two s=3/2 coefficients the secular matrices need:
// b_{3/2}^(1)(α) and b_{3/2}^(2)(α).
func B32(alpha float64) (b1, b2 float64, err error) {
	b1, err = Coefficient(1.5, 1, alpha)
	if err != nil {
		return 0, 0, err
	}
	b2, err = Coefficient(1.5, 2, alpha)
	if err != nil {
		return 0, 0, err
	}
	return b1, b2, nil
}
