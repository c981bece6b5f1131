package poly

import (
	"math"

	"github.com/notargets/orthopoly/specfun"
)

// JacobiInt evaluates the Jacobi polynomial P_n^(alpha,beta) at x by the
// ascending three-term recurrence. Negative degree evaluates to 0.
func JacobiInt(n int, alpha, beta, x float64) float64 {
	switch {
	case n < 0:
		return 0
	case n == 0:
		return 1
	case n == 1:
		return 0.5 * (2*(alpha+1) + (alpha+beta+2)*(x-1))
	}
	d := (alpha + beta + 2) * (x - 1) / (2 * (alpha + 1))
	p := ascending(n, d, d+1, func(k float64) (cd, cp float64) {
		t := 2*k + alpha + beta
		den := 2 * (k + alpha + 1) * (k + alpha + beta + 1) * t
		cd = 2 * k * (k + beta) * (t + 2) / den
		cp = t * (t + 1) * (t + 2) * (x - 1) / den
		return cd, cp
	})
	return specfun.Binomial(float64(n)+alpha, float64(n)) * p
}

// Jacobi evaluates the Jacobi polynomial P_n^(alpha,beta) at x for
// arbitrary real degree through the representation
//
//	P_n^(a,b)(x) = C(n+a, n) 2F1(-n, n+a+b+1; a+1; (1-x)/2).
func Jacobi(n, alpha, beta, x float64) float64 {
	return specfun.Binomial(n+alpha, n) *
		specfun.Hyp2F1(-n, n+alpha+beta+1, alpha+1, 0.5*(1-x))
}

// ShiftedJacobiInt evaluates the shifted Jacobi polynomial G_n(p, q, x),
// orthogonal on [0, 1], as a rescaled Jacobi polynomial at 2x-1. Negative
// degree evaluates to 0; it cannot be left to the base call here because
// the rescaling factor hits a Gamma pole at negative n.
func ShiftedJacobiInt(n int, p, q, x float64) float64 {
	if n < 0 {
		return 0
	}
	return shiftedJacobiFactor(float64(n), p) * JacobiInt(n, p-q, q-1, 2*x-1)
}

// ShiftedJacobi is the arbitrary-degree form of ShiftedJacobiInt.
func ShiftedJacobi(n, p, q, x float64) float64 {
	return shiftedJacobiFactor(n, p) * Jacobi(n, p-q, q-1, 2*x-1)
}

// shiftedJacobiFactor is n! Gamma(n+p) / Gamma(2n+p), assembled in log
// space to stave off overflow at large degree.
func shiftedJacobiFactor(n, p float64) float64 {
	l1, _ := math.Lgamma(1 + n)
	l2, _ := math.Lgamma(n + p)
	l3, _ := math.Lgamma(2*n + p)
	return math.Exp(l1 + l2 - l3)
}
