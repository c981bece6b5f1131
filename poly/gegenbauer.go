package poly

import (
	"math"

	"github.com/notargets/orthopoly/specfun"
)

// GegenbauerInt evaluates the Gegenbauer (ultraspherical) polynomial
// C_n^(alpha) at x by the ascending three-term recurrence. Negative degree
// evaluates to 0.
func GegenbauerInt(n int, alpha, x float64) float64 {
	switch {
	case n < 0:
		return 0
	case n == 0:
		return 1
	case n == 1:
		return 2 * alpha * x
	}
	p := ascending(n, x-1, x, func(k float64) (cd, cp float64) {
		cd = k / (k + 2*alpha)
		cp = 2 * (k + alpha) / (k + 2*alpha) * (x - 1)
		return cd, cp
	})
	return specfun.Binomial(float64(n)+2*alpha-1, float64(n)) * p
}

// Gegenbauer evaluates C_n^(alpha) at x for arbitrary real degree through
//
//	C_n^(a)(x) = Gamma(n+2a) / (Gamma(n+1) Gamma(2a)) 2F1(-n, n+2a; a+1/2; (1-x)/2).
//
// The prefactor vanishes at alpha = 0, where the whole family degenerates.
func Gegenbauer(n, alpha, x float64) float64 {
	factor := math.Gamma(n+2*alpha) / (math.Gamma(1+n) * math.Gamma(2*alpha))
	return factor * specfun.Hyp2F1(-n, n+2*alpha, alpha+0.5, 0.5*(1-x))
}
