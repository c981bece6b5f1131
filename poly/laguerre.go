package poly

import "github.com/notargets/orthopoly/specfun"

// GenLaguerreInt evaluates the generalized Laguerre polynomial L_n^(alpha)
// at x by the ascending three-term recurrence. Negative degree evaluates
// to 0.
func GenLaguerreInt(n int, alpha, x float64) float64 {
	switch {
	case n < 0:
		return 0
	case n == 0:
		return 1
	case n == 1:
		return -x + alpha + 1
	}
	d := -x / (alpha + 1)
	p := ascending(n, d, d+1, func(k float64) (cd, cp float64) {
		cd = k / (k + alpha + 1)
		cp = -x / (k + alpha + 1)
		return cd, cp
	})
	return specfun.Binomial(float64(n)+alpha, float64(n)) * p
}

// GenLaguerre evaluates L_n^(alpha) at x for arbitrary real degree through
//
//	L_n^(a)(x) = C(n+a, n) 1F1(-n; a+1; x).
func GenLaguerre(n, alpha, x float64) float64 {
	return specfun.Binomial(n+alpha, n) * specfun.Hyp1F1(-n, alpha+1, x)
}

// LaguerreInt evaluates the Laguerre polynomial L_n at x, the alpha = 0
// member of the generalized family.
func LaguerreInt(n int, x float64) float64 {
	return GenLaguerreInt(n, 0, x)
}

// Laguerre is the arbitrary-degree form of LaguerreInt.
func Laguerre(n, x float64) float64 {
	return GenLaguerre(n, 0, x)
}
