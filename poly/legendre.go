package poly

import "github.com/notargets/orthopoly/specfun"

// LegendreInt evaluates the Legendre polynomial P_n at x by the ascending
// three-term recurrence. Unlike Jacobi and Gegenbauer, no trailing
// normalization is needed. Negative degree evaluates to 0.
func LegendreInt(n int, x float64) float64 {
	switch {
	case n < 0:
		return 0
	case n == 0:
		return 1
	case n == 1:
		return x
	}
	return ascending(n, x-1, x, func(k float64) (cd, cp float64) {
		cd = k / (k + 1)
		cp = (2*k + 1) * (x - 1) / (k + 1)
		return cd, cp
	})
}

// Legendre evaluates P_n at x for arbitrary real degree through
// P_n(x) = 2F1(-n, n+1; 1; (1-x)/2).
func Legendre(n, x float64) float64 {
	return specfun.Hyp2F1(-n, n+1, 1, 0.5*(1-x))
}

// ShiftedLegendreInt evaluates P*_n(x) = P_n(2x-1) on [0, 1].
func ShiftedLegendreInt(n int, x float64) float64 {
	return LegendreInt(n, 2*x-1)
}

// ShiftedLegendre is the arbitrary-degree form of ShiftedLegendreInt.
func ShiftedLegendre(n, x float64) float64 {
	return Legendre(n, 2*x-1)
}
