package poly

import "math"

// HermiteInt evaluates the physicist's Hermite polynomial H_n at x.
// Rather than running a Hermite recurrence directly, the evaluation
// branches on parity and reduces to generalized Laguerre at half-integer
// parameter:
//
//	H_2m(x)   = (-1)^m 2^(2m)   m! L_m^(-1/2)(x^2)
//	H_2m+1(x) = (-1)^m 2^(2m+1) m! x L_m^(+1/2)(x^2)
//
// Negative degree evaluates to 0.
func HermiteInt(n int, x float64) float64 {
	if n < 0 {
		return 0
	}
	m := n / 2
	sign := 1.0
	if m%2 == 1 {
		sign = -1
	}
	fact := math.Gamma(float64(m) + 1)
	if n%2 == 0 {
		return sign * math.Ldexp(fact, 2*m) * GenLaguerreInt(m, -0.5, x*x)
	}
	return sign * math.Ldexp(fact, 2*m+1) * x * GenLaguerreInt(m, 0.5, x*x)
}

// HermiteNormInt evaluates the statistician's Hermite polynomial He_n at x,
// a rescaling of the physicist's polynomial:
//
//	He_n(x) = 2^(-n/2) H_n(x / sqrt 2).
func HermiteNormInt(n int, x float64) float64 {
	return HermiteInt(n, x/math.Sqrt2) * math.Exp2(-float64(n)/2)
}
