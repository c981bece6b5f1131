package specfun

import "math"

// Binomial computes the generalized binomial coefficient
//
//	C(n, k) = Gamma(n+1) / (Gamma(k+1) Gamma(n-k+1))
//
// for real n and k. The magnitude is assembled from Lgamma values while the
// sign of each Gamma factor is carried separately, so negative and
// non-integer arguments come out with the correct sign. Gamma poles in the
// denominator give 0, poles in the numerator give ±Inf.
func Binomial(n, k float64) float64 {
	ln, sn := math.Lgamma(n + 1)
	lk, sk := math.Lgamma(k + 1)
	lnk, snk := math.Lgamma(n - k + 1)
	return float64(sn*sk*snk) * math.Exp(ln-lk-lnk)
}
