package poly

// stepCoeffs returns the multipliers applied at recurrence step k to the
// running difference d and the accumulated value p. Each family captures
// its shape parameters and the argument in the closure; only the
// coefficient algebra differs between families.
type stepCoeffs func(k float64) (cd, cp float64)

// ascending drives the three-term recurrence shared by the Jacobi,
// Gegenbauer, Legendre and generalized Laguerre evaluators. d and p are
// seeded at degree 1; each of the n-1 steps rebuilds d from its previous
// value and p, then folds it into p. The caller applies any trailing
// normalization factor.
func ascending(n int, d, p float64, c stepCoeffs) float64 {
	for kk := 0; kk < n-1; kk++ {
		cd, cp := c(float64(kk + 1))
		d = cp*p + cd*d
		p += d
	}
	return p
}
