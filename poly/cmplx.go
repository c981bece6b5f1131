package poly

import (
	"math"

	"github.com/notargets/orthopoly/specfun"
)

// Complex-argument forms of the arbitrary-degree evaluators. Only the six
// base families below admit a complex argument; the shifted and rescaled
// variants, and both Hermite variants, are real-only.

// JacobiCmplx evaluates P_n^(alpha,beta) at complex z for arbitrary real
// degree.
func JacobiCmplx(n, alpha, beta float64, z complex128) complex128 {
	return complex(specfun.Binomial(n+alpha, n), 0) *
		specfun.CmplxHyp2F1(-n, n+alpha+beta+1, alpha+1, 0.5*(1-z))
}

// GegenbauerCmplx evaluates C_n^(alpha) at complex z for arbitrary real
// degree.
func GegenbauerCmplx(n, alpha float64, z complex128) complex128 {
	factor := math.Gamma(n+2*alpha) / (math.Gamma(1+n) * math.Gamma(2*alpha))
	return complex(factor, 0) *
		specfun.CmplxHyp2F1(-n, n+2*alpha, alpha+0.5, 0.5*(1-z))
}

// ChebyshevTCmplx evaluates T_n at complex z for arbitrary real degree.
func ChebyshevTCmplx(n float64, z complex128) complex128 {
	return specfun.CmplxHyp2F1(-n, n, 0.5, 0.5*(1-z))
}

// ChebyshevUCmplx evaluates U_n at complex z for arbitrary real degree.
func ChebyshevUCmplx(n float64, z complex128) complex128 {
	return complex(n+1, 0) * specfun.CmplxHyp2F1(-n, n+2, 1.5, 0.5*(1-z))
}

// LegendreCmplx evaluates P_n at complex z for arbitrary real degree.
func LegendreCmplx(n float64, z complex128) complex128 {
	return specfun.CmplxHyp2F1(-n, n+1, 1, 0.5*(1-z))
}

// GenLaguerreCmplx evaluates L_n^(alpha) at complex z for arbitrary real
// degree.
func GenLaguerreCmplx(n, alpha float64, z complex128) complex128 {
	return complex(specfun.Binomial(n+alpha, n), 0) *
		specfun.CmplxHyp1F1(-n, alpha+1, z)
}
