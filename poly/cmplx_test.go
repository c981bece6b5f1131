package poly

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertCmplxClose(t *testing.T, want, got complex128, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, 0, cmplx.Abs(got-want), tol, msgAndArgs...)
}

func TestCmplxEvaluatorsMatchRealAxis(t *testing.T) {
	cases := []struct {
		name string
		real func(n, x float64) float64
		cplx func(n float64, z complex128) complex128
	}{
		{"Jacobi",
			func(n, x float64) float64 { return Jacobi(n, 0.5, 0.25, x) },
			func(n float64, z complex128) complex128 { return JacobiCmplx(n, 0.5, 0.25, z) }},
		{"Gegenbauer",
			func(n, x float64) float64 { return Gegenbauer(n, 0.75, x) },
			func(n float64, z complex128) complex128 { return GegenbauerCmplx(n, 0.75, z) }},
		{"ChebyshevT", ChebyshevT, ChebyshevTCmplx},
		{"ChebyshevU", ChebyshevU, ChebyshevUCmplx},
		{"Legendre", Legendre, LegendreCmplx},
		{"GenLaguerre",
			func(n, x float64) float64 { return GenLaguerre(n, 1.5, x) },
			func(n float64, z complex128) complex128 { return GenLaguerreCmplx(n, 1.5, z) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, n := range []float64{0, 1, 2, 5} {
				for _, x := range []float64{-0.3, 0, 0.7} {
					want := complex(c.real(n, x), 0)
					assertCmplxClose(t, want, c.cplx(n, complex(x, 0)), 1e-12,
						"n=%v x=%v", n, x)
				}
			}
		})
	}
}

func TestChebyshevTCmplxTrigIdentity(t *testing.T) {
	// T_n(z) = cos(n acos z) continues off the real axis.
	z := 0.3 + 0.4i
	for _, n := range []float64{2, 6, 9} {
		want := cmplx.Cos(complex(n, 0) * cmplx.Acos(z))
		assertCmplxClose(t, want, ChebyshevTCmplx(n, z), 1e-10, "n=%v", n)
	}
}

func TestLegendreCmplxBonnet(t *testing.T) {
	// Run Bonnet's recurrence in complex arithmetic as an independent
	// reference for the hypergeometric path.
	z := 0.5 + 1.2i
	pkm1, pk := complex(1, 0), z
	for k := 1; k <= 5; k++ {
		fk := complex(float64(k), 0)
		pkm1, pk = pk, ((2*fk+1)*z*pk-fk*pkm1)/(fk+1)
	}
	// pk now holds P_6(z).
	assertCmplxClose(t, pk, LegendreCmplx(6, z), 1e-10)
}

func TestGenLaguerreCmplxRecurrence(t *testing.T) {
	// (k+1) L_(k+1)^(a) = (2k+1+a-z) L_k^(a) - (k+a) L_(k-1)^(a) in
	// complex arithmetic.
	alpha := 0.5
	z := 1.1 - 0.7i
	ca := complex(alpha, 0)
	lkm1, lk := complex(1, 0), 1+ca-z
	for k := 1; k <= 4; k++ {
		fk := complex(float64(k), 0)
		lkm1, lk = lk, ((2*fk+1+ca-z)*lk-(fk+ca)*lkm1)/(fk+1)
	}
	// lk now holds L_5^(1/2)(z).
	assertCmplxClose(t, lk, GenLaguerreCmplx(5, alpha, z), 1e-10)
}
