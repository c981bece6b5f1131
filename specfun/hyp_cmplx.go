package specfun

import (
	"math"
	"math/cmplx"
)

// CmplxHyp2F1 evaluates 2F1(a, b; c; z) for real parameters and complex
// argument on the principal branch.
//
// Terminating and pole cases follow Hyp2F1. Elsewhere the Maclaurin series
// is used where it converges quickly, with the Pfaff transformation or the
// 1-z connection formula bringing the argument into reach; regions none of
// the maps cover return NaN.
func CmplxHyp2F1(a, b, c float64, z complex128) complex128 {
	na, aTerm := nonPosInt(a)
	nb, bTerm := nonPosInt(b)
	if nc, cPole := nonPosInt(c); cPole {
		if aTerm && na <= nc {
			return cmplxGaussTerminating(a, b, c, z, na)
		}
		if bTerm && nb <= nc {
			return cmplxGaussTerminating(b, a, c, z, nb)
		}
		return complex(math.Inf(1), 0)
	}
	if aTerm && (!bTerm || na <= nb) {
		return cmplxGaussTerminating(a, b, c, z, na)
	}
	if bTerm {
		return cmplxGaussTerminating(b, a, c, z, nb)
	}

	const crossover = 0.75
	switch {
	case cmplx.Abs(z) < crossover:
		return cmplxGaussSeries(a, b, c, z)
	case cmplx.Abs(z/(z-1)) < crossover:
		// Pfaff transformation.
		return cmplx.Pow(1-z, complex(-a, 0)) *
			cmplxGaussSeries(a, c-b, c, z/(z-1))
	case cmplx.Abs(1-z) < crossover && !isInt(c-a-b):
		s := c - a - b
		y := 1 - z
		t1 := complex(gammaRatio([]float64{c, s}, []float64{c - a, c - b}), 0) *
			cmplxGaussSeries(a, b, 1-s, y)
		t2 := complex(gammaRatio([]float64{c, -s}, []float64{a, b}), 0) *
			cmplx.Pow(y, complex(s, 0)) * cmplxGaussSeries(c-a, c-b, 1+s, y)
		return t1 + t2
	default:
		return cmplx.NaN()
	}
}

// CmplxHyp1F1 evaluates 1F1(a; b; z) for real parameters and complex
// argument, with the Kummer transformation applied in the left half-plane.
func CmplxHyp1F1(a, b float64, z complex128) complex128 {
	na, aTerm := nonPosInt(a)
	if nb, bPole := nonPosInt(b); bPole {
		if aTerm && na <= nb {
			return cmplxKummerTerminating(a, b, z, na)
		}
		return complex(math.Inf(1), 0)
	}
	if aTerm {
		return cmplxKummerTerminating(a, b, z, na)
	}
	if real(z) < 0 {
		return cmplx.Exp(z) * cmplxKummerSeries(b-a, b, -z)
	}
	return cmplxKummerSeries(a, b, z)
}

// cmplxGaussTerminating mirrors gaussTerminating: a is the terminating
// parameter, and arguments in the right half-plane past Re z = 1/2 go
// through the Pfaff transformation to keep the alternating sum conditioned.
func cmplxGaussTerminating(a, b, c float64, z complex128, n int) complex128 {
	if real(z) >= 0.5 && z != 1 {
		t0 := cmplx.Pow(1-z, complex(float64(n), 0))
		return cmplxGaussTermSum(a, c-b, c, z/(z-1), t0, n)
	}
	return cmplxGaussTermSum(a, b, c, z, 1, n)
}

func cmplxGaussTermSum(a, b, c float64, z complex128, t0 complex128, n int) complex128 {
	sum, term := t0, t0
	for k := 0; k < n; k++ {
		fk := float64(k)
		term *= complex((a+fk)*(b+fk)/((c+fk)*(fk+1)), 0) * z
		sum += term
	}
	return sum
}

func cmplxGaussSeries(a, b, c float64, z complex128) complex128 {
	sum, term := complex(1, 0), complex(1, 0)
	for k := 0; k < maxSeriesTerms; k++ {
		fk := float64(k)
		term *= complex((a+fk)*(b+fk)/((c+fk)*(fk+1)), 0) * z
		sum += term
		if cmplx.Abs(term) <= seriesEps*cmplx.Abs(sum) {
			return sum
		}
	}
	return cmplx.NaN()
}

func cmplxKummerTerminating(a, b float64, z complex128, n int) complex128 {
	sum, term := complex(1, 0), complex(1, 0)
	for k := 0; k < n; k++ {
		fk := float64(k)
		term *= complex((a+fk)/((b+fk)*(fk+1)), 0) * z
		sum += term
	}
	return sum
}

func cmplxKummerSeries(a, b float64, z complex128) complex128 {
	sum, term := complex(1, 0), complex(1, 0)
	for k := 0; k < maxSeriesTerms; k++ {
		fk := float64(k)
		term *= complex((a+fk)/((b+fk)*(fk+1)), 0) * z
		sum += term
		if cmplx.Abs(term) <= seriesEps*cmplx.Abs(sum) {
			return sum
		}
	}
	return cmplx.NaN()
}
