package specfun

import "math"

const (
	seriesEps      = 1.11e-16
	maxSeriesTerms = 5000

	// maxTerminating bounds the degree accepted for exact summation of a
	// terminating series; beyond it the polynomial route is hopeless anyway.
	maxTerminating = 1 << 20
)

// Hyp2F1 evaluates the Gauss hypergeometric function 2F1(a, b; c; x) on the
// principal branch.
//
// When a or b is a non-positive integer the series terminates and is summed
// through its last nonzero term, so polynomial cases carry no truncation
// error. Otherwise the Maclaurin series is used on [0, 1), after mapping
// x < 0 into that interval with the Pfaff transformation and switching to
// the 1-x connection formula close to the endpoint. At a non-positive
// integer c the function has a pole (+Inf) unless a or b terminates the
// series first, and arguments past the convergence domain return NaN.
func Hyp2F1(a, b, c, x float64) float64 {
	na, aTerm := nonPosInt(a)
	nb, bTerm := nonPosInt(b)
	if nc, cPole := nonPosInt(c); cPole {
		if aTerm && na <= nc {
			return gaussTerminating(a, b, c, x, na)
		}
		if bTerm && nb <= nc {
			return gaussTerminating(b, a, c, x, nb)
		}
		return math.Inf(1)
	}
	if aTerm && (!bTerm || na <= nb) {
		return gaussTerminating(a, b, c, x, na)
	}
	if bTerm {
		return gaussTerminating(b, a, c, x, nb)
	}

	switch {
	case x == 1:
		// Gauss summation; the function has no finite limit at 1 when
		// c-a-b <= 0.
		s := c - a - b
		if s <= 0 {
			return math.Inf(1)
		}
		return gammaRatio([]float64{c, s}, []float64{c - a, c - b})
	case x < 0:
		// Pfaff maps (-Inf, 0) onto (0, 1).
		return math.Pow(1-x, -a) * gaussUnit(a, c-b, c, x/(x-1))
	case x < 1:
		return gaussUnit(a, b, c, x)
	default:
		return math.NaN()
	}
}

// gaussUnit evaluates the non-terminating series on [0, 1): directly below
// the crossover, via the 1-x connection formula (AMS55 15.3.6) above it.
func gaussUnit(a, b, c, x float64) float64 {
	const crossover = 0.75
	if x < crossover {
		return gaussSeries(a, b, c, x)
	}
	s := c - a - b
	if isInt(s) {
		// Degenerate connection formula; the plain series still converges
		// below 1, only slowly.
		return gaussSeries(a, b, c, x)
	}
	y := 1 - x
	t1 := gammaRatio([]float64{c, s}, []float64{c - a, c - b}) *
		gaussSeries(a, b, 1-s, y)
	t2 := gammaRatio([]float64{c, -s}, []float64{a, b}) *
		math.Pow(y, s) * gaussSeries(c-a, c-b, 1+s, y)
	return t1 + t2
}

// gaussTerminating sums the 2F1 series through its n+1 terms; a must be
// the non-positive integer -n that terminates it. Direct summation on
// [1/2, 1) is ill conditioned - at high degree the alternating terms dwarf
// the result - so there the series is rewritten by the Pfaff transformation
//
//	2F1(-n, b; c; x) = (1-x)^n 2F1(-n, c-b; c; x/(x-1)),
//
// still n+1 terms, with the power folded into the leading term so the
// intermediates stay near the scale of the result.
func gaussTerminating(a, b, c, x float64, n int) float64 {
	if x >= 0.5 && x < 1 {
		return gaussTermSum(a, c-b, c, x/(x-1), math.Pow(1-x, float64(n)), n)
	}
	return gaussTermSum(a, b, c, x, 1, n)
}

func gaussTermSum(a, b, c, x, t0 float64, n int) float64 {
	sum, term := t0, t0
	for k := 0; k < n; k++ {
		fk := float64(k)
		term *= (a + fk) * (b + fk) / ((c + fk) * (fk + 1)) * x
		sum += term
	}
	return sum
}

// gaussSeries sums the Maclaurin series; converges for |x| < 1.
func gaussSeries(a, b, c, x float64) float64 {
	sum, term := 1.0, 1.0
	for k := 0; k < maxSeriesTerms; k++ {
		fk := float64(k)
		term *= (a + fk) * (b + fk) / ((c + fk) * (fk + 1)) * x
		sum += term
		if math.Abs(term) <= seriesEps*math.Abs(sum) {
			return sum
		}
	}
	return math.NaN()
}

// gammaRatio computes prod Gamma(num) / prod Gamma(den) through Lgamma,
// carrying the Gamma signs separately. A pole in the denominator yields 0,
// a pole in the numerator ±Inf.
func gammaRatio(num, den []float64) float64 {
	lg, sign := 0.0, 1
	for _, v := range num {
		l, s := math.Lgamma(v)
		lg += l
		sign *= s
	}
	for _, v := range den {
		l, s := math.Lgamma(v)
		lg -= l
		sign *= s
	}
	return float64(sign) * math.Exp(lg)
}

// nonPosInt reports whether v is a non-positive integer small enough to
// terminate a series, returning the term count -v when it is.
func nonPosInt(v float64) (int, bool) {
	if v > 0 || v < -maxTerminating || v != math.Trunc(v) {
		return 0, false
	}
	return int(-v), true
}

func isInt(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}
