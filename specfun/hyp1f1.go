package specfun

import "math"

// Hyp1F1 evaluates Kummer's confluent hypergeometric function 1F1(a; b; x).
//
// A non-positive integer a terminates the series, which is then summed
// exactly. For x < 0 the Kummer transformation
// 1F1(a; b; x) = e^x 1F1(b-a; b; -x) replaces the alternating series with a
// same-sign one. A non-positive integer b is a pole (+Inf) unless a
// terminates the series first.
func Hyp1F1(a, b, x float64) float64 {
	na, aTerm := nonPosInt(a)
	if nb, bPole := nonPosInt(b); bPole {
		if aTerm && na <= nb {
			return kummerTerminating(a, b, x, na)
		}
		return math.Inf(1)
	}
	if aTerm {
		return kummerTerminating(a, b, x, na)
	}
	if x < 0 {
		return math.Exp(x) * kummerSeries(b-a, b, -x)
	}
	return kummerSeries(a, b, x)
}

// kummerTerminating sums the 1F1 series exactly through its n+1 terms.
func kummerTerminating(a, b, x float64, n int) float64 {
	sum, term := 1.0, 1.0
	for k := 0; k < n; k++ {
		fk := float64(k)
		term *= (a + fk) / ((b + fk) * (fk + 1)) * x
		sum += term
	}
	return sum
}

// kummerSeries sums the Maclaurin series; converges for all x, usefully so
// for x >= 0 where the terms do not alternate.
func kummerSeries(a, b, x float64) float64 {
	sum, term := 1.0, 1.0
	for k := 0; k < maxSeriesTerms; k++ {
		fk := float64(k)
		term *= (a + fk) / ((b + fk) * (fk + 1)) * x
		sum += term
		if math.Abs(term) <= seriesEps*math.Abs(sum) {
			return sum
		}
	}
	return math.NaN()
}
