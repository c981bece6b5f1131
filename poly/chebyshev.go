package poly

import "github.com/notargets/orthopoly/specfun"

// ChebyshevTInt evaluates the Chebyshev polynomial of the first kind T_n at
// x, running the recurrence on 2x and taking the difference (b0-b2)/2 as
// the result. The difference form keeps full accuracy near x = ±1, where
// the raw recurrence terms cancel catastrophically. Negative degree
// evaluates to 0.
func ChebyshevTInt(n int, x float64) float64 {
	b2, b1, b0 := 0.0, -1.0, 0.0
	x2 := 2 * x
	for m := 0; m <= n; m++ {
		b2 = b1
		b1 = b0
		b0 = x2*b1 - b2
	}
	return (b0 - b2) / 2
}

// ChebyshevUInt evaluates the Chebyshev polynomial of the second kind U_n
// at x by the same recurrence as ChebyshevTInt. Negative degree evaluates
// to 0.
func ChebyshevUInt(n int, x float64) float64 {
	b2, b1, b0 := 0.0, -1.0, 0.0
	x2 := 2 * x
	for m := 0; m <= n; m++ {
		b2 = b1
		b1 = b0
		b0 = x2*b1 - b2
	}
	return b0
}

// ChebyshevT evaluates T_n at x for arbitrary real degree through
// T_n(x) = 2F1(-n, n; 1/2; (1-x)/2).
func ChebyshevT(n, x float64) float64 {
	return specfun.Hyp2F1(-n, n, 0.5, 0.5*(1-x))
}

// ChebyshevU evaluates U_n at x for arbitrary real degree through
// U_n(x) = (n+1) 2F1(-n, n+2; 3/2; (1-x)/2).
func ChebyshevU(n, x float64) float64 {
	return (n + 1) * specfun.Hyp2F1(-n, n+2, 1.5, 0.5*(1-x))
}

// ChebyshevSInt evaluates S_n(x) = U_n(x/2), orthogonal on [-2, 2].
func ChebyshevSInt(n int, x float64) float64 {
	return ChebyshevUInt(n, 0.5*x)
}

// ChebyshevS is the arbitrary-degree form of ChebyshevSInt.
func ChebyshevS(n, x float64) float64 {
	return ChebyshevU(n, 0.5*x)
}

// ChebyshevCInt evaluates C_n(x) = 2 T_n(x/2), orthogonal on [-2, 2]. Its
// degree-0 value is 2 under this normalization.
func ChebyshevCInt(n int, x float64) float64 {
	return 2 * ChebyshevTInt(n, 0.5*x)
}

// ChebyshevC is the arbitrary-degree form of ChebyshevCInt.
func ChebyshevC(n, x float64) float64 {
	return 2 * ChebyshevT(n, 0.5*x)
}

// ShiftedChebyshevTInt evaluates T*_n(x) = T_n(2x-1) on [0, 1].
func ShiftedChebyshevTInt(n int, x float64) float64 {
	return ChebyshevTInt(n, 2*x-1)
}

// ShiftedChebyshevT is the arbitrary-degree form of ShiftedChebyshevTInt.
func ShiftedChebyshevT(n, x float64) float64 {
	return ChebyshevT(n, 2*x-1)
}

// ShiftedChebyshevUInt evaluates U*_n(x) = U_n(2x-1) on [0, 1].
func ShiftedChebyshevUInt(n int, x float64) float64 {
	return ChebyshevUInt(n, 2*x-1)
}

// ShiftedChebyshevU is the arbitrary-degree form of ShiftedChebyshevUInt.
func ShiftedChebyshevU(n, x float64) float64 {
	return ChebyshevU(n, 2*x-1)
}
