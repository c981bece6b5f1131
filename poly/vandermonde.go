package poly

import "gonum.org/v1/gonum/mat"

// EvalFunc is an integer-degree evaluator of a single polynomial family,
// with any shape parameters already bound.
type EvalFunc func(n int, x float64) float64

// Eval evaluates f at degree n over all points xs.
func Eval(f EvalFunc, n int, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(n, x)
	}
	return out
}

// Vandermonde builds the generalized Vandermonde matrix V with
// V(i, j) = f(j, xs[i]) for degrees j = 0..order. Row i is the degree sweep
// at point xs[i]; the matrix maps modal coefficients to nodal values.
func Vandermonde(xs []float64, order int, f EvalFunc) *mat.Dense {
	V := mat.NewDense(len(xs), order+1, nil)
	for i, x := range xs {
		for j := 0; j <= order; j++ {
			V.Set(i, j, f(j, x))
		}
	}
	return V
}

// JacobiVandermonde builds the Vandermonde matrix of P_j^(alpha,beta) over
// xs for degrees 0..order.
func JacobiVandermonde(xs []float64, alpha, beta float64, order int) *mat.Dense {
	return Vandermonde(xs, order, func(n int, x float64) float64 {
		return JacobiInt(n, alpha, beta, x)
	})
}

// LegendreVandermonde builds the Vandermonde matrix of P_j over xs for
// degrees 0..order.
func LegendreVandermonde(xs []float64, order int) *mat.Dense {
	return Vandermonde(xs, order, LegendreInt)
}

// ChebyshevTVandermonde builds the Vandermonde matrix of T_j over xs for
// degrees 0..order.
func ChebyshevTVandermonde(xs []float64, order int) *mat.Dense {
	return Vandermonde(xs, order, ChebyshevTInt)
}
