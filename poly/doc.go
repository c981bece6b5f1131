// Package poly evaluates the classical orthogonal polynomials: Jacobi,
// Gegenbauer, Chebyshev of the first through fourth kinds with their shifted
// variants, Legendre and shifted Legendre, Laguerre and generalized
// Laguerre, and the physicist's and statistician's Hermite polynomials.
//
// Each family has two entry points. The Int form takes a non-negative
// integer degree and runs the numerically stable three-term recurrence in
// O(n); a negative degree evaluates to 0. The general form takes an
// arbitrary real degree and goes through the hypergeometric representation
// in package specfun; for integer degrees it agrees with the Int form up to
// the conditioning of the hypergeometric sum. Jacobi, Gegenbauer, Chebyshev
// T/U, Legendre and generalized Laguerre additionally accept a complex
// argument through their Cmplx forms.
//
// Every function is a pure, stateless computation on scalars. There is no
// shared state anywhere in the package, so calls are safe from any number
// of goroutines. Domain problems never raise errors: poles and out-of-range
// arguments propagate NaN or ±Inf from the underlying primitives.
package poly
