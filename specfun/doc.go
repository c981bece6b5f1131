// Package specfun provides the scalar special-function primitives that the
// polynomial evaluators in package poly are built on: the generalized
// binomial coefficient and the Gauss and Kummer hypergeometric functions for
// real and complex arguments.
//
// All functions follow a fail-soft IEEE convention. Out-of-domain inputs and
// parameter poles produce NaN or ±Inf rather than an error; callers are
// expected to interpret the special values.
package specfun
