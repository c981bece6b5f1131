package poly

// Derivatives of the integer-degree evaluators via the standard shift
// identities. Each reduces the derivative at degree n to an evaluation at
// degree n-1, so the cost and stability match the underlying recurrence.

// GradJacobiInt evaluates d/dx P_n^(alpha,beta)(x) through
// (n+alpha+beta+1)/2 P_(n-1)^(alpha+1,beta+1)(x).
func GradJacobiInt(n int, alpha, beta, x float64) float64 {
	if n <= 0 {
		return 0
	}
	return 0.5 * (float64(n) + alpha + beta + 1) * JacobiInt(n-1, alpha+1, beta+1, x)
}

// GradLegendreInt evaluates d/dx P_n(x).
func GradLegendreInt(n int, x float64) float64 {
	return GradJacobiInt(n, 0, 0, x)
}

// GradChebyshevTInt evaluates d/dx T_n(x) = n U_(n-1)(x).
func GradChebyshevTInt(n int, x float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n) * ChebyshevUInt(n-1, x)
}

// GradGenLaguerreInt evaluates d/dx L_n^(alpha)(x) = -L_(n-1)^(alpha+1)(x).
func GradGenLaguerreInt(n int, alpha, x float64) float64 {
	if n <= 0 {
		return 0
	}
	return -GenLaguerreInt(n-1, alpha+1, x)
}

// GradHermiteInt evaluates d/dx H_n(x) = 2n H_(n-1)(x).
func GradHermiteInt(n int, x float64) float64 {
	if n <= 0 {
		return 0
	}
	return 2 * float64(n) * HermiteInt(n-1, x)
}
