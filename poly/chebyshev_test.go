package poly

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestChebyshevLowDegrees(t *testing.T) {
	for _, x := range []float64{-1, -0.4, 0, 0.3, 1, 2.5} {
		assert.Equal(t, 1.0, ChebyshevTInt(0, x))
		assert.Equal(t, x, ChebyshevTInt(1, x))
		assert.Equal(t, 1.0, ChebyshevUInt(0, x))
		assert.Equal(t, 2*x, ChebyshevUInt(1, x))
	}
}

func TestChebyshevRecurrenceProperty(t *testing.T) {
	// T_(n+1) = 2x T_n - T_(n-1), and the same for U.
	for n := 1; n <= 12; n++ {
		for _, x := range []float64{-0.9, -0.3, 0.2, 0.8} {
			wantT := 2*x*ChebyshevTInt(n, x) - ChebyshevTInt(n-1, x)
			assert.InDelta(t, wantT, ChebyshevTInt(n+1, x), 1e-12, "T n=%d x=%v", n, x)
			wantU := 2*x*ChebyshevUInt(n, x) - ChebyshevUInt(n-1, x)
			assert.InDelta(t, wantU, ChebyshevUInt(n+1, x), 1e-12, "U n=%d x=%v", n, x)
		}
	}
}

func TestChebyshevEndpointsExact(t *testing.T) {
	// The difference form keeps the endpoint values exact: the recurrence
	// runs in small integers there.
	for n := 0; n <= 30; n++ {
		sign := 1.0
		if n%2 == 1 {
			sign = -1
		}
		assert.Equal(t, 1.0, ChebyshevTInt(n, 1), "T_%d(1)", n)
		assert.Equal(t, sign, ChebyshevTInt(n, -1), "T_%d(-1)", n)
		assert.Equal(t, float64(n+1), ChebyshevUInt(n, 1), "U_%d(1)", n)
	}
}

func TestChebyshevTrigIdentity(t *testing.T) {
	// T_n(cos t) = cos nt at degree high enough to expose instability.
	const n = 50
	for _, theta := range []float64{0.3, 1.1, 2.5} {
		want := math.Cos(n * theta)
		got := ChebyshevTInt(n, math.Cos(theta))
		assert.InDelta(t, want, got, 1e-10, "theta=%v", theta)
	}
}

func TestChebyshevDerivedAdapters(t *testing.T) {
	pairs := []struct {
		n int
		x float64
	}{
		{0, 0.2}, {1, -1.4}, {2, 0.9}, {3, 1.7}, {5, -0.3}, {9, 0.5},
	}
	for _, pr := range pairs {
		name := fmt.Sprintf("n=%d x=%v", pr.n, pr.x)
		assert.Equal(t, ChebyshevUInt(pr.n, pr.x/2), ChebyshevSInt(pr.n, pr.x), "S "+name)
		assert.Equal(t, 2*ChebyshevTInt(pr.n, pr.x/2), ChebyshevCInt(pr.n, pr.x), "C "+name)
		assert.Equal(t, ChebyshevTInt(pr.n, 2*pr.x-1), ShiftedChebyshevTInt(pr.n, pr.x), "T* "+name)
		assert.Equal(t, ChebyshevUInt(pr.n, 2*pr.x-1), ShiftedChebyshevUInt(pr.n, pr.x), "U* "+name)
	}
}

func TestChebyshevTGeneralMatchesInt(t *testing.T) {
	checkGeneralMatchesInt(t, ChebyshevT, ChebyshevTInt, intervalXs, skipLeftEndpoint)
}

func TestChebyshevUGeneralMatchesInt(t *testing.T) {
	checkGeneralMatchesInt(t, ChebyshevU, ChebyshevUInt, intervalXs, skipLeftEndpoint)
}

func TestChebyshevDerivedGeneralForms(t *testing.T) {
	// The general forms of the derived families compose the base general
	// evaluators the same way the Int forms compose the recurrences.
	for _, n := range []float64{0, 1, 3, 6} {
		for _, x := range []float64{0.1, 0.45, 0.8} {
			assert.Equal(t, ChebyshevU(n, x/2), ChebyshevS(n, x))
			assert.Equal(t, 2*ChebyshevT(n, x/2), ChebyshevC(n, x))
			assert.Equal(t, ChebyshevT(n, 2*x-1), ShiftedChebyshevT(n, x))
			assert.Equal(t, ChebyshevU(n, 2*x-1), ShiftedChebyshevU(n, x))
		}
	}
}

func TestChebyshevSAtTwo(t *testing.T) {
	// S_n(2) = U_n(1) = n+1 checks the argument rescaling end to end.
	for n := 0; n <= 6; n++ {
		assert.Equal(t, float64(n+1), ChebyshevSInt(n, 2))
	}
}

func TestChebyshevDifferenceFormNearOne(t *testing.T) {
	// Close to the endpoint the difference form must track cos(n acos x)
	// without the cancellation a naive recurrence reading suffers.
	x := 1 - 1e-9
	for _, n := range []int{10, 25} {
		want := math.Cos(float64(n) * math.Acos(x))
		got := ChebyshevTInt(n, x)
		assert.True(t, scalar.EqualWithinAbsOrRel(got, want, 1e-9, 1e-9),
			"n=%d: got %v want %v", n, got, want)
	}
}
