package testutil

import (
	"math"
	"testing"
)

func TestRequireNearlyEqualPasses(t *testing.T) {
	RequireNearlyEqual(t, 1.00004, 1.0, 1e-4)
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3.000001}, 1e-5)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1, math.MaxFloat64})
}
