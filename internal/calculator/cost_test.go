package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCostComparison(t *testing.T) {
	for _, miles := range []int{1, 50, 300, 1200, 2750, 100000} {
		got := ComputeCostComparison(miles)
		assert.Equal(t, miles, got.Miles)
		assert.InDelta(t, float64(miles)*0.58, got.DieselTotal, 1e-9)
		assert.InDelta(t, float64(miles)*0.19, got.ElectricTotal, 1e-9)
		assert.InDelta(t, got.DieselTotal-got.ElectricTotal, got.Savings, 1e-9)
	}
}

func TestComputeCostComparison_Zero(t *testing.T) {
	got := ComputeCostComparison(0)
	assert.Zero(t, got.DieselTotal)
	assert.Zero(t, got.ElectricTotal)
	assert.Zero(t, got.Savings)
}

func TestComputeCostComparison_KnownTrip(t *testing.T) {
	got := ComputeCostComparison(1200)
	assert.InDelta(t, 696.0, got.DieselTotal, 1e-9)
	assert.InDelta(t, 228.0, got.ElectricTotal, 1e-9)
	assert.InDelta(t, 468.0, got.Savings, 1e-9)
}
