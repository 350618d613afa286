package calculator

import "freight-cost/internal/models"

// Per-mile operating cost in dollars.
const (
	DieselRatePerMile   = 0.58 // $3.78/gal at 6.5 MPG
	ElectricRatePerMile = 0.19 // 1.5 kWh/mile at $0.12/kWh
)

// ComputeCostComparison prices a trip for both truck types. Amounts are not
// rounded, and zero miles is priced at zero.
func ComputeCostComparison(miles int) models.CostComparison {
	diesel := float64(miles) * DieselRatePerMile
	electric := float64(miles) * ElectricRatePerMile
	return models.CostComparison{
		Miles:         miles,
		DieselTotal:   diesel,
		ElectricTotal: electric,
		Savings:       diesel - electric,
	}
}
