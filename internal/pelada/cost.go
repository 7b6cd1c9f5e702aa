package pelada

import "math"

// ComputeTotalCost sums the three cost components rounded to 2 decimal
// places. Inputs that are negative or not a number count as 0, so the result
// is always a valid non-negative amount.
func ComputeTotalCost(fieldCost, refereeCost, extraCost float64) float64 {
	sum := sanitizeCost(fieldCost) + sanitizeCost(refereeCost) + sanitizeCost(extraCost)
	return math.Round(sum*100) / 100
}

func sanitizeCost(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// RecomputeTotalCost applies the cost invariants in place: a match without a
// referee carries no referee cost, and the total is always the rounded sum of
// the components.
func (m *Match) RecomputeTotalCost() {
	if !m.RefereePresent {
		m.RefereeCost = 0
	}
	m.TotalCost = ComputeTotalCost(m.FieldCost, m.RefereeCost, m.ExtraCost)
}
