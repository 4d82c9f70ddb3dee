package settlements

import (
	"math"

	"caseflow-service/internal/pkg/constvars"
)

// ComputeVariance returns the percentage deviation of the final bill from
// the reference amount, rounded to one decimal place, and whether it
// exceeds the director-review threshold. A missing or zero reference makes
// the variance undefined: nil percentage, flag off. Exactly the threshold
// is not flagged.
func ComputeVariance(finalBill, reference *float64) (*float64, bool) {
	if finalBill == nil || reference == nil || *reference == 0 {
		return nil, false
	}
	pct := math.Round(math.Abs(*finalBill-*reference)/(*reference)*1000) / 10
	return &pct, pct > constvars.SettlementVarianceThresholdPct
}
