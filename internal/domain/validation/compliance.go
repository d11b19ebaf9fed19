package validation

import (
	"labsync/internal/domain/sample"
)

// ComplianceScore measures audit completeness of a payload. It starts at
// 1.0, deducts 0.2 when no creator is recorded and 0.2 when no timestamp is
// recorded, flooring at zero. Key presence is what counts, not the value.
func ComplianceScore(data sample.Metadata) float64 {
	score := 1.0
	if _, ok := data["created_by"]; !ok {
		score -= 0.2
	}
	if _, ok := data["timestamp"]; !ok {
		score -= 0.2
	}
	if score < 0 {
		return 0
	}
	return score
}
