package anomaly

import (
	"labsync/internal/domain/sample"
)

// FeatureNames is the fixed extraction order of the scoring vector. The
// trained model expects exactly this layout.
var FeatureNames = []string{"pH", "temperature", "concentration", "volume"}

// ExtractFeatures builds the fixed-order feature vector from a sample
// payload. Missing or non-numeric values default to 0; extraction never
// fails, degraded input just yields a degraded score.
func ExtractFeatures(data sample.Metadata) []float64 {
	features := make([]float64, len(FeatureNames))
	for i, name := range FeatureNames {
		if v, ok := data.Float(name); ok {
			features[i] = v
		}
	}
	return features
}
