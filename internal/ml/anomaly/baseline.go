package anomaly

import (
	"math/rand"
)

// DefaultSeed fixes the synthetic baseline so that every process trains an
// identical fallback model.
const DefaultSeed = 42

// Typical bench values per feature: pH, temperature, concentration, volume.
var (
	baselineLoc   = []float64{7.0, 25.0, 1.0, 50.0}
	baselineScale = []float64{0.5, 2.0, 0.1, 5.0}
	anomalyLow    = []float64{0.0, -10.0, 0.0, 0.0}
	anomalyHigh   = []float64{14.0, 100.0, 10.0, 200.0}
)

// SyntheticBaseline generates n rows of synthetic assay measurements: 90%
// drawn around typical bench values, 10% uniform outliers across the full
// instrument ranges.
func SyntheticBaseline(n int, rng *rand.Rand) [][]float64 {
	data, _ := SyntheticLabeled(n, rng)
	return data
}

// SyntheticLabeled generates the same distribution as SyntheticBaseline and
// also returns the ground truth: +1 for baseline rows, -1 for outliers.
func SyntheticLabeled(n int, rng *rand.Rand) ([][]float64, []int) {
	if n < 2 {
		n = 2
	}
	normal := n * 9 / 10
	data := make([][]float64, 0, n)
	labels := make([]int, 0, n)

	for i := 0; i < normal; i++ {
		row := make([]float64, len(baselineLoc))
		for j := range row {
			row[j] = rng.NormFloat64()*baselineScale[j] + baselineLoc[j]
		}
		data = append(data, row)
		labels = append(labels, 1)
	}
	for i := normal; i < n; i++ {
		row := make([]float64, len(anomalyLow))
		for j := range row {
			row[j] = anomalyLow[j] + rng.Float64()*(anomalyHigh[j]-anomalyLow[j])
		}
		data = append(data, row)
		labels = append(labels, -1)
	}

	rng.Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
		labels[i], labels[j] = labels[j], labels[i]
	})
	return data, labels
}

// DefaultForest trains the built-in fallback model on a seeded synthetic
// baseline. It is used whenever no model file is available.
func DefaultForest() (*Forest, error) {
	rng := rand.New(rand.NewSource(DefaultSeed))
	f := NewForest(DefaultTrees, DefaultSubsample)
	if err := f.Fit(SyntheticBaseline(1000, rng), rng); err != nil {
		return nil, err
	}
	return f, nil
}
