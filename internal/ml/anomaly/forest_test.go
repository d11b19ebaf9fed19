package anomaly

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clusteredData builds a tight cluster around (1, 1) so that points far away
// isolate quickly.
func clusteredData(n int, rng *rand.Rand) [][]float64 {
	data := make([][]float64, n)
	for i := range data {
		data[i] = []float64{
			1 + rng.NormFloat64()*0.05,
			1 + rng.NormFloat64()*0.05,
		}
	}
	return data
}

func TestForest_FitRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	err := NewForest(10, 32).Fit(nil, rng)
	assert.Error(t, err)

	err = NewForest(10, 32).Fit([][]float64{{1}}, rng)
	assert.Error(t, err)

	ragged := [][]float64{{1, 2}, {1}}
	err = NewForest(10, 32).Fit(ragged, rng)
	assert.Error(t, err)
}

func TestForest_OutlierScoresHigher(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := NewForest(50, 128)
	require.NoError(t, f.Fit(clusteredData(500, rng), rng))

	inlier, err := f.Score([]float64{1, 1})
	require.NoError(t, err)
	outlier, err := f.Score([]float64{10, -10})
	require.NoError(t, err)

	assert.Greater(t, outlier, inlier)
	assert.Greater(t, inlier, 0.0)
	assert.Less(t, outlier, 1.0)
}

func TestForest_DecisionFunctionSign(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := NewForest(50, 128)
	require.NoError(t, f.Fit(clusteredData(500, rng), rng))

	in, err := f.DecisionFunction([]float64{1, 1})
	require.NoError(t, err)
	out, err := f.DecisionFunction([]float64{10, -10})
	require.NoError(t, err)

	assert.Positive(t, in)
	assert.Negative(t, out)
}

func TestForest_DeterministicForSeed(t *testing.T) {
	build := func() *Forest {
		rng := rand.New(rand.NewSource(42))
		f := NewForest(20, 64)
		require.NoError(t, f.Fit(clusteredData(300, rng), rng))
		return f
	}

	a, b := build(), build()
	points := [][]float64{{1, 1}, {0.5, 2}, {-3, 7}}
	for _, p := range points {
		sa, err := a.Score(p)
		require.NoError(t, err)
		sb, err := b.Score(p)
		require.NoError(t, err)
		assert.Equal(t, sa, sb)
	}
}

func TestForest_ScoreRejectsWrongWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := NewForest(10, 32)
	require.NoError(t, f.Fit(clusteredData(100, rng), rng))

	_, err := f.Score([]float64{1, 2, 3})
	assert.Error(t, err)

	_, err = NewForest(10, 32).Score([]float64{1, 2})
	assert.Error(t, err)
}

func TestForest_SaveLoadRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	f := NewForest(20, 64)
	require.NoError(t, f.Fit(clusteredData(200, rng), rng))

	path := filepath.Join(t.TempDir(), "models", "forest.json")
	require.NoError(t, f.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	point := []float64{2, 0.5}
	want, err := f.Score(point)
	require.NoError(t, err)
	got, err := loaded.Score(point)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, f.Offset, loaded.Offset)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestSave_UntrainedModel(t *testing.T) {
	err := NewForest(10, 32).Save(filepath.Join(t.TempDir(), "forest.json"))
	assert.Error(t, err)
}
