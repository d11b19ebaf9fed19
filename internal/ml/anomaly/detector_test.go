package anomaly

import (
	"path/filepath"
	"testing"

	"labsync/internal/domain/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestExtractFeatures(t *testing.T) {
	tests := []struct {
		name string
		data sample.Metadata
		want []float64
	}{
		{
			name: "all present",
			data: sample.Metadata{"pH": 7.2, "temperature": 25.0, "concentration": 1.1, "volume": 50.0},
			want: []float64{7.2, 25.0, 1.1, 50.0},
		},
		{
			name: "missing default to zero",
			data: sample.Metadata{"pH": 7.2},
			want: []float64{7.2, 0, 0, 0},
		},
		{
			name: "non numeric default to zero",
			data: sample.Metadata{"pH": "acidic", "temperature": 25.0},
			want: []float64{0, 25.0, 0, 0},
		},
		{
			name: "empty payload",
			data: sample.Metadata{},
			want: []float64{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFeatures(tt.data))
		})
	}
}

func TestDetector_NeutralWithoutModel(t *testing.T) {
	d := NewDetector(nil, slog.Default())

	score := d.Score(sample.Metadata{"pH": 7.0})

	assert.Equal(t, NeutralScore, score)
}

func TestDetector_ScoreStaysInUnitInterval(t *testing.T) {
	d := LoadDetector("", slog.Default())

	payloads := []sample.Metadata{
		{"pH": 7.0, "temperature": 25.0, "concentration": 1.0, "volume": 50.0},
		{"pH": 14.0, "temperature": 500.0, "concentration": 10.0, "volume": 200.0},
		{"pH": -5.0, "temperature": -273.0},
		{},
		{"pH": "not a number"},
	}

	for _, p := range payloads {
		score := d.Score(p)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestDetector_OutlierScoresHigherThanBaseline(t *testing.T) {
	d := LoadDetector("", slog.Default())

	typical := d.Score(sample.Metadata{
		"pH": 7.0, "temperature": 25.0, "concentration": 1.0, "volume": 50.0,
	})
	extreme := d.Score(sample.Metadata{
		"pH": 13.9, "temperature": 99.0, "concentration": 9.9, "volume": 199.0,
	})

	assert.Less(t, typical, 0.5)
	assert.Greater(t, extreme, typical)
}

func TestLoadDetector_FallsBackToBaseline(t *testing.T) {
	d := LoadDetector(filepath.Join(t.TempDir(), "missing.json"), slog.Default())

	require.NotNil(t, d.forest)
	score := d.Score(sample.Metadata{"pH": 7.0, "temperature": 25.0, "concentration": 1.0, "volume": 50.0})
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestLoadDetector_ReadsSavedModel(t *testing.T) {
	f, err := DefaultForest()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "anomaly.json")
	require.NoError(t, f.Save(path))

	d := LoadDetector(path, slog.Default())
	require.NotNil(t, d.forest)
	assert.Equal(t, len(f.Trees), len(d.forest.Trees))
}
