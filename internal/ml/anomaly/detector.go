package anomaly

import (
	"errors"
	"os"

	"labsync/internal/domain/sample"

	"golang.org/x/exp/slog"
)

// NeutralScore is returned whenever scoring cannot be performed. Callers
// treat it as "nothing unusual, nothing confirmed".
const NeutralScore = 0.5

// Detector scores sample payloads against a trained isolation forest.
type Detector struct {
	forest *Forest
	log    *slog.Logger
}

// NewDetector wraps a trained forest. The forest may be nil, in which case
// every score is neutral.
func NewDetector(forest *Forest, log *slog.Logger) *Detector {
	return &Detector{
		forest: forest,
		log:    log.With("component", "anomaly_detector"),
	}
}

// LoadDetector reads the model at path, training the built-in baseline
// model when the file is missing or unreadable. The detector is always
// usable afterwards.
func LoadDetector(path string, log *slog.Logger) *Detector {
	d := &Detector{log: log.With("component", "anomaly_detector")}

	if path != "" {
		f, err := Load(path)
		if err == nil {
			d.log.Info("loaded anomaly model", "path", path, "trees", len(f.Trees))
			d.forest = f
			return d
		}
		if !errors.Is(err, os.ErrNotExist) {
			d.log.Error("failed to load anomaly model", "path", path, "error", err)
		}
	}

	f, err := DefaultForest()
	if err != nil {
		d.log.Error("failed to train fallback anomaly model", "error", err)
		return d
	}
	d.log.Info("trained fallback anomaly model", "trees", len(f.Trees))
	d.forest = f
	return d
}

// Score returns the anomaly score of the payload in [0, 1], higher meaning
// more anomalous. Scoring never fails: any internal problem yields the
// neutral score.
func (d *Detector) Score(data sample.Metadata) float64 {
	if d.forest == nil {
		return NeutralScore
	}

	raw, err := d.forest.DecisionFunction(ExtractFeatures(data))
	if err != nil {
		d.log.Error("anomaly scoring failed", "error", err)
		return NeutralScore
	}

	// Decision values live around [-0.5, 0.5]; flip and shift so that
	// higher means more anomalous, then clamp into [0, 1].
	score := -raw + 0.5
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}
