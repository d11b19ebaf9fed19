package anomaly

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

const (
	// DefaultTrees is the ensemble size used when training a model.
	DefaultTrees = 100
	// DefaultSubsample is the per-tree subsample size, capped by the
	// training set size.
	DefaultSubsample = 256
	// DefaultContamination is the expected share of outliers in the
	// training data, used to calibrate the decision threshold.
	DefaultContamination = 0.1
)

const eulerGamma = 0.5772156649015329

// Forest is an isolation forest: an ensemble of randomized partitioning
// trees. Points that isolate in few splits score close to 1, points deep
// inside the data mass score close to 0.
type Forest struct {
	Trees         []tree  `json:"trees"`
	Subsample     int     `json:"subsample"`
	Features      int     `json:"features"`
	Contamination float64 `json:"contamination"`
	Offset        float64 `json:"offset"`
}

type tree struct {
	Nodes []node `json:"nodes"`
}

// node is one split of an isolation tree. Feature == -1 marks a leaf, in
// which case Size holds the number of training points that reached it.
type node struct {
	Feature int     `json:"feature"`
	Split   float64 `json:"split,omitempty"`
	Left    int     `json:"left,omitempty"`
	Right   int     `json:"right,omitempty"`
	Size    int     `json:"size,omitempty"`
}

// NewForest returns an untrained forest with the given ensemble size and
// per-tree subsample size. Non-positive arguments fall back to defaults.
func NewForest(trees, subsample int) *Forest {
	if trees <= 0 {
		trees = DefaultTrees
	}
	if subsample <= 0 {
		subsample = DefaultSubsample
	}
	return &Forest{
		Trees:         make([]tree, 0, trees),
		Subsample:     subsample,
		Contamination: DefaultContamination,
	}
}

// Fit trains the forest on the given rows. Every row must have the same
// width. The random source drives subsampling and split selection, so a
// seeded source yields a reproducible model.
func (f *Forest) Fit(data [][]float64, rng *rand.Rand) error {
	if len(data) < 2 {
		return fmt.Errorf("training set too small: %d rows", len(data))
	}
	width := len(data[0])
	if width == 0 {
		return fmt.Errorf("training rows are empty")
	}
	for i, row := range data {
		if len(row) != width {
			return fmt.Errorf("row %d has %d features, want %d", i, len(row), width)
		}
	}

	trees := cap(f.Trees)
	if trees == 0 {
		trees = DefaultTrees
	}
	sub := f.Subsample
	if sub <= 0 || sub > len(data) {
		sub = len(data)
	}
	maxDepth := int(math.Ceil(math.Log2(float64(sub))))
	if maxDepth < 1 {
		maxDepth = 1
	}

	f.Trees = f.Trees[:0]
	f.Subsample = sub
	f.Features = width
	for i := 0; i < trees; i++ {
		idx := rng.Perm(len(data))[:sub]
		var t tree
		buildNode(&t, data, idx, 0, maxDepth, rng)
		f.Trees = append(f.Trees, t)
	}

	f.calibrateOffset(data)
	return nil
}

// buildNode grows one subtree over the rows selected by idx and returns its
// index within t.Nodes.
func buildNode(t *tree, data [][]float64, idx []int, depth, maxDepth int, rng *rand.Rand) int {
	if depth >= maxDepth || len(idx) <= 1 {
		t.Nodes = append(t.Nodes, node{Feature: -1, Size: len(idx)})
		return len(t.Nodes) - 1
	}

	feature, split, ok := pickSplit(data, idx, rng)
	if !ok {
		// All remaining rows are identical across every feature.
		t.Nodes = append(t.Nodes, node{Feature: -1, Size: len(idx)})
		return len(t.Nodes) - 1
	}

	var left, right []int
	for _, i := range idx {
		if data[i][feature] <= split {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	pos := len(t.Nodes)
	t.Nodes = append(t.Nodes, node{Feature: feature, Split: split})
	l := buildNode(t, data, left, depth+1, maxDepth, rng)
	r := buildNode(t, data, right, depth+1, maxDepth, rng)
	t.Nodes[pos].Left = l
	t.Nodes[pos].Right = r
	return pos
}

// pickSplit chooses a random feature with spread and a uniform split point
// strictly inside its range.
func pickSplit(data [][]float64, idx []int, rng *rand.Rand) (int, float64, bool) {
	width := len(data[idx[0]])
	eligible := make([]int, 0, width)
	for q := 0; q < width; q++ {
		lo, hi := featureRange(data, idx, q)
		if hi > lo {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return 0, 0, false
	}
	q := eligible[rng.Intn(len(eligible))]
	lo, hi := featureRange(data, idx, q)
	return q, lo + rng.Float64()*(hi-lo), true
}

func featureRange(data [][]float64, idx []int, q int) (float64, float64) {
	lo, hi := data[idx[0]][q], data[idx[0]][q]
	for _, i := range idx[1:] {
		v := data[i][q]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Score returns the anomaly score of x in (0, 1); higher means more
// isolated.
func (f *Forest) Score(x []float64) (float64, error) {
	if len(f.Trees) == 0 {
		return 0, fmt.Errorf("forest is not trained")
	}
	if len(x) != f.Features {
		return 0, fmt.Errorf("feature vector has %d values, want %d", len(x), f.Features)
	}

	var total float64
	for _, t := range f.Trees {
		total += t.pathLength(x)
	}
	mean := total / float64(len(f.Trees))
	return math.Exp2(-mean / avgPathLength(f.Subsample)), nil
}

// DecisionFunction returns the calibrated decision value for x. Values
// above zero are inliers, below zero outliers; the typical range is about
// [-0.5, 0.5].
func (f *Forest) DecisionFunction(x []float64) (float64, error) {
	s, err := f.Score(x)
	if err != nil {
		return 0, err
	}
	return -s - f.Offset, nil
}

// calibrateOffset sets the decision threshold so that a Contamination share
// of the training data falls below zero.
func (f *Forest) calibrateOffset(data [][]float64) {
	scores := make([]float64, len(data))
	for i, row := range data {
		s, err := f.Score(row)
		if err != nil {
			f.Offset = -0.5
			return
		}
		scores[i] = -s
	}
	f.Offset = percentile(scores, 100*f.Contamination)
}

func (t tree) pathLength(x []float64) float64 {
	depth := 0.0
	i := 0
	for {
		n := t.Nodes[i]
		if n.Feature < 0 {
			return depth + avgPathLength(n.Size)
		}
		if x[n.Feature] <= n.Split {
			i = n.Left
		} else {
			i = n.Right
		}
		depth++
	}
}

// avgPathLength is the expected path length of an unsuccessful BST search
// over n points, the standard isolation forest normalizer.
func avgPathLength(n int) float64 {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	default:
		fn := float64(n)
		return 2*(math.Log(fn-1)+eulerGamma) - 2*(fn-1)/fn
	}
}

// percentile computes the q-th percentile with linear interpolation between
// the two nearest ranks.
func percentile(values []float64, q float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
