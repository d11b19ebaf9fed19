// Trains the anomaly detection model on a synthetic baseline and writes it
// where the server expects it. Run once before first deployment, or rerun
// with a different seed to refresh the model file.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"labsync/internal/ml/anomaly"
)

func main() {
	var (
		out     = flag.String("o", "models/anomaly_detector.json", "output model path")
		samples = flag.Int("n", 1000, "synthetic training set size")
		trees   = flag.Int("trees", anomaly.DefaultTrees, "ensemble size")
		seed    = flag.Int64("seed", anomaly.DefaultSeed, "random seed")
	)
	flag.Parse()

	if err := run(*out, *samples, *trees, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(out string, samples, trees int, seed int64) error {
	fmt.Println("Training anomaly detection model...")

	rng := rand.New(rand.NewSource(seed))
	data, labels := anomaly.SyntheticLabeled(samples, rng)

	forest := anomaly.NewForest(trees, anomaly.DefaultSubsample)
	if err := forest.Fit(data, rng); err != nil {
		return err
	}

	m := evaluate(forest, data, labels)
	fmt.Printf("Accuracy:  %.3f\n", m.accuracy)
	fmt.Printf("Precision: %.3f\n", m.precision)
	fmt.Printf("Recall:    %.3f\n", m.recall)
	fmt.Printf("F1 Score:  %.3f\n", m.f1)

	if err := forest.Save(out); err != nil {
		return err
	}
	fmt.Println("Model saved to", out)
	return nil
}

type metrics struct {
	accuracy  float64
	precision float64
	recall    float64
	f1        float64
}

// evaluate compares forest predictions against the ground truth with the
// anomaly class as positive.
func evaluate(f *anomaly.Forest, data [][]float64, labels []int) metrics {
	var correct, tp, fp, fn int
	for i, row := range data {
		dec, err := f.DecisionFunction(row)
		if err != nil {
			continue
		}
		pred := 1
		if dec < 0 {
			pred = -1
		}
		if pred == labels[i] {
			correct++
		}
		switch {
		case pred == -1 && labels[i] == -1:
			tp++
		case pred == -1 && labels[i] == 1:
			fp++
		case pred == 1 && labels[i] == -1:
			fn++
		}
	}

	var m metrics
	m.accuracy = float64(correct) / float64(len(labels))
	if tp+fp > 0 {
		m.precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.recall = float64(tp) / float64(tp+fn)
	}
	if m.precision+m.recall > 0 {
		m.f1 = 2 * m.precision * m.recall / (m.precision + m.recall)
	}
	return m
}
