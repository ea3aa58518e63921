package trainer

import "math"

import "github.com/neurlang/subwordsgd/datasets"
import "github.com/neurlang/subwordsgd/sgd"

// sampleSize calculates the statistically sufficient sample size
// for a given dataset size N and significance level (0–100).
func sampleSize(N int, significance byte) int {
	if significance >= 100 {
		return N
	}

	z := zScoreFromAlpha(100 - significance)

	// worst case proportion
	p := 0.5
	e := float64(100-significance) * 0.01

	ss := math.Pow(z, 2) * p * (1 - p) / math.Pow(e, 2)

	// finite population correction
	corrected := ss * float64(N) / (float64(N) - 1 + ss)

	if int(corrected) > N {
		return N
	}
	return int(corrected)
}

// zScoreFromAlpha returns the Z-score for a given alpha level
// Common: 90% => 1.645, 95% => 1.96, 99% => 2.576
func zScoreFromAlpha(alpha byte) float64 {
	switch {
	case alpha <= 1:
		return 2.576
	case alpha <= 5:
		return 1.96
	case alpha <= 10:
		return 1.645
	default:
		return 1.96
	}
}

// Evaluate returns the mean squared error loss of m over a leading sample of
// pairs sized for the given significance, without updating m. Pairs should
// be shuffled beforehand for the sample to be representative.
func Evaluate(m *sgd.Model, pairs datasets.Pairs, significance byte) (float64, error) {
	n := sampleSize(pairs.Len(), significance)
	if n == 0 {
		return 0, nil
	}
	vec := make([]float64, m.Dim())
	var loss float64
	for i := 0; i < n; i++ {
		if err := m.WordVector(pairs.Words[i], vec); err != nil {
			return 0, err
		}
		c := int(pairs.Contexts[i])
		if c >= m.ContextTable().Rows() {
			return 0, sgd.ErrContextRange
		}
		var dot float64
		for j, v := range m.ContextTable().Row(c) {
			dot += vec[j] * v
		}
		g := dot - pairs.Labels[i]
		loss += 0.5 * g * g
	}
	return loss / float64(n), nil
}
