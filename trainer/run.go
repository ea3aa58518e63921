package trainer

import "context"
import "math"
import "math/rand"
import "time"

import "github.com/pkg/errors"

import "github.com/neurlang/subwordsgd/datasets"
import "github.com/neurlang/subwordsgd/parallel"
import "github.com/neurlang/subwordsgd/sgd"

// ErrDiverged is returned when an epoch ends with a non finite loss.
var ErrDiverged = errors.New("trainer: loss is not finite")

// Report summarises a run.
type Report struct {
	MeanLoss []float64 // mean per pair loss of each completed epoch
	Steps    uint64    // SGD steps taken
}

// Last returns the mean loss of the last completed epoch, or NaN.
func (r Report) Last() float64 {
	if len(r.MeanLoss) == 0 {
		return math.NaN()
	}
	return r.MeanLoss[len(r.MeanLoss)-1]
}

type workerState struct {
	loss  float64
	steps uint64
}

// Run trains m on pairs for cfg.Epochs epochs. Pairs are checked against the
// model once, then trained through the unchecked step. When cfg.Shuffle is set
// the pairs are permuted in place. Cancelling ctx stops the run between
// batches and returns ctx.Err() along with the epochs completed so far.
func Run(ctx context.Context, m *sgd.Model, pairs datasets.Pairs, cfg Config) (Report, error) {
	cfg = cfg.withDefaults()
	l := cfg.logger()
	var report Report

	if err := pairs.Validate(m.VocabSize(), m.ContextTable().Rows()); err != nil {
		return report, err
	}
	if pairs.Len() == 0 {
		return report, nil
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	tr := m.Trusted()
	states := make([]parallel.Padded[workerState], cfg.Threads)

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if cfg.Shuffle {
			pairs.Shuffle(rng)
		}
		for i := range states {
			states[i].V = workerState{}
		}
		start := time.Now()

		parallel.Shards(pairs.Len(), cfg.Threads, func(worker int, r parallel.Range) {
			st := &states[worker].V
			scratch := make([]float64, m.Dim())
			for i := r.Start; i < r.End; i += cfg.BatchSize {
				if ctx.Err() != nil {
					return
				}
				b := pairs.Slice(i, min(i+cfg.BatchSize, r.End))
				st.loss += tr.StepBatch(b.Words, b.Contexts, b.Labels, scratch, cfg.Alpha)
				st.steps += uint64(b.Len())
			}
		})

		var loss float64
		var steps uint64
		for i := range states {
			loss += states[i].V.loss
			steps += states[i].V.steps
		}
		report.Steps += steps
		if err := ctx.Err(); err != nil {
			return report, err
		}
		mean := loss / float64(steps)
		if math.IsNaN(mean) || math.IsInf(mean, 0) {
			return report, errors.Wrapf(ErrDiverged, "epoch %d", epoch)
		}
		report.MeanLoss = append(report.MeanLoss, mean)
		l.Printf("epoch %d mean loss %.6f, %d steps, %.1fk pairs/s", epoch, mean, steps,
			float64(steps)/time.Since(start).Seconds()/1e3)
	}
	return report, nil
}
