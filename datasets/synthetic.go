package datasets

import "math/rand"

import "github.com/neurlang/subwordsgd/embedding"
import "github.com/neurlang/subwordsgd/sgd"
import "github.com/neurlang/subwordsgd/subword"

// SyntheticConfig sizes a generated problem.
type SyntheticConfig struct {
	Vocab    int // number of words
	Subwords int // rows of the word side table
	Contexts int // rows of the context table
	Dim      int // embedding width
	MaxRun   int // subwords per word are drawn from [1, MaxRun]
	Pairs    int
	Seed     int64
}

// Synthetic is a generated problem: subword runs for every word and pairs
// labelled by a hidden model of the same shape, so a model trained on them
// can drive the loss towards zero.
type Synthetic struct {
	Index subword.Index
	Pairs Pairs
}

// NewSynthetic generates a problem. It panics on a non positive size.
func NewSynthetic(cfg SyntheticConfig) Synthetic {
	if cfg.Vocab <= 0 || cfg.Subwords <= 0 || cfg.Contexts <= 0 || cfg.Dim <= 0 {
		panic("datasets: bad synthetic config")
	}
	if cfg.MaxRun <= 0 {
		cfg.MaxRun = 1
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	runs := make([][]uint32, cfg.Vocab)
	for w := range runs {
		for k := 1 + rng.Intn(cfg.MaxRun); k > 0; k-- {
			runs[w] = append(runs[w], uint32(rng.Intn(cfg.Subwords)))
		}
	}
	index := subword.FromRuns(runs)

	word := embedding.Alloc(cfg.Subwords, cfg.Dim)
	word.Randomize(rng, 2)
	ctx := embedding.Alloc(cfg.Contexts, cfg.Dim)
	ctx.Randomize(rng, 2)
	hidden, err := sgd.NewFromTables(word, ctx, index)
	if err != nil {
		panic(err)
	}

	var out = Synthetic{Index: index}
	vec := make([]float64, cfg.Dim)
	for i := 0; i < cfg.Pairs; i++ {
		w := uint32(rng.Intn(cfg.Vocab))
		c := uint32(rng.Intn(cfg.Contexts))
		if err := hidden.WordVector(w, vec); err != nil {
			panic(err)
		}
		var y float64
		for j, v := range ctx.Row(int(c)) {
			y += vec[j] * v
		}
		out.Pairs.Append(w, c, y)
	}
	return out
}
