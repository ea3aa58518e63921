package main

import "context"
import "flag"
import "math/rand"
import "os"
import "os/signal"
import "runtime"
import "syscall"

import "github.com/neurlang/subwordsgd/datasets"
import "github.com/neurlang/subwordsgd/embedding"
import "github.com/neurlang/subwordsgd/sgd"
import "github.com/neurlang/subwordsgd/trainer"

func main() {

	vocab := flag.Int("vocab", 10000, "number of words")
	subwords := flag.Int("subwords", 50000, "rows of the subword table")
	contexts := flag.Int("contexts", 10000, "rows of the context table")
	dim := flag.Int("dim", 100, "embedding width")
	maxrun := flag.Int("maxrun", 6, "maximum subwords per word")
	pairs := flag.Int("pairs", 1000000, "number of training pairs")
	epochs := flag.Int("epochs", 5, "passes over the pairs")
	threads := flag.Int("threads", runtime.NumCPU(), "worker goroutines")
	batch := flag.Int("batch", 10000, "pairs per batch step")
	alpha := flag.Float64("alpha", 0.025, "learning rate")
	seed := flag.Int64("seed", 1, "prng seed")
	logfile := flag.String("log", "", "append epoch losses to this file")
	pgo := flag.Bool("pgo", false, "write a cpu profile to default.pgo")
	flag.Parse()

	if *pgo {
		defer startProfile()()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	println("generating", *pairs, "pairs over", *vocab, "words, row kernel lanes:", sgd.Lanes())
	syn := datasets.NewSynthetic(datasets.SyntheticConfig{
		Vocab:    *vocab,
		Subwords: *subwords,
		Contexts: *contexts,
		Dim:      *dim,
		MaxRun:   *maxrun,
		Pairs:    *pairs,
		Seed:     *seed,
	})

	word := embedding.Alloc(*subwords, *dim)
	ctxTable := embedding.Alloc(*contexts, *dim)
	rng := rand.New(rand.NewSource(*seed + 1))
	word.Randomize(rng, 1/float64(*dim))
	ctxTable.Randomize(rng, 1/float64(*dim))

	model, err := sgd.NewFromTables(word, ctxTable, syn.Index)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cfg := trainer.Config{
		Threads:   *threads,
		BatchSize: *batch,
		Epochs:    *epochs,
		Alpha:     *alpha,
		Shuffle:   true,
		Seed:      *seed,
	}
	if *logfile != "" {
		cfg.SetLogger(*logfile)
	} else {
		cfg.SetOutput(os.Stderr)
	}

	report, err := trainer.Run(ctx, model, syn.Pairs, cfg)
	if err != nil {
		println(err.Error())
	}
	loss, err := trainer.Evaluate(model, syn.Pairs, 99)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
	println("[steps]", report.Steps, "[last epoch loss]", report.Last(), "[sampled loss]", loss)
}
