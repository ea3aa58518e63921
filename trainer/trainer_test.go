package trainer

import "bytes"
import "context"
import "errors"
import "math/rand"
import "strings"
import "testing"

import "github.com/neurlang/subwordsgd/datasets"
import "github.com/neurlang/subwordsgd/embedding"
import "github.com/neurlang/subwordsgd/sgd"

var testConfig = datasets.SyntheticConfig{
	Vocab:    50,
	Subwords: 100,
	Contexts: 20,
	Dim:      8,
	MaxRun:   3,
	Pairs:    2000,
	Seed:     1,
}

func newModel(t *testing.T, syn datasets.Synthetic, seed int64) *sgd.Model {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	word := embedding.Alloc(testConfig.Subwords, testConfig.Dim)
	word.Randomize(rng, 1)
	ctx := embedding.Alloc(testConfig.Contexts, testConfig.Dim)
	ctx.Randomize(rng, 1)
	m, err := sgd.NewFromTables(word, ctx, syn.Index)
	if err != nil {
		t.Fatalf("NewFromTables: %v", err)
	}
	return m
}

func TestRunReducesLoss(t *testing.T) {
	syn := datasets.NewSynthetic(testConfig)
	m := newModel(t, syn, 2)

	before, err := Evaluate(m, syn.Pairs, 100)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	var buf bytes.Buffer
	cfg := Config{Threads: 1, BatchSize: 128, Epochs: 30, Alpha: 0.05, Shuffle: true, Seed: 3}
	cfg.SetOutput(&buf)
	report, err := Run(context.Background(), m, syn.Pairs, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.MeanLoss) != 30 || report.Steps != 30*2000 {
		t.Fatalf("report: %d epochs, %d steps", len(report.MeanLoss), report.Steps)
	}
	if report.Last() >= report.MeanLoss[0] {
		t.Fatalf("loss did not fall: %v", report.MeanLoss)
	}
	after, err := Evaluate(m, syn.Pairs, 100)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if after >= before {
		t.Fatalf("evaluated loss %v -> %v", before, after)
	}
	if !strings.Contains(buf.String(), "epoch 29 mean loss") {
		t.Fatalf("log missing last epoch:\n%s", buf.String())
	}
}

func TestRunDeterministicSingleThread(t *testing.T) {
	syn := datasets.NewSynthetic(testConfig)
	cfg := Config{Threads: 1, BatchSize: 100, Epochs: 3, Alpha: 0.05, Shuffle: true, Seed: 5}

	a := newModel(t, syn, 7)
	ra, err := Run(context.Background(), a, syn.Pairs, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	syn = datasets.NewSynthetic(testConfig)
	b := newModel(t, syn, 7)
	rb, err := Run(context.Background(), b, syn.Pairs, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := range ra.MeanLoss {
		if ra.MeanLoss[i] != rb.MeanLoss[i] {
			t.Fatalf("epoch %d: %v != %v", i, ra.MeanLoss[i], rb.MeanLoss[i])
		}
	}
}

func TestRunParallel(t *testing.T) {
	syn := datasets.NewSynthetic(testConfig)
	m := newModel(t, syn, 2)
	report, err := Run(context.Background(), m, syn.Pairs, Config{Threads: 4, BatchSize: 64, Epochs: 2, Alpha: 0.01})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Steps != 2*2000 {
		t.Fatalf("Steps = %d", report.Steps)
	}
}

func TestRunDiverges(t *testing.T) {
	syn := datasets.NewSynthetic(testConfig)
	m := newModel(t, syn, 2)
	_, err := Run(context.Background(), m, syn.Pairs, Config{Epochs: 5, Alpha: 1e4})
	if !errors.Is(err, ErrDiverged) {
		t.Fatalf("got %v, want ErrDiverged", err)
	}
}

func TestRunCancelled(t *testing.T) {
	syn := datasets.NewSynthetic(testConfig)
	m := newModel(t, syn, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := Run(ctx, m, syn.Pairs, Config{Epochs: 5, Alpha: 0.01})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if len(report.MeanLoss) != 0 || report.Steps != 0 {
		t.Fatalf("cancelled run trained: %+v", report)
	}
}

func TestRunRejectsBadPairs(t *testing.T) {
	syn := datasets.NewSynthetic(testConfig)
	m := newModel(t, syn, 2)
	var pairs datasets.Pairs
	pairs.Append(0, uint32(testConfig.Contexts), 1)
	if _, err := Run(context.Background(), m, pairs, Config{}); !errors.Is(err, datasets.ErrPair) {
		t.Fatalf("got %v, want ErrPair", err)
	}
}

func TestSampleSize(t *testing.T) {
	for _, tt := range []struct {
		n    int
		sig  byte
		want func(int) bool
	}{
		{0, 95, func(s int) bool { return s == 0 }},
		{10, 95, func(s int) bool { return s > 0 && s <= 10 }},
		{1000000, 95, func(s int) bool { return s > 300 && s < 500 }},
		{1000000, 99, func(s int) bool { return s > 10000 }},
		{123, 100, func(s int) bool { return s == 123 }},
	} {
		if got := sampleSize(tt.n, tt.sig); !tt.want(got) {
			t.Errorf("sampleSize(%d, %d) = %d", tt.n, tt.sig, got)
		}
	}
}
