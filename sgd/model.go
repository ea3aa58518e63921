// Package sgd implements a stochastic gradient descent step for subword
// embeddings, where a word vector is the mean of its subword vectors and the
// loss is the squared error between its dot product with a context vector and
// a target label.
//
// Tables are borrowed: the Model never copies or allocates them and updates
// them in place. A Model has no locks. Steps on overlapping rows from several
// goroutines race, which Hogwild style callers accept, and Init must not run
// concurrently with any step.
//
// Indices are validated once when the Model is built, and per pair by Step and
// StepBatch. Trusted skips the per pair checks.
package sgd

import "github.com/pkg/errors"

import "github.com/neurlang/subwordsgd/embedding"
import "github.com/neurlang/subwordsgd/subword"

// Model is the context shared by every step: the word side (subword) table,
// the context table and the word to subword runs.
type Model struct {
	vocab   int
	dim     int
	word    embedding.Table
	context embedding.Table
	sub     subword.Index
}

// New builds a Model over the caller owned tables, see Init.
func New(vocabSize Uint, word, context []Real, subwordIdxsLen Uint, subwordIdxs, subwordOffsets []Uint, dim Uint) (*Model, error) {
	m := new(Model)
	if err := m.Init(vocabSize, word, context, subwordIdxsLen, subwordIdxs, subwordOffsets, dim); err != nil {
		return nil, err
	}
	return m, nil
}

// Init replaces the Model state with the given tables.
//
// word holds one row of dim values per subword id, context one row per
// context id. subwordOffsets has one entry per word, and the run of word w
// ends at the next offset or at subwordIdxsLen. On error the previous state
// is kept.
func (m *Model) Init(vocabSize Uint, word, context []Real, subwordIdxsLen Uint, subwordIdxs, subwordOffsets []Uint, dim Uint) error {
	if dim == 0 {
		return ErrDim
	}
	if len(subwordOffsets) != int(vocabSize) {
		return errors.Wrapf(ErrShape, "%d offsets for vocabulary of %d", len(subwordOffsets), vocabSize)
	}
	if len(subwordIdxs) != int(subwordIdxsLen) {
		return errors.Wrapf(ErrShape, "%d subword ids, expected %d", len(subwordIdxs), subwordIdxsLen)
	}
	wt, err := embedding.New(word, int(dim))
	if err != nil {
		return errors.Wrap(err, "word table")
	}
	ct, err := embedding.New(context, int(dim))
	if err != nil {
		return errors.Wrap(err, "context table")
	}
	return m.init(wt, ct, subword.Index{Offsets: subwordOffsets, Idxs: subwordIdxs})
}

// NewFromTables builds a Model from table views sharing one width.
func NewFromTables(word, context embedding.Table, sub subword.Index) (*Model, error) {
	if word.Dim <= 0 {
		return nil, ErrDim
	}
	if context.Dim != word.Dim {
		return nil, errors.Wrapf(ErrShape, "word dim %d, context dim %d", word.Dim, context.Dim)
	}
	m := new(Model)
	if err := m.init(word, context, sub); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) init(word, context embedding.Table, sub subword.Index) error {
	if err := sub.Validate(word.Rows()); err != nil {
		return errors.Wrap(err, "subword index")
	}
	*m = Model{
		vocab:   sub.Words(),
		dim:     word.Dim,
		word:    word,
		context: context,
		sub:     sub,
	}
	return nil
}

// Dim returns the embedding width.
func (m *Model) Dim() int { return m.dim }

// VocabSize returns the number of words.
func (m *Model) VocabSize() int { return m.vocab }

// WordTable returns the borrowed subword table.
func (m *Model) WordTable() embedding.Table { return m.word }

// ContextTable returns the borrowed context table.
func (m *Model) ContextTable() embedding.Table { return m.context }

// Subwords returns the word to subword runs.
func (m *Model) Subwords() subword.Index { return m.sub }

// WordVector writes the mean of the subword rows of word w into dst.
func (m *Model) WordVector(w Uint, dst []Real) error {
	if int(w) >= m.vocab {
		return errors.Wrapf(ErrWordRange, "word %d, vocabulary %d", w, m.vocab)
	}
	if len(dst) < m.dim {
		return errors.Wrapf(ErrScratch, "len %d, dim %d", len(dst), m.dim)
	}
	m.mean(m.sub.Run(int(w)), dst[:m.dim])
	return nil
}

// mean overwrites z with the average of the rows listed in run.
func (m *Model) mean(run []Uint, z []Real) {
	clear(z)
	for _, sw := range run {
		addRow(z, m.word.Row(int(sw)))
	}
	n := Real(len(run))
	for j := range z {
		z[j] /= n
	}
}
