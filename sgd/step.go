package sgd

import "github.com/pkg/errors"

// step is the unchecked kernel shared by the checked and trusted entry points.
//
// z is used twice: first it holds the mean of the subword rows, then the word
// gradient that every subword in the run receives. For each j, the context
// gradient must read z[j] before z[j] is overwritten with the word gradient.
func (m *Model) step(w, c Uint, y Real, z []Real, alpha Real) Real {
	run := m.sub.Run(int(w))
	n := Real(len(run))
	z = z[:m.dim]
	ctx := m.context.Row(int(c))

	m.mean(run, z)
	var dot Real
	for j := range z {
		dot += z[j] * ctx[j]
	}

	g := dot - y
	loss := 0.5 * g * g
	g *= alpha

	for j := range z {
		wordG := g * ctx[j] / n
		ctxG := g * z[j]
		z[j] = wordG
		ctx[j] -= ctxG
	}
	for _, sw := range run {
		subRow(m.word.Row(int(sw)), z)
	}
	return loss
}

func (m *Model) check(w, c Uint) error {
	if int(w) >= m.vocab {
		return errors.Wrapf(ErrWordRange, "word %d, vocabulary %d", w, m.vocab)
	}
	if int(c) >= m.context.Rows() {
		return errors.Wrapf(ErrContextRange, "context %d, table has %d rows", c, m.context.Rows())
	}
	return nil
}

// Step trains the pair (w, c) towards label y with learning rate alpha and
// returns the squared error loss 0.5*(dot-y)^2 measured before the update.
//
// scratch must hold at least Dim values. Its content after the call is the
// word gradient and carries no meaning for the caller. On error nothing is
// updated.
func (m *Model) Step(w, c Uint, y Real, scratch []Real, alpha Real) (Real, error) {
	if len(scratch) < m.dim {
		return 0, errors.Wrapf(ErrScratch, "len %d, dim %d", len(scratch), m.dim)
	}
	if err := m.check(w, c); err != nil {
		return 0, err
	}
	return m.step(w, c, y, scratch, alpha), nil
}

// StepBatch applies Step to every pair in order, all sharing scratch and
// alpha, so each update is visible to the next pair. It returns the summed
// loss. All pairs are checked before the first update; on error nothing is
// updated.
func (m *Model) StepBatch(words, contexts []Uint, labels []Real, scratch []Real, alpha Real) (float64, error) {
	if len(contexts) != len(words) || len(labels) != len(words) {
		return 0, errors.Wrapf(ErrBatch, "%d words, %d contexts, %d labels", len(words), len(contexts), len(labels))
	}
	if len(scratch) < m.dim {
		return 0, errors.Wrapf(ErrScratch, "len %d, dim %d", len(scratch), m.dim)
	}
	for i := range words {
		if err := m.check(words[i], contexts[i]); err != nil {
			return 0, errors.Wrapf(err, "pair %d", i)
		}
	}
	return m.batch(words, contexts, labels, scratch, alpha), nil
}

func (m *Model) batch(words, contexts []Uint, labels []Real, scratch []Real, alpha Real) (loss float64) {
	contexts = contexts[:len(words)]
	labels = labels[:len(words)]
	for i, w := range words {
		loss += float64(m.step(w, contexts[i], labels[i], scratch, alpha))
	}
	return
}
