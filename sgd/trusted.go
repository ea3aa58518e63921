package sgd

// Trusted runs steps without per pair index checks. It is meant for hot loops
// whose indices were validated when the pairs were built. A bad index still
// panics on the slice bounds check rather than corrupting memory.
type Trusted struct {
	m *Model
}

// Trusted returns the unchecked entry points of m.
func (m *Model) Trusted() Trusted {
	return Trusted{m: m}
}

// Step is Model.Step without checks.
func (t Trusted) Step(w, c Uint, y Real, scratch []Real, alpha Real) Real {
	return t.m.step(w, c, y, scratch, alpha)
}

// StepBatch is Model.StepBatch without checks. The batch length is len(words).
func (t Trusted) StepBatch(words, contexts []Uint, labels []Real, scratch []Real, alpha Real) float64 {
	return t.m.batch(words, contexts, labels, scratch, alpha)
}
