// Package datasets holds in-memory training pairs for the subword SGD step.
package datasets

import "math/rand"

import "github.com/pkg/errors"

// ErrPair is returned by Validate for a pair the model cannot train.
var ErrPair = errors.New("datasets: pair out of range")

// Pairs is a set of (word, context, label) triples stored as parallel arrays,
// the layout the batch step consumes.
type Pairs struct {
	Words    []uint32
	Contexts []uint32
	Labels   []float64
}

// Len returns the number of pairs.
func (p *Pairs) Len() int {
	return len(p.Words)
}

// Append adds one pair.
func (p *Pairs) Append(w, c uint32, y float64) {
	p.Words = append(p.Words, w)
	p.Contexts = append(p.Contexts, c)
	p.Labels = append(p.Labels, y)
}

// Slice returns the pairs [i, j) sharing storage with p.
func (p *Pairs) Slice(i, j int) Pairs {
	return Pairs{
		Words:    p.Words[i:j:j],
		Contexts: p.Contexts[i:j:j],
		Labels:   p.Labels[i:j:j],
	}
}

// Shuffle permutes the pairs in place.
func (p *Pairs) Shuffle(rng *rand.Rand) {
	rng.Shuffle(p.Len(), func(i, j int) {
		p.Words[i], p.Words[j] = p.Words[j], p.Words[i]
		p.Contexts[i], p.Contexts[j] = p.Contexts[j], p.Contexts[i]
		p.Labels[i], p.Labels[j] = p.Labels[j], p.Labels[i]
	})
}

// Validate checks that the arrays agree in length and every index is below
// vocab words and contexts rows.
func (p *Pairs) Validate(vocab, contexts int) error {
	if len(p.Contexts) != len(p.Words) || len(p.Labels) != len(p.Words) {
		return errors.Wrapf(ErrPair, "%d words, %d contexts, %d labels", len(p.Words), len(p.Contexts), len(p.Labels))
	}
	for i := range p.Words {
		if int(p.Words[i]) >= vocab {
			return errors.Wrapf(ErrPair, "pair %d: word %d, vocabulary %d", i, p.Words[i], vocab)
		}
		if int(p.Contexts[i]) >= contexts {
			return errors.Wrapf(ErrPair, "pair %d: context %d, %d rows", i, p.Contexts[i], contexts)
		}
	}
	return nil
}
