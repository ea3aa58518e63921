package sgd

import "github.com/pkg/errors"

var (
	// ErrDim is returned by New and Init when dim is zero.
	ErrDim = errors.New("sgd: dim must be positive")
	// ErrShape is returned by New and Init when the table lengths disagree with the scalars.
	ErrShape = errors.New("sgd: table shape mismatch")
	// ErrWordRange is returned when a word index is not below the vocabulary size.
	ErrWordRange = errors.New("sgd: word index out of range")
	// ErrContextRange is returned when a context index is past the context table.
	ErrContextRange = errors.New("sgd: context index out of range")
	// ErrScratch is returned when the scratch buffer is shorter than dim.
	ErrScratch = errors.New("sgd: scratch shorter than dim")
	// ErrBatch is returned when the batch arrays differ in length.
	ErrBatch = errors.New("sgd: batch arrays differ in length")
)
