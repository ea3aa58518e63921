package sgd

// Real is the element type of the embedding tables and labels.
type Real = float64

// Uint is the index type of words, contexts and subwords.
type Uint = uint32
