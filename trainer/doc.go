// Package trainer drives the subword SGD step over in-memory pairs: it splits
// every epoch across worker goroutines, each with its own scratch buffer, and
// reports the mean loss. Workers share the model without locks, Hogwild style.
package trainer
