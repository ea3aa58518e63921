// Package main trains subword embeddings on a generated problem whose labels
// come from a hidden model of the same shape, printing the mean loss of every
// epoch. It is a throughput and convergence check for the SGD step.
package main
