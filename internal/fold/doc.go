// Package fold implements the fold assignment algorithm: deduplication of
// group identifiers, seeded shuffling, and the contiguous range layout used
// to slice the group sequence into train and test sets.
//
// Everything here is pure and allocation-explicit; the kfold package wires it
// to sources, logging and metrics.
package fold
