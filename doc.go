// Package kfold provides group-aware K-fold partitioning for cross-validation.
//
// Records that share a group key (for example, several scans of the same
// patient) must never be split between the train and test side of a
// cross-validation round, or the model is evaluated on data it has already
// seen. kfold partitions the distinct group identifiers into a fixed number of
// disjoint, contiguous folds and hands back (train, test) pairs, either as
// group identifiers or expanded to the full records of a table.
//
// # Quick Start
//
//	cfg := kfold.DefaultConfig()
//	cfg.Seed = kfold.Seed(42)
//
//	p, err := kfold.New(patientIDs, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for fold, split := range p.All() {
//	    train(split.Train)
//	    evaluate(fold, split.Test)
//	}
//
// # Fold Layout
//
// Construction runs once:
//
//	group keys → dedup (first-seen order) → optional seeded shuffle → contiguous ranges
//
// With count groups and n folds, the first count%n folds hold count/n+1 groups
// and the rest hold count/n. Fold f's test set is its range; its train set is
// every group before the range followed by every group after it.
//
// # Tables
//
// NewFromTable accepts any types.Table: something that can list the group key
// of each record and select records by a set of group keys. The source package
// ships in-memory implementations (Records, FrameTable). Every record of a
// group lands on the same side of every split, and record order is preserved.
//
// # Concurrency
//
// A Partitioner is immutable after construction and safe for concurrent use.
// Iteration state lives in a Cursor (Folds) or in the range-over-func sequence
// (All); each consumer should own its cursor.
package kfold
