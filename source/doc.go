// Package source provides built-in group sources and tables.
//
// A group source tells a partitioner which group each record belongs to. A
// table additionally selects records by group membership, which lets the
// partitioner return full train and test record sets. The package includes:
//
//   - Slice: a plain list of group identifiers
//   - Records: in-memory rows plus a function returning each row's group key
//   - FrameTable: a column-oriented Frame keyed by a named column
//
// Custom sources can be implemented by satisfying types.GroupSource or
// types.Table.
package source
