// Package types defines the core data types and collaborator interfaces
// shared by the kfold packages.
//
// The root kfold package re-exports these definitions through type aliases so
// that internal packages can depend on types without importing the root
// package.
package types
