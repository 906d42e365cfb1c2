// Package kernel provides core domain primitives used throughout the
// production planning model, following Domain-Driven Design principles.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//   - Date: a value object for calendar days used to key planning cells
//
// These primitives enforce domain invariants at construction time and are
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
