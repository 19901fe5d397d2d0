// Package kernel provides the value objects shared by the customs domain model.
//
// The package includes:
//   - UUID: identifier for packages, importers and activity entries
//   - Money: a non-negative amount held in integer cents
//
// Both are immutable and safe for concurrent use.
package kernel
