// Package services provides stateless domain services for the customs domain.
//
// FeeCalculator computes customs duty and VAT from a package's declared items
// and value. It performs no I/O and is deterministic.
package services
