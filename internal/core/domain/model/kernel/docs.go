// Package kernel contains the shared value objects of the domain model:
// UUID identifiers and geographic locations, together with the great-circle
// distance and transit-time math derived from them.
//
// All value objects in this package are immutable and constructor-guarded:
// the zero value is invalid and fails Validate, so entities built on top of
// them can trust their invariants without re-checking.
package kernel
