// Package tablature reconstructs tabular structure from the raw output of an
// OCR engine: given recognized text fragments with bounding geometry, it
// infers the grid of rows and columns, assigns each fragment to a cell,
// resolves spanning cells, and emits fixed-width validated records.
//
// Basic usage:
//
//	recs, warnings, err := tablature.FromFragments("page-1", frags).Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tablature.FormatWarnings(warnings))
//	}
//
// With options:
//
//	recs, _, err := tablature.FromFragments("page-1", frags).
//	    GapMultiplier(2.0).
//	    Rulings(hints).
//	    Validate(rules).
//	    Records()
//
// For advanced use cases, the lower-level cluster, tables, and records
// packages are also available.
package tablature

import (
	"github.com/gridform/tablature/model"
)

// FromFragments starts a reconstruction for one page's fragments, with
// default configuration. Each configuration method returns a new
// Reconstructor, so a partially configured pipeline can be reused safely.
//
// Example:
//
//	recs, warnings, err := tablature.FromFragments("page-1", frags).Records()
func FromFragments(pageID string, frags []model.Fragment) *Reconstructor {
	return &Reconstructor{
		pageID: pageID,
		frags:  frags,
		config: DefaultConfig(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	grid := tablature.Must(tablature.FromFragments("p", frags).Grid())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords wraps a call to Records() and panics if the error is non-nil,
// discarding warnings. It is intended for scripts or tests.
//
// Example:
//
//	recs := tablature.MustRecords(tablature.FromFragments("p", frags).Records())
func MustRecords(recs []model.Record, _ []Warning, err error) []model.Record {
	if err != nil {
		panic(err)
	}
	return recs
}
