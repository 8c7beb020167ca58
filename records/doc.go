// Package records assembles grid rows into fixed-width output records and
// provides the post-processing normalizations historical registers need:
// ditto ("do") resolution and section-heading propagation.
//
// Assembly never widens or narrows a row: every record has exactly the
// grid's declared column count, with empty cells carried as empty strings
// and the NoDataConfidence sentinel. Normalization is opt-in and runs after
// validation-free assembly, since it rewrites cell text.
package records
