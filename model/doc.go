// Package model defines the data types shared across the reconstruction
// pipeline: geometric primitives (Point, BBox), the immutable OCR Fragment,
// the Band/Cell/Grid structure types, ruling-line hints, and the Record
// output type.
//
// Types here are plain data. Relations between structure types are
// index-based (fragment ids, cell indices) rather than object references,
// which keeps Band, Cell, and Fragment free of cycles and makes the
// structures trivially copyable between pipeline stages.
//
// Coordinates are scan coordinates: origin at the top-left of the page with
// Y increasing downward, matching the output of OCR engines.
package model
