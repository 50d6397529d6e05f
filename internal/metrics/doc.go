// Package metrics provides pure metric extractors over the document model.
//
// Extractors measure, they never judge: sentence segmentation, readability
// formulas, lexical scans against closed vocabularies, and structural scans
// of the tag tree. The dimension analyzers in internal/analyze apply
// thresholds to these measurements.
//
// All lexical detectors operate case-insensitively on the plain-text
// projection (via Unicode case folding); heading-case checks in the style
// analyzer are the exception and use original casing.
package metrics
