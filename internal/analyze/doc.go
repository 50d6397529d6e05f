// Package analyze is the judgment layer: four independent dimension
// analyzers (readability, structure, completeness, style) that apply fixed
// thresholds to the measurements from internal/metrics, plus the aggregator
// that assembles a full report and derives prioritized recommendations.
//
// Thresholds and suggestion strings are deliberately constant. Reports for
// identical input must be identical across runs because downstream
// automation gates on them.
package analyze
