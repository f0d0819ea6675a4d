// Package filter implements boolean-valued terms.
//
// A Filter is a handle into a term.Graph. Two node types are provided:
//
//   - NumExprFilter: a comparison expression built by factor.Factor's Lt, Le,
//     Gt, Ge, Ne and Eq methods, evaluated elementwise and ANDed with the
//     validity mask.
//   - PercentileFilter: per-row membership in a percentile band, built by
//     factor.Factor.PercentileBetween.
//
// Filters are produced by the factor package; this package does not import it.
package filter
