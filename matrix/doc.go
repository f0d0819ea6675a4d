// Package matrix provides the panel containers and kernels used by factor terms.
//
// A panel is a row-major two-dimensional array: rows are time steps, columns are
// entities (e.g., tradable assets). The package provides:
//
//   - Dense: float64 panel with safe accessors, zero-copy row windows (SliceRows)
//     and an opt-in finite-only numeric policy.
//   - Mask: boolean panel of the same layout, used for validity masks and for
//     the outputs of filters.
//   - Row-wise kernels (MapRows, RowPercentile) and masking helpers (FillMasked).
//   - Central validators (ValidateNotNil, ValidateSameShape, ValidateMaskShape).
//
// NaN is the missing-data marker throughout; see options.go for the policy.
package matrix
