// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Panels carry NaN as the canonical "missing" marker (a ranked cell that is not
// applicable, an entity that had no print on a given step). The strict finite-only
// guard therefore defaults to OFF here and is opt-in per Dense via WithFiniteOnly.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	// false ⇒ NaN/±Inf are legal cell values (missing-data convention).
	DefaultValidateNaNInf = false

	// DefaultRowSeparator is used by String() between values of a row.
	DefaultRowSeparator = ", "
)

// DenseOption mutates construction-time policy of a Dense.
type DenseOption func(*Dense)

// WithFiniteOnly turns on the finite-only guard: Set and Apply reject NaN/±Inf
// with ErrNaNInf. Use for inputs that must never carry missing values.
func WithFiniteOnly() DenseOption {
	return func(d *Dense) { d.validateNaNInf = true }
}
