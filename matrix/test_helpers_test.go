// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic panel fixtures for kernel tests.
//   • Offer a wrapper that forces the generic (non-*Dense) code paths.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/matrix"
)

// nan is the missing-data marker used across fixtures.
var nan = math.NaN()

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the fallback (At-based) paths and compare
// them with the *Dense fast paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return d
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return d
}

// MustMask builds a *Mask from literal rows or fails the test.
func MustMask(t *testing.T, rows [][]bool) *matrix.Mask {
	t.Helper()
	mk, err := matrix.MaskFromRows(rows)
	require.NoError(t, err)

	return mk
}

// requirePanel asserts that got equals want cell by cell, NaN matching NaN.
func requirePanel(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllCloseNaN(MustRows(t, want), got, 0, 1e-12)
	require.NoError(t, err)
	require.Truef(t, ok, "panel mismatch:\nwant %v\ngot\n%v", want, got)
}
