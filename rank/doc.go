// Package rank assigns ascending ranks to the values of one cross-section.
//
// Five tie-break methods are supported:
//
//	average — tied values share the mean of the ranks they span
//	min     — tied values share the lowest rank they span
//	max     — tied values share the highest rank they span
//	dense   — like min, but the next distinct value gets the next integer
//	ordinal — every value gets a distinct rank; ties keep input order
//
// Ranks start at 1. NaN is ordered after every number and never ties, so a
// row's missing values take the worst ranks. Callers that treat missing data
// as "not applicable" (factor.Rank) overwrite those cells afterwards.
//
// Example, row [3, 1, 1]:
//
//	average → [3, 1.5, 1.5]
//	min     → [3, 1, 1]
//	max     → [3, 2, 2]
//	dense   → [2, 1, 1]
//	ordinal → [3, 1, 2]
package rank
