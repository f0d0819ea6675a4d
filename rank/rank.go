package rank

import (
	"cmp"
	"math"
	"slices"
)

// Data ranks row with the given method and returns a new slice of float64
// ranks (1-based) of the same length. row is not modified.
//
// Implementation:
//   - Stage 1: stable-sort the positions of row by value, NaN last.
//   - Stage 2: walk the sorted positions in runs of equal values; each run
//     [s, e) spans ranks s+1..e and is assigned according to method.
//
// Complexity: O(n log n) time, O(n) space.
func Data(row []float64, method Method) ([]float64, error) {
	if !method.Valid() {
		return nil, UnknownMethodError(string(method))
	}
	n := len(row)
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	// Stage 1: stable order so ordinal ties keep input order.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return compareNaNLast(row[a], row[b])
	})

	if method == Ordinal {
		for k, pos := range order {
			out[pos] = float64(k + 1)
		}
		return out, nil
	}

	// Stage 2: runs of equal values.
	dense := 0
	for s := 0; s < n; {
		e := s + 1
		for e < n && row[order[e]] == row[order[s]] { // NaN != NaN: NaNs never share a run
			e++
		}
		dense++

		var r float64
		switch method {
		case Average:
			r = float64(s+1+e) / 2
		case Min:
			r = float64(s + 1)
		case Max:
			r = float64(e)
		case Dense:
			r = float64(dense)
		}
		for k := s; k < e; k++ {
			out[order[k]] = r
		}
		s = e
	}

	return out, nil
}

// compareNaNLast orders numbers ascending and every NaN after every number.
// Two NaNs compare equal so the stable sort keeps their input order.
func compareNaNLast(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	default:
		return cmp.Compare(a, b)
	}
}
