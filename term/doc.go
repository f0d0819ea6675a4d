// Package term implements the term base that factor expressions are built on.
//
// A term is an immutable node of a computation graph with declared inputs, a
// value type, a lookback window length and a domain. Terms live in a Graph
// arena and are addressed by stable integer handles (ID):
//
//   - Intern deduplicates by structural identity (node type, constructor
//     parameters, ordered inputs), so two equal terms share one ID and
//     handle comparison is the equality test used by expression merging.
//   - Each new node is validated exactly once, before it gets a handle.
//   - ExecutionOrder lists any set of terms inputs-before-dependents, which
//     is the only ordering contract a scheduler needs.
//
// Quick ASCII example (close - open, ranked):
//
//	close   open
//	    \   /
//	  NumExpr(x_0 - x_1)
//	       |
//	      Rank
package term
