// Package factorset builds factor graphs from YAML documents.
//
// A document declares columns, then factors and filters that refer to
// earlier names. Everything is built through the public factor methods, so a
// document and the equivalent Go code produce identical terms.
//
//	columns:
//	  - name: close
//	  - name: open
//	  - name: tradable
//	    dtype: bool
//	factors:
//	  - name: spread
//	    op: "-"
//	    args: [close, open]
//	  - name: ret
//	    op: "/"
//	    args: [spread, open]
//	  - name: ret_rank
//	    rank: ret
//	    method: average
//	filters:
//	  - name: liquid
//	    percentile_between: {factor: ret, min: 10, max: 90}
//	  - name: up
//	    op: ">"
//	    args: [ret, 0]
//
// Binary entries take two args, each a name or a number; a number on the left
// uses the reflected operator. "op: -" with one arg negates, and "func"
// applies one of expression.MathFuncs to its single arg.
package factorset
