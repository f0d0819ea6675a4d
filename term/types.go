// Package term: node contract and value types.
package term

import "fmt"

// ID is a stable handle issued by a Graph. Handles are dense, start at 0 and
// never change for the lifetime of the Graph; two nodes with equal identity
// always receive the same ID, so handle equality IS structural equality.
type ID int

// Kind classifies what a term produces per entity per step.
type Kind uint8

const (
	// KindFactor terms produce a float value.
	KindFactor Kind = iota
	// KindFilter terms produce a boolean value.
	KindFilter
)

// String returns "Factor" or "Filter".
func (k Kind) String() string {
	switch k {
	case KindFactor:
		return "Factor"
	case KindFilter:
		return "Filter"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// DType is the declared value type of a term's output.
type DType uint8

const (
	// Float64 is the only dtype produced by numeric expressions and ranks.
	Float64 DType = iota
	// Int64 is used by integer-valued loadable columns.
	Int64
	// Bool is the dtype of filters.
	Bool
)

// String returns the numpy-style dtype name.
func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("DType(%d)", uint8(d))
	}
}

// ParseDType maps "float64", "int64" and "bool" back to a DType.
func ParseDType(s string) (DType, error) {
	switch s {
	case "float64", "":
		return Float64, nil
	case "int64":
		return Int64, nil
	case "bool":
		return Bool, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownDType, s)
	}
}

// Domain names the universe of entities a term is defined over.
type Domain string

// GenericDomain is the domain of terms that can run against any universe.
const GenericDomain Domain = "GENERIC"

// Node is the immutable description of one term.
//
// StaticIdentity must render the concrete node type and every constructor
// parameter that changes the output (e.g. "Rank(method=ordinal)"); the graph
// appends Inputs to form the full identity used for deduplication.
type Node interface {
	Kind() Kind
	StaticIdentity() string
	Inputs() []ID
	DType() DType
	WindowLength() int
	Domain() Domain
}

// Validator is the optional post-construction hook. Graph.Intern calls
// Validate exactly once, before the node becomes reachable through a handle.
type Validator interface {
	Validate() error
}
