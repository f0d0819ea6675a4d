package term

import "strconv"

// Column is a loadable leaf: a named raw input (e.g. "close", "volume") whose
// values are supplied by a data layer outside this module. It has no inputs
// and a window length of 0.
type Column struct {
	Name  string
	Type  DType
	Scope Domain // "" means GenericDomain
}

var (
	_ Node      = Column{}
	_ Validator = Column{}
)

// Kind is KindFilter for bool columns and KindFactor otherwise.
func (c Column) Kind() Kind {
	if c.Type == Bool {
		return KindFilter
	}

	return KindFactor
}

// StaticIdentity renders "Column(name=<quoted>,dtype=<dtype>)".
func (c Column) StaticIdentity() string {
	return "Column(name=" + strconv.Quote(c.Name) + ",dtype=" + c.Type.String() + ",domain=" + string(c.Domain()) + ")"
}

// Inputs is always empty.
func (c Column) Inputs() []ID { return nil }

// DType returns the declared column type.
func (c Column) DType() DType { return c.Type }

// WindowLength is 0: a column contributes only its current cross-section.
func (c Column) WindowLength() int { return 0 }

// Domain returns Scope, defaulting to GenericDomain.
func (c Column) Domain() Domain {
	if c.Scope == "" {
		return GenericDomain
	}

	return c.Scope
}

// Validate rejects empty names.
func (c Column) Validate() error {
	if c.Name == "" {
		return termErrorf("Column", ErrEmptyColumnName)
	}

	return nil
}

// String returns the column name.
func (c Column) String() string { return c.Name }
