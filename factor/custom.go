package factor

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/katalvlaran/lvfactor/term"
)

// WindowFunc is the user compute hook of a CustomFactor. It receives one
// window per input, in declaration order; each window has WindowLength rows
// (oldest first) and one column per entity. It returns one value per entity
// for the current step.
type WindowFunc func(windows []matrix.Matrix) ([]float64, error)

// CustomSpec declares a user-defined windowed factor.
type CustomSpec struct {
	// Name identifies the compute logic. Two specs with equal Name, inputs,
	// window length, dtype and domain are the same term.
	Name         string
	Inputs       []Factor
	WindowLength int
	DType        term.DType // must be term.Float64
	Domain       term.Domain
	Compute      WindowFunc
}

// CustomFactor is a factor computed by user code over trailing windows.
type CustomFactor struct {
	name    string
	inputs  []term.ID
	window  int
	dtype   term.DType
	domain  term.Domain
	compute WindowFunc
}

var (
	_ term.Node      = CustomFactor{}
	_ term.Validator = CustomFactor{}
	_ term.Describer = CustomFactor{}
)

// NewCustomFactor validates spec and interns the factor in g.
//
// Errors (first failing check wins):
//   - term.ErrGraphMismatch when an input belongs to another graph;
//   - ErrUnsupportedDataType when DType is not float64;
//   - term.ErrWindowLengthNotSpecified when WindowLength is 0
//     (term.ErrNegativeWindowLength when negative);
//   - ErrMissingCompute when Compute is nil or there are no inputs.
func NewCustomFactor(g *term.Graph, spec CustomSpec) (Factor, error) {
	ids := make([]term.ID, len(spec.Inputs))
	for i, in := range spec.Inputs {
		if in.g != g {
			return Factor{}, factorErrorf("CustomFactor "+spec.Name, term.ErrGraphMismatch)
		}
		ids[i] = in.id
	}
	id, err := g.Intern(CustomFactor{
		name:    spec.Name,
		inputs:  ids,
		window:  spec.WindowLength,
		dtype:   spec.DType,
		domain:  spec.Domain,
		compute: spec.Compute,
	})
	if err != nil {
		return Factor{}, err
	}

	return Factor{g: g, id: id}, nil
}

// Name returns the declared name.
func (c CustomFactor) Name() string { return c.name }

func (c CustomFactor) Kind() term.Kind { return term.KindFactor }

func (c CustomFactor) StaticIdentity() string {
	return "CustomFactor(name=" + strconv.Quote(c.name) +
		",window_length=" + strconv.Itoa(c.window) +
		",dtype=" + c.dtype.String() +
		",domain=" + string(c.Domain()) + ")"
}

func (c CustomFactor) Inputs() []term.ID { return slices.Clone(c.inputs) }

func (c CustomFactor) DType() term.DType { return c.dtype }

func (c CustomFactor) WindowLength() int { return c.window }

func (c CustomFactor) Domain() term.Domain {
	if c.domain == "" {
		return term.GenericDomain
	}

	return c.domain
}

// Validate enforces the float64 dtype, a positive window and a compute hook.
func (c CustomFactor) Validate() error {
	if c.dtype != term.Float64 {
		return factorErrorf("CustomFactor "+c.name, fmt.Errorf("%w %s", ErrUnsupportedDataType, c.dtype))
	}
	if err := term.RequireWindowLength(c); err != nil {
		return err
	}
	if c.compute == nil {
		return factorErrorf("CustomFactor "+c.name, ErrMissingCompute)
	}
	if len(c.inputs) == 0 {
		return factorErrorf("CustomFactor "+c.name+": no inputs", ErrMissingCompute)
	}

	return nil
}

// Describe renders "<name>(<input>, ..., window_length=<n>)".
func (c CustomFactor) Describe(inputs []string) string {
	s := c.name + "("
	for _, in := range inputs {
		s += in + ", "
	}

	return s + "window_length=" + strconv.Itoa(c.window) + ")"
}

// ComputeWindow runs the compute hook for one step after checking that there
// is one window per input, each WindowLength×entities, and that the hook
// returned one value per entity.
func (c CustomFactor) ComputeWindow(windows []matrix.Matrix) ([]float64, error) {
	tag := "CustomFactor " + c.name
	if len(windows) != len(c.inputs) {
		return nil, factorErrorf(fmt.Sprintf("%s: %d windows for %d inputs", tag, len(windows), len(c.inputs)), ErrWindowShape)
	}
	cols := -1
	for k, w := range windows {
		if matrix.ValidateNotNil(w) != nil {
			return nil, factorErrorf(fmt.Sprintf("%s: window %d is nil", tag, k), ErrWindowShape)
		}
		if w.Rows() != c.window {
			return nil, factorErrorf(fmt.Sprintf("%s: window %d has %d rows, want %d", tag, k, w.Rows(), c.window), ErrWindowShape)
		}
		if cols >= 0 && w.Cols() != cols {
			return nil, factorErrorf(fmt.Sprintf("%s: window %d has %d entities, want %d", tag, k, w.Cols(), cols), ErrWindowShape)
		}
		cols = w.Cols()
	}

	out, err := c.compute(windows)
	if err != nil {
		return nil, factorErrorf(tag, err)
	}
	if err = matrix.ValidateVecLen(out, cols); err != nil {
		return nil, factorErrorf(fmt.Sprintf("%s: %d outputs for %d entities", tag, len(out), cols), ErrWindowShape)
	}

	return out, nil
}

// ComputeRolling evaluates the factor for every step that has a full window.
// Each input holds steps+WindowLength-1 rows; row t of the result is computed
// from input rows t..t+WindowLength-1. Cells with mask false are NaN; mask
// may be nil and otherwise must be steps×entities.
//
// Complexity: O(steps * cost(Compute)); windows are zero-copy row slices.
func (c CustomFactor) ComputeRolling(inputs []matrix.Matrix, mask *matrix.Mask) (*matrix.Dense, error) {
	tag := "CustomFactor " + c.name
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(inputs) != len(c.inputs) {
		return nil, factorErrorf(fmt.Sprintf("%s: %d inputs, want %d", tag, len(inputs), len(c.inputs)), ErrWindowShape)
	}

	// 1. Normalize inputs to Dense and check they agree in shape.
	dense := make([]*matrix.Dense, len(inputs))
	for k, in := range inputs {
		d, err := matrix.AsDense(in)
		if err != nil {
			return nil, factorErrorf(tag, err)
		}
		if k > 0 && (d.Rows() != dense[0].Rows() || d.Cols() != dense[0].Cols()) {
			return nil, factorErrorf(fmt.Sprintf("%s: input %d shape differs", tag, k), ErrWindowShape)
		}
		dense[k] = d
	}
	steps := dense[0].Rows() - c.window + 1
	if steps < 1 {
		return nil, factorErrorf(fmt.Sprintf("%s: %d rows for window %d", tag, dense[0].Rows(), c.window), ErrWindowShape)
	}

	// 2. Slide.
	out, err := matrix.NewNaN(steps, dense[0].Cols())
	if err != nil {
		return nil, factorErrorf(tag, err)
	}
	windows := make([]matrix.Matrix, len(dense))
	for t := 0; t < steps; t++ {
		for k, d := range dense {
			w, err := d.SliceRows(t, c.window)
			if err != nil {
				return nil, factorErrorf(tag, err)
			}
			windows[k] = w
		}
		vals, err := c.ComputeWindow(windows)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", t, err)
		}
		for j, v := range vals {
			_ = out.Set(t, j, v)
		}
	}

	// 3. Missing data.
	if mask == nil {
		return out, nil
	}

	return matrix.FillMasked(out, mask, math.NaN())
}
