package expression

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/lvfactor/matrix"
)

// resultKind selects the output type a template is compiled for.
type resultKind uint8

const (
	floatResult resultKind = iota
	boolResult
)

func (k resultKind) String() string {
	if k == boolResult {
		return "bool"
	}

	return "float64"
}

// mathFuncImpls backs MathFuncs; names follow numpy.
var mathFuncImpls = map[string]func(float64) float64{
	"sin":     math.Sin,
	"cos":     math.Cos,
	"tan":     math.Tan,
	"arcsin":  math.Asin,
	"arccos":  math.Acos,
	"arctan":  math.Atan,
	"sinh":    math.Sinh,
	"cosh":    math.Cosh,
	"tanh":    math.Tanh,
	"arcsinh": math.Asinh,
	"arccosh": math.Acosh,
	"arctanh": math.Atanh,
	"log":     math.Log,
	"log10":   math.Log10,
	"log1p":   math.Log1p,
	"exp":     math.Exp,
	"expm1":   math.Expm1,
	"sqrt":    math.Sqrt,
	"abs":     math.Abs,
}

// fmodName is the function the float "%" operator is rewritten to.
const fmodName = "fmod"

// Evaluator evaluates templates elementwise over panels using expr-lang.
// Compiled programs are cached, so evaluating the same template for many
// steps compiles it once. Safe for concurrent use.
type Evaluator struct {
	cache   *programCache
	logger  *slog.Logger
	options []expr.Option // function and operator registrations shared by every compile
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	o := defaultEvaluatorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Evaluator{
		cache:   newProgramCache(o.cacheSize),
		logger:  o.logger,
		options: compileOptions(),
	}
}

func compileOptions() []expr.Option {
	opts := make([]expr.Option, 0, len(mathFuncImpls)+2)
	for _, name := range MathFuncs {
		fn := mathFuncImpls[name]
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			return fn(params[0].(float64)), nil
		}, new(func(float64) float64)))
	}
	opts = append(opts,
		expr.Function(fmodName, func(params ...any) (any, error) {
			return math.Mod(params[0].(float64), params[1].(float64)), nil
		}, new(func(float64, float64) float64)),
		expr.Operator("%", fmodName),
	)

	return opts
}

// Bind maps inputs positionally onto placeholder names: inputs[i] -> "x_i".
func Bind(inputs []matrix.Matrix) map[string]matrix.Matrix {
	vars := make(map[string]matrix.Matrix, len(inputs))
	for i, m := range inputs {
		vars[VarName(i)] = m
	}

	return vars
}

// EvaluateFloat evaluates template at every cell of the (equally shaped) vars.
//
// Errors:
//   - ErrShapeMismatch: no vars, a nil var, or differing shapes.
//   - ErrEvaluation: the template does not compile against vars, or a cell fails.
func (e *Evaluator) EvaluateFloat(template string, vars map[string]matrix.Matrix) (*matrix.Dense, error) {
	var (
		out  *matrix.Dense
		cols int
	)
	err := e.evaluate(template, vars, floatResult, func(r, c int) error {
		var err error
		out, err = matrix.NewDense(r, c)
		cols = c
		return err
	}, func(idx int, v any) {
		_ = out.Set(idx/cols, idx%cols, v.(float64))
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// EvaluateBool is EvaluateFloat for templates that yield booleans
// (comparisons). NaN compares false for every operator except "!=".
func (e *Evaluator) EvaluateBool(template string, vars map[string]matrix.Matrix) (*matrix.Mask, error) {
	var (
		out  *matrix.Mask
		cols int
	)
	err := e.evaluate(template, vars, boolResult, func(r, c int) error {
		var err error
		out, err = matrix.NewMask(r, c)
		cols = c
		return err
	}, func(idx int, v any) {
		_ = out.Set(idx/cols, idx%cols, v.(bool))
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// evaluate is the shared driver.
//
// Implementation:
//   - Stage 1: validate shapes and flatten every var to row-major data.
//   - Stage 2: fetch (or compile and cache) the program for (kind, names, template).
//   - Stage 3: run the program once per cell on a reused VM and env.
//
// Complexity: O(r*c * cost(template)).
func (e *Evaluator) evaluate(
	template string,
	vars map[string]matrix.Matrix,
	kind resultKind,
	alloc func(r, c int) error,
	store func(idx int, v any),
) error {
	// Stage 1
	names, flat, r, c, err := flattenVars(vars)
	if err != nil {
		return err
	}
	if err = alloc(r, c); err != nil {
		return expressionErrorf("Evaluate", err)
	}

	// Stage 2
	program, err := e.program(template, names, kind)
	if err != nil {
		return err
	}

	// Stage 3
	env := make(map[string]float64, len(names))
	var machine vm.VM
	for idx := 0; idx < r*c; idx++ {
		for k, name := range names {
			env[name] = flat[k][idx]
		}
		v, runErr := machine.Run(program, env)
		if runErr != nil {
			e.logger.Warn("evaluation failed",
				slog.String("template", template),
				slog.Int("row", idx/c),
				slog.Int("col", idx%c),
				slog.String("error", runErr.Error()))
			return fmt.Errorf("Evaluate %q at (%d,%d): %w: %w", template, idx/c, idx%c, ErrEvaluation, runErr)
		}
		store(idx, v)
	}

	return nil
}

// program returns the compiled program for template, compiling on a cache miss.
func (e *Evaluator) program(template string, names []string, kind resultKind) (*vm.Program, error) {
	key := kind.String() + "\x00" + strings.Join(names, ",") + "\x00" + template
	if p, ok := e.cache.get(key); ok {
		return p, nil
	}

	env := make(map[string]float64, len(names))
	for _, name := range names {
		env[name] = 0
	}
	opts := make([]expr.Option, 0, len(e.options)+2)
	opts = append(opts, expr.Env(env))
	opts = append(opts, e.options...)
	if kind == boolResult {
		opts = append(opts, expr.AsBool())
	} else {
		opts = append(opts, expr.AsFloat64())
	}

	p, err := expr.Compile(template, opts...)
	if err != nil {
		e.logger.Warn("compile failed", slog.String("template", template), slog.String("error", err.Error()))
		return nil, fmt.Errorf("Compile %q: %w: %w", template, ErrEvaluation, err)
	}
	e.cache.set(key, p)
	e.logger.Debug("program compiled", slog.String("template", template), slog.String("kind", kind.String()))

	return p, nil
}

// flattenVars checks that vars is non-empty and equally shaped, and returns
// the sorted names with each var's row-major data.
func flattenVars(vars map[string]matrix.Matrix) (names []string, flat [][]float64, r, c int, err error) {
	if len(vars) == 0 {
		return nil, nil, 0, 0, expressionErrorf("Evaluate: no inputs", ErrShapeMismatch)
	}
	names = make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.Sort(names)

	flat = make([][]float64, len(names))
	for k, name := range names {
		m := vars[name]
		if matrix.ValidateNotNil(m) != nil {
			return nil, nil, 0, 0, expressionErrorf("Evaluate: "+name+" is nil", ErrShapeMismatch)
		}
		if k == 0 {
			r, c = m.Rows(), m.Cols()
		} else if m.Rows() != r || m.Cols() != c {
			return nil, nil, 0, 0, expressionErrorf(
				fmt.Sprintf("Evaluate: %s is %dx%d, want %dx%d", name, m.Rows(), m.Cols(), r, c), ErrShapeMismatch)
		}
		if flat[k], err = rowMajor(m); err != nil {
			return nil, nil, 0, 0, expressionErrorf("Evaluate", err)
		}
	}

	return names, flat, r, c, nil
}

// rowMajor returns a row-major copy of m's data.
func rowMajor(m matrix.Matrix) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RawData(), nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i*c+j] = v
		}
	}

	return out, nil
}
