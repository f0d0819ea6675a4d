package factor

// Factories exposed for tests: each returns ErrInvalidOperator for symbols
// outside its allow-list.
var (
	BinaryOperator          = binaryOperator
	ReflectedBinaryOperator = reflectedBinaryOperator
	UnaryOperator           = unaryOperator
	FunctionApplication     = functionApplication
)
