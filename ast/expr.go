package ast

// Expr represents an expression simple or complex.  All expression nodes
// implement the `Expr` interface.
type Expr interface {
	ASTNode

	expr()
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase
}

func (eb ExprBase) expr() {}

// -----------------------------------------------------------------------------

// Enumeration of binary operator kinds.
const (
	OpAdd = iota
	OpSub
	OpMul
	OpDiv
	OpAnd
	OpOr
	OpLess
)

// IntLit represents an integer literal.
type IntLit struct {
	ExprBase

	// The value of the literal.
	Value int32
}

// BoolLit represents a boolean literal.
type BoolLit struct {
	ExprBase

	// The value of the literal.
	Value bool
}

// This represents the receiver reference `this`.
type This struct {
	ExprBase
}

// Ident represents a reference to a named formal, local, or field.
type Ident struct {
	ExprBase

	// The referenced name.
	Name string
}

// Paren represents a parenthesized expression.
type Paren struct {
	ExprBase

	// The wrapped expression.
	Inner Expr
}

// UnaryMinus represents an arithmetic negation.
type UnaryMinus struct {
	ExprBase

	// The negated operand.
	Operand Expr
}

// Not represents a logical negation.
type Not struct {
	ExprBase

	// The negated operand.
	Operand Expr
}

// BinaryOp represents a binary operator application.  The operator kind must
// be one of the enumerated binary operator kinds.
type BinaryOp struct {
	ExprBase

	Op int

	Lhs, Rhs Expr
}

// Length represents an array length read `e.length`.
type Length struct {
	ExprBase

	// The array expression.
	Target Expr
}

// NewArray represents an integer array allocation `new int[size]`.
type NewArray struct {
	ExprBase

	// The element count expression.
	Size Expr
}

// NewObject represents an object allocation `new T()`.
type NewObject struct {
	ExprBase

	// The name of the instantiated class.
	ClassName string
}

// Invoke represents a method invocation.  Dispatch is static: the callee is
// resolved against the static class of the receiver.
type Invoke struct {
	ExprBase

	// The receiver expression.
	Recv Expr

	// The name of the invoked method.
	Method string

	// The argument expressions in source order.
	Args []Expr
}
