package ir

import "github.com/Nadezhda94/SimpleJava/report"

// Node is the common interface of IR expressions and statements.  Emitted
// method trees are statements for `main` and expressions for ordinary methods.
//
// IR trees are immutable once constructed and own their children exclusively:
// sharing a node across two parent edges is prohibited because a later
// canonicalizer is permitted to rewrite nodes in place.
type Node interface {
	node()
}

// Exp represents an IR expression: a tree that produces a value.
type Exp interface {
	Node

	exp()
}

// Stm represents an IR statement: a tree that produces an effect.
type Stm interface {
	Node

	stm()
}

// ExpList is an ordered sequence of expressions.  It is used only as CALL
// arguments.
type ExpList []Exp

// -----------------------------------------------------------------------------

// Const represents an integer constant.
type Const struct {
	// The value of the constant.
	Value int32
}

// Name represents the address of a label.
type Name struct {
	// The referenced label.
	Label *Label
}

// TempExpr represents a read of a temporary.
type TempExpr struct {
	// The referenced temporary.
	Temp *Temp
}

// Binop represents a binary operator application.  The operator must be one of
// the enumerated binary operators.
type Binop struct {
	Op int

	Left, Right Exp
}

// Mem represents a word read from the address denoted by the operand.
type Mem struct {
	// The address expression.
	Addr Exp
}

// Call represents a call of the function denoted by Func with the given
// arguments.
type Call struct {
	// The callee address expression.
	Func Exp

	// The argument expressions in call order.
	Args ExpList
}

// Eseq represents a statement executed for effect before the value expression
// is evaluated.
type Eseq struct {
	Stm Stm
	Exp Exp
}

func (*Const) node()    {}
func (*Name) node()     {}
func (*TempExpr) node() {}
func (*Binop) node()    {}
func (*Mem) node()      {}
func (*Call) node()     {}
func (*Eseq) node()     {}

func (*Const) exp()    {}
func (*Name) exp()     {}
func (*TempExpr) exp() {}
func (*Binop) exp()    {}
func (*Mem) exp()      {}
func (*Call) exp()     {}
func (*Eseq) exp()     {}

// -----------------------------------------------------------------------------

// Move represents a write of Src into the location denoted by Dst.  The
// destination must syntactically be a temporary or a memory word.
type Move struct {
	Dst, Src Exp
}

// NewMove creates a new move statement.  Construction checks the shape of the
// destination: any other destination is a translator bug.
func NewMove(dst, src Exp) *Move {
	switch dst.(type) {
	case *TempExpr, *Mem:
		return &Move{Dst: dst, Src: src}
	default:
		report.ReportICE("malformed MOVE: destination must be TEMP or MEM")
		return nil
	}
}

// ExpStm represents an expression evaluated for effect with its value
// discarded.
type ExpStm struct {
	Exp Exp
}

// Jump represents an unconditional jump to a label.
type Jump struct {
	// The jump target.
	Target *Label
}

// CJump represents a conditional jump: when the relation holds between the two
// operands control transfers to IfTrue, otherwise to IfFalse.  Both labels
// must appear as LABEL statements in the enclosing method tree.
type CJump struct {
	// The relational operator.  This must be one of the enumerated relational
	// operators.
	Rel int

	Left, Right Exp

	IfTrue, IfFalse *Label
}

// Seq represents two statements executed in order.
type Seq struct {
	First, Second Stm
}

// LabelStm marks a code location referenced by jumps.
type LabelStm struct {
	// The marked label.
	Label *Label
}

func (*Move) node()     {}
func (*ExpStm) node()   {}
func (*Jump) node()     {}
func (*CJump) node()    {}
func (*Seq) node()      {}
func (*LabelStm) node() {}

func (*Move) stm()     {}
func (*ExpStm) stm()   {}
func (*Jump) stm()     {}
func (*CJump) stm()    {}
func (*Seq) stm()      {}
func (*LabelStm) stm() {}
