package frame

import (
	"github.com/Nadezhda94/SimpleJava/depm"
	"github.com/Nadezhda94/SimpleJava/ir"
	"github.com/Nadezhda94/SimpleJava/report"
)

// Frame is the activation record of a single method.  It maps source names to
// access expressions: IR expressions denoting the location of the named value
// at runtime.  Three allocation regions exist: formals (with the implicit
// receiver as formal 0), locals, and the fields of the current object.
//
// Every lookup constructs a fresh access expression.  Structurally-equal trees
// are returned for the same name, but no IR node is ever shared between two
// lookups: downstream canonicalization may rewrite nodes in place.
type Frame struct {
	// Name is the entry label of the method this frame belongs to.
	Name *ir.Label

	wordSize int
	pool     *ir.Pool

	// fp is the frame pointer temporary.  Formal k lives at MEM(fp + W*k).
	fp *ir.Temp

	formals map[*depm.Symbol]int
	locals  map[*depm.Symbol]*ir.Temp
	fields  map[*depm.Symbol]int

	formalCount int
	fieldCount  int
}

// New creates a new empty frame for the method with the given entry label.
func New(name *ir.Label, wordSize int, pool *ir.Pool) *Frame {
	return &Frame{
		Name:     name,
		wordSize: wordSize,
		pool:     pool,
		fp:       pool.NewTemp(),
		formals:  make(map[*depm.Symbol]int),
		locals:   make(map[*depm.Symbol]*ir.Temp),
		fields:   make(map[*depm.Symbol]int),
	}
}

// WordSize returns the target word size of the frame in bytes.
func (f *Frame) WordSize() int {
	return f.wordSize
}

// AllocFormal binds the given name to the next formal slot.  The implicit
// receiver must be allocated first so that it occupies formal slot 0.
func (f *Frame) AllocFormal(name *depm.Symbol) {
	f.formals[name] = f.formalCount
	f.formalCount++
}

// AllocLocal binds the given name to a fresh temporary.
func (f *Frame) AllocLocal(name *depm.Symbol) {
	f.locals[name] = f.pool.NewTemp()
}

// AllocField binds the given name to the next field slot of the current
// object.  Fields must be allocated in linearized declaration order: field i
// lives at MEM(this + W*(i+1)).  The header word at offset 0 is reserved.
func (f *Frame) AllocField(name *depm.Symbol) {
	f.fields[name] = f.fieldCount
	f.fieldCount++
}

// Find returns the access expression of the given name.  Resolution order is
// locals, then formals, then fields of the current class.  An unbound name is
// a type-checker bug and raises a name error.
func (f *Frame) Find(name *depm.Symbol) ir.Exp {
	if t, ok := f.locals[name]; ok {
		return &ir.TempExpr{Temp: t}
	}

	if k, ok := f.formals[name]; ok {
		return f.formalAccess(k)
	}

	if i, ok := f.fields[name]; ok {
		return &ir.Mem{Addr: &ir.Binop{
			Op:    ir.OpPlus,
			Left:  f.ThisExpr(),
			Right: &ir.Const{Value: int32(f.wordSize * (i + 1))},
		}}
	}

	report.Raise(report.ErrKindName, nil, "name `%s` is not bound in frame `%s`", name, f.Name)
	return nil
}

// ThisExpr returns the access expression of the implicit receiver: formal 0.
func (f *Frame) ThisExpr() ir.Exp {
	return f.formalAccess(0)
}

// ExternalCall returns a call of the runtime-supplied function with the given
// literal name.  External runtime names carry a `#` prefix as part of the ABI.
func (f *Frame) ExternalCall(fn string, args []ir.Exp) ir.Exp {
	return &ir.Call{
		Func: &ir.Name{Label: f.pool.NamedLabel("#" + fn)},
		Args: args,
	}
}

// formalAccess builds the access expression of formal slot k.
func (f *Frame) formalAccess(k int) ir.Exp {
	return &ir.Mem{Addr: &ir.Binop{
		Op:    ir.OpPlus,
		Left:  &ir.TempExpr{Temp: f.fp},
		Right: &ir.Const{Value: int32(f.wordSize * k)},
	}}
}
