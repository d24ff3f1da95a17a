package lower

import (
	"github.com/Nadezhda94/SimpleJava/ast"
	"github.com/Nadezhda94/SimpleJava/depm"
	"github.com/Nadezhda94/SimpleJava/frame"
	"github.com/Nadezhda94/SimpleJava/ir"
)

// Lowerer is the construct responsible for converting a type-checked AST into
// IR trees: one tree per method, with `main`'s tree first.  It threads the
// current class, method, and frame through a post-order walk of the AST; each
// visited subtree yields a wrapper holding its translation.
type Lowerer struct {
	prog    *ast.Program
	table   *depm.Table
	storage *depm.Storage
	pool    *ir.Pool

	// wordSize is the target word size in bytes.  Field and array layouts
	// depend on it and are stable across the compilation unit.
	wordSize int

	// methodLabels holds the entry label of every declared method keyed by the
	// `ClassName@methodName` convention.
	methodLabels map[string]*ir.Label

	currentClass  *depm.ClassInfo
	currentMethod *depm.MethodInfo
	frame         *frame.Frame

	// typeForInvoke is the static class name of the most recently lowered
	// receiver-producing expression.  Method invocations resolve their callee
	// against it; dispatch is static.
	typeForInvoke string

	// trees is the ordered output list of method trees.
	trees []ir.Node
}

// NewLowerer creates a new lowerer for the given program and symbol table.
// The storage must be the same symbol storage the front end interned the
// table's names with.
func NewLowerer(prog *ast.Program, table *depm.Table, storage *depm.Storage, wordSize int) *Lowerer {
	l := &Lowerer{
		prog:         prog,
		table:        table,
		storage:      storage,
		pool:         ir.NewPool(),
		wordSize:     wordSize,
		methodLabels: make(map[string]*ir.Label),
	}

	// Every method entry label is interned up front so that invocations can
	// reference methods lowered later.
	for _, ci := range table.Classes {
		for _, mi := range ci.Methods {
			name := ci.Name.Name + "@" + mi.Name.Name
			l.methodLabels[name] = l.pool.NamedLabel(name)
		}
	}

	return l
}

// Lower converts the program into its IR trees: `main`'s body statement first,
// then one ESEQ(body, return) expression per method in declaration order.
func (l *Lowerer) Lower() []ir.Node {
	l.lowerMain(l.prog.Main)

	for _, cd := range l.prog.Classes {
		l.lowerClass(cd)
	}

	return l.trees
}

// -----------------------------------------------------------------------------

// findMethod resolves a method against a class, walking the inheritance chain
// upwards.  The returned class is the one declaring the method: its name forms
// the method's entry label.
func (l *Lowerer) findMethod(ci *depm.ClassInfo, name *depm.Symbol) (*depm.ClassInfo, *depm.MethodInfo, bool) {
	for {
		if mi, ok := ci.MethodInfo(name); ok {
			return ci, mi, true
		}

		if ci.Parent == nil {
			return nil, nil, false
		}

		ci = l.table.ClassInfo(ci.Parent)
	}
}
