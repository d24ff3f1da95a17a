package depm

import (
	"github.com/Nadezhda94/SimpleJava/report"
)

// VarInfo describes a declared field, formal, or local variable.
type VarInfo struct {
	// The interned name of the variable.
	Name *Symbol

	// The declared type of the variable.
	Type Type
}

// MethodInfo describes a declared method.
type MethodInfo struct {
	// The interned name of the method.
	Name *Symbol

	// The formal parameters in declaration order, excluding the implicit
	// receiver.
	Params []VarInfo

	// The local variables in declaration order.
	Vars []VarInfo

	// The declared return type.
	RetType Type
}

// lookupVar finds a variable by symbol in a declaration-ordered list.
func lookupVar(vars []VarInfo, name *Symbol) (VarInfo, bool) {
	for _, v := range vars {
		if v.Name == name {
			return v, true
		}
	}

	return VarInfo{}, false
}

// ClassInfo describes a declared class.
type ClassInfo struct {
	// The interned name of the class.
	Name *Symbol

	// The interned name of the parent class.  Nil when the class extends
	// nothing.
	Parent *Symbol

	// The fields declared by the class itself in declaration order, excluding
	// inherited fields.
	Vars []VarInfo

	// The methods declared by the class in declaration order.
	Methods []*MethodInfo
}

// MethodInfo returns the class's declared method with the given name.
func (ci *ClassInfo) MethodInfo(name *Symbol) (*MethodInfo, bool) {
	for _, m := range ci.Methods {
		if m.Name == name {
			return m, true
		}
	}

	return nil, false
}

// -----------------------------------------------------------------------------

// Table is the symbol table describing every class of a compilation unit.  It
// is populated by the front end before translation begins.
type Table struct {
	// The class declarations in declaration order, main class first.
	Classes []*ClassInfo

	byName map[*Symbol]*ClassInfo
}

// NewTable creates a new table over the given ordered class list.
func NewTable(classes []*ClassInfo) *Table {
	t := &Table{
		Classes: classes,
		byName:  make(map[*Symbol]*ClassInfo),
	}

	for _, ci := range classes {
		t.byName[ci.Name] = ci
	}

	return t
}

// ClassInfo returns the class with the given name.  The lookup is fatal when
// the class is undeclared: the type checker is trusted to have rejected every
// reference to a missing class.
func (t *Table) ClassInfo(name *Symbol) *ClassInfo {
	if ci, ok := t.byName[name]; ok {
		return ci
	}

	report.Raise(report.ErrKindClass, nil, "reference to undeclared class `%s`", name)
	return nil
}

// LinearFields returns the fields of the class with inherited fields laid out
// before declared fields (single-inheritance linearization).  Field indices
// used for object layout are positions in this sequence.
func (t *Table) LinearFields(ci *ClassInfo) []VarInfo {
	var fields []VarInfo
	if ci.Parent != nil {
		fields = t.LinearFields(t.ClassInfo(ci.Parent))
	}

	return append(fields, ci.Vars...)
}

// LookupVar resolves a name within a method of a class in the order locals,
// formals, then linearized fields of the class.  Conflicts across the three
// scopes have already been rejected by the type checker.
func (t *Table) LookupVar(ci *ClassInfo, mi *MethodInfo, name *Symbol) (VarInfo, bool) {
	if v, ok := lookupVar(mi.Vars, name); ok {
		return v, true
	}

	if v, ok := lookupVar(mi.Params, name); ok {
		return v, true
	}

	return lookupVar(t.LinearFields(ci), name)
}
