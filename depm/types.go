package depm

// Enumeration of SimpleJava type kinds.
const (
	TypeInt = iota
	TypeBool
	TypeIntArray
	TypeClass
)

// Type represents the declared type of a field, formal, local, or method
// return value.
type Type struct {
	// The type kind.  This must be one of the enumerated type kinds.
	Kind int

	// The class name for class types.  Empty otherwise.
	ClassName string
}

// IntType returns the `int` type.
func IntType() Type {
	return Type{Kind: TypeInt}
}

// BoolType returns the `boolean` type.
func BoolType() Type {
	return Type{Kind: TypeBool}
}

// IntArrayType returns the `int[]` type.
func IntArrayType() Type {
	return Type{Kind: TypeIntArray}
}

// ClassType returns the class type with the given name.
func ClassType(name string) Type {
	return Type{Kind: TypeClass, ClassName: name}
}

func (t Type) String() string {
	switch t.Kind {
	case TypeInt:
		return "int"
	case TypeBool:
		return "boolean"
	case TypeIntArray:
		return "int[]"
	default:
		return t.ClassName
	}
}
