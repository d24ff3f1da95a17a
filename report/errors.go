package report

import "fmt"

// Enumeration of translation error kinds.
const (
	ErrKindName  = iota // a source name unbound in every frame scope
	ErrKindClass        // a reference to an undeclared class
)

var errKindStrings = map[int]string{
	ErrKindName:  "Name",
	ErrKindClass: "Class",
}

// LocalCompileError is a compilation error that occurs in a context in which
// the enclosing class and method are known by the error handler and thus don't
// need to be passed along with the error.
type LocalCompileError struct {
	// The error kind.  This must be one of the enumerated error kinds.
	Kind int

	// The error message.
	Message string

	// The span over which the error occurs.  May be nil when the offending
	// AST node carries no position.
	Span *TextSpan
}

func (lce *LocalCompileError) Error() string {
	return lce.Message
}

// Raise panics with a new local compile error.  The panic is recovered by a
// deferred CatchErrors at the enclosing phase boundary.
func Raise(kind int, span *TextSpan, msg string, args ...interface{}) {
	panic(&LocalCompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Span: span})
}
