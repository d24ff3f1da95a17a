package report

import (
	"fmt"
	"os"
)

// ReportICE reports an internal compiler error.  These are errors that
// specifically result from a bug or unexpected condition occurring within the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately.  They are expected errors that generally
// result from invalid configuration of some form: a missing or malformed
// module manifest, a bad profile selection, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a compilation error raised during the translation
// of the method method of the class class.  The span may be nil in which case
// no position information will be printed.
func ReportCompileError(kind int, class, method string, span *TextSpan, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayCompileMessage(kind, class, method, span, fmt.Sprintf(message, args...))
	}
}

// ReportPhase reports a verbose-only progress line for a translation phase.
func ReportPhase(phase string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayPhase(fmt.Sprintf(phase, args...))
	}
}

// ReportFinished reports the concluding message for translation.
func ReportFinished(treeCount int) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFinished(!rep.isErr, treeCount)
	}
}

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	return rep.isErr
}

// -----------------------------------------------------------------------------

// CatchErrors catches any errors thrown by a `panic` during a stage of
// translation.  In effect, this handler determines where errors
// "unrecoverable" within a given subsection of the compiler should stop
// bubbling.  The class and method give the translation context the error
// occurred in.
// NB: This function must ALWAYS be deferred.
func CatchErrors(class, method string) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*LocalCompileError); ok {
			ReportCompileError(cerr.Kind, class, method, cerr.Span, cerr.Message)
		} else if serr, ok := x.(error); ok {
			ReportCompileError(ErrKindName, class, method, nil, serr.Error())
		} else {
			ReportFatal("%s", x)
		}
	}
}
