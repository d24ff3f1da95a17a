package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	ErrorStyleBG.Print("Internal Error")
	ErrorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue on GitHub\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayCompileMessage displays a compilation error in a given class and
// method context.  The span may be nil in which case no position information
// is printed.
func displayCompileMessage(kind int, class, method string, span *TextSpan, message string) {
	ErrorStyleBG.Print(errKindStrings[kind] + " Error")
	if span == nil {
		ErrorColorFG.Printf(" [%s@%s] %s\n", class, method, message)
	} else {
		ErrorColorFG.Printf(" [%s@%s] (line %d, col %d) %s\n",
			class, method, span.StartLine+1, span.StartCol+1, message)
	}
}

// displayPhase displays a verbose-only progress line for a translation phase.
func displayPhase(phase string) {
	InfoStyleBG.Print("Phase")
	InfoColorFG.Println(" " + phase)
}

// displayFinished displays the closing message for translation.
func displayFinished(ok bool, treeCount int) {
	if ok {
		SuccessStyleBG.Print("Done")
		SuccessColorFG.Printf(" translated %d method(s)\n", treeCount)
	} else {
		ErrorStyleBG.Print("Failed")
		ErrorColorFG.Println(" translation stopped due to errors")
	}
}
