// Package cmd is the top-level "driver" package for the SimpleJava compiler:
// it contains the functionality for parsing command-line arguments, managing
// compiler state, and running the phases of the middle end.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nadezhda94/SimpleJava/ast"
	"github.com/Nadezhda94/SimpleJava/depm"
	"github.com/Nadezhda94/SimpleJava/ir"
	"github.com/Nadezhda94/SimpleJava/lower"
	"github.com/Nadezhda94/SimpleJava/mods"
	"github.com/Nadezhda94/SimpleJava/report"
)

// Frontend is the contract of the external front end: it parses and type
// checks the module rooted at the given directory and hands over the program
// AST, the populated symbol table, and the storage its names were interned
// with.  The translator performs no semantic validation of its own.
type Frontend interface {
	Load(root string) (*ast.Program, *depm.Table, *depm.Storage, error)
}

// frontend is the front end linked into this build.
var frontend Frontend

// SetFrontend registers the front end implementation the driver hands source
// modules to.  This must be called before Execute.
func SetFrontend(fe Frontend) {
	frontend = fe
}

// -----------------------------------------------------------------------------

// Compiler represents the overall state and configuration of compilation.
type Compiler struct {
	// The module being compiled.
	mod *mods.SJModule

	// The build profile selected for this compilation.
	profile *mods.BuildProfile
}

// NewCompiler creates a new compiler for a loaded module and profile.
func NewCompiler(mod *mods.SJModule, profile *mods.BuildProfile) *Compiler {
	return &Compiler{mod: mod, profile: profile}
}

// Compile runs the front end over the module and lowers the resulting AST to
// IR trees.  It returns the translated trees, one per method with `main`'s
// first.
func (c *Compiler) Compile() []ir.Node {
	if frontend == nil {
		report.ReportFatal("no front end is linked into this build")
	}

	report.ReportPhase("parsing and checking module `%s`", c.mod.Name)

	prog, table, storage, err := frontend.Load(c.mod.ModuleRoot)
	if err != nil {
		report.PrintErrorMessage("Front End Error", err)
		return nil
	}

	report.ReportPhase("translating module `%s`", c.mod.Name)

	l := lower.NewLowerer(prog, table, storage, c.mod.WordSize)
	trees := l.Lower()

	if report.AnyErrors() {
		report.ReportFinished(0)
		return nil
	}

	if c.profile.DumpIR {
		if err := c.dumpIR(trees); err != nil {
			report.PrintErrorMessage("Output Error", err)
			return nil
		}
	}

	report.ReportFinished(len(trees))
	return trees
}

// dumpIR writes the textual rendering of every translated tree to the
// profile's output path.
func (c *Compiler) dumpIR(trees []ir.Node) error {
	outPath := c.profile.OutputPath
	if outPath == "" {
		outPath = filepath.Join(c.mod.ModuleRoot, c.mod.Name+".ir")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	for i, tree := range trees {
		fmt.Fprintf(f, "; tree %d\n", i)
		ir.Fprint(f, tree)
		fmt.Fprintln(f)
	}

	return nil
}
