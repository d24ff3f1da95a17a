package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"github.com/Nadezhda94/SimpleJava/common"
	"github.com/Nadezhda94/SimpleJava/mods"
	"github.com/Nadezhda94/SimpleJava/report"
)

// logLevels maps the CLI log level names onto the reporter's enumeration.
var logLevels = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// Execute runs the main `sjc` application.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("sjc", "sjc is a tool for translating SimpleJava modules", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "translate source code to IR", true)
	buildCmd.AddPrimaryArg("module-path", "the path to the module to build", true)
	buildCmd.AddStringArg("profile", "p", "the name of the profile to build", false)
	buildCmd.AddFlag("dump-ir", "d", "write the textual IR rendering regardless of profile")

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddPrimaryArg("module-path", "the path to the module directory", true)

	cli.AddSubcommand("version", "print the SimpleJava version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, result.Arguments["loglevel"].(string))
	case "mod":
		execModCommand(subResult)
	case "version":
		report.PrintInfoMessage("SimpleJava Version", common.SJVersion)
	}
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	moduleRelPath, _ := result.PrimaryArg()

	modulePath, err := filepath.Abs(moduleRelPath)
	if err != nil {
		report.PrintErrorMessage("Path Error", err)
		return
	}

	profArgVal, ok := result.Arguments["profile"]
	selectedProfile := ""
	if ok {
		selectedProfile = profArgVal.(string)
	}

	// attempt to load the module
	buildProfile := &mods.BuildProfile{}
	mod, err := mods.LoadModule(modulePath, selectedProfile, buildProfile)
	if err != nil {
		report.PrintErrorMessage("Module Load Error", err)
		return
	}

	if result.HasFlag("dump-ir") {
		buildProfile.DumpIR = true
	}

	// initialize the reporter
	report.InitReporter(logLevels[loglevel])

	// build the main project
	c := NewCompiler(mod, buildProfile)
	c.Compile()
}

// execModCommand executes the `mod` subcommand and its subcommands.  It
// handles all errors related to this command.
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()

	switch subcmdName {
	case "init":
		modPathValue, _ := subResult.PrimaryArg()
		if err := mods.InitModule(filepath.Base(modPathValue), modPathValue); err != nil {
			report.PrintErrorMessage("Module Init Error", err)
		}
	}
}
