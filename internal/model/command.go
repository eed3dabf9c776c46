package model

import (
	"fmt"
	"strings"
)

// Command is one of the fixed pipeline stages pkgwrap can run.
type Command string

// Available commands.
const (
	CommandClean       Command = "clean"
	CommandBuild       Command = "build"
	CommandTesting     Command = "testing"
	CommandLint        Command = "lint"
	CommandReporting   Command = "reporting"
	CommandCoverage    Command = "coverage"
	CommandPostinstall Command = "postinstall"
	CommandDocs        Command = "docs"
	CommandGlobals     Command = "globals"
)

// Pipeline is the execution order of commands. Requested commands always run
// in this order, whatever order they were given on the command line.
var Pipeline = []Command{
	CommandClean,
	CommandBuild,
	CommandTesting,
	CommandLint,
	CommandReporting,
	CommandCoverage,
	CommandPostinstall,
	CommandDocs,
	CommandGlobals,
}

var commandDescriptions = map[Command]string{
	CommandClean:       "Removes intermediate files from the module",
	CommandBuild:       "Executes the typescript build command",
	CommandTesting:     "Start the testing process for the module",
	CommandLint:        "Executes the lint tool to check for code errors",
	CommandReporting:   "Creates coverage reports after testing",
	CommandCoverage:    "Creates nyc report data used by coveralls",
	CommandPostinstall: "Executed during the NPM post install",
	CommandDocs:        "Generates jsdoc and markdown documents for the project",
	CommandGlobals:     "Installs the globalDependencies declared in package.json",
}

// Description returns the help text for the command.
func (c Command) Description() string {
	return commandDescriptions[c]
}

// ParseCommand converts a command name to a Command.
func ParseCommand(name string) (Command, error) {
	candidate := Command(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := commandDescriptions[candidate]; !ok {
		return "", fmt.Errorf("unknown command %q", name)
	}

	return candidate, nil
}

// CommandNames lists the command names in pipeline order.
func CommandNames() []string {
	names := make([]string, 0, len(Pipeline))
	for _, c := range Pipeline {
		names = append(names, string(c))
	}

	return names
}
