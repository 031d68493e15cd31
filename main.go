package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/webapp/cmd/cli"
	"github.com/temirov/webapp/internal/execshell"
)

const (
	exitErrorTemplateConstant      = "%v\n"
	genericFailureExitCodeConstant = 1
)

// main executes the webapp command-line application. When an external tool
// fails, the process exits with the tool's exit code.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	exitCode, reportedByTool := resolveExitCode(executionError)
	if !reportedByTool {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	}
	os.Exit(exitCode)
}

// resolveExitCode returns the exit code reported by a failed external tool and
// true, or the generic failure code and false. Tools terminated by a signal
// report a negative code and get the generic failure code.
func resolveExitCode(executionError error) (int, bool) {
	var commandFailedError execshell.CommandFailedError
	if errors.As(executionError, &commandFailedError) && commandFailedError.ExitCode() > 0 {
		return commandFailedError.ExitCode(), true
	}
	return genericFailureExitCodeConstant, false
}
