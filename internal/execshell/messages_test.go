package execshell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandMessageFormatterDescribesKnownTools(testInstance *testing.T) {
	goTestCommand := ShellCommand{
		Name: CommandGo,
		Details: CommandDetails{
			Arguments:        []string{"test", "./...", "-run", "TestHello"},
			WorkingDirectory: "/workspace/project",
		},
	}
	lintCommand := ShellCommand{
		Name:    CommandGolangCILint,
		Details: CommandDetails{Arguments: []string{"run", ".", "./internal/..."}},
	}
	genericCommand := ShellCommand{
		Name:    CommandName("make"),
		Details: CommandDetails{Arguments: []string{"build"}},
	}

	testCases := []struct {
		name            string
		build           func(formatter CommandMessageFormatter) string
		expectedMessage string
	}{
		{
			name:            "go_test_started",
			build:           func(formatter CommandMessageFormatter) string { return formatter.BuildStartedMessage(goTestCommand) },
			expectedMessage: "Running Go tests for ./... TestHello (in /workspace/project)",
		},
		{
			name: "go_test_failed",
			build: func(formatter CommandMessageFormatter) string {
				return formatter.BuildFailureMessage(goTestCommand, ExecutionResult{ExitCode: 1, StandardError: "FAIL\n"})
			},
			expectedMessage: "Go tests failed for ./... TestHello (in /workspace/project) (exit code 1: FAIL)",
		},
		{
			name:            "lint_succeeded",
			build:           func(formatter CommandMessageFormatter) string { return formatter.BuildSuccessMessage(lintCommand) },
			expectedMessage: "No lint issues in . ./internal/...",
		},
		{
			name: "lint_execution_failed",
			build: func(formatter CommandMessageFormatter) string {
				return formatter.BuildExecutionFailureMessage(lintCommand, errors.New("not found"))
			},
			expectedMessage: "Unable to lint . ./internal/...: not found",
		},
		{
			name:            "generic_started",
			build:           func(formatter CommandMessageFormatter) string { return formatter.BuildStartedMessage(genericCommand) },
			expectedMessage: "Running make build",
		},
		{
			name:            "generic_execution_failed_without_cause",
			build:           func(formatter CommandMessageFormatter) string { return formatter.BuildExecutionFailureMessage(genericCommand, nil) },
			expectedMessage: "make build failed: unknown error",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedMessage, testCase.build(CommandMessageFormatter{}))
		})
	}
}
