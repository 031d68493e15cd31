package execshell_test

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/webapp/internal/execshell"
)

const (
	testShellExecutableConstant  = "sh"
	testShellCommandFlagConstant = "-c"
)

func TestOSCommandRunnerReportsExitCodesAndMirrorsOutput(testInstance *testing.T) {
	if _, lookupError := exec.LookPath(testShellExecutableConstant); lookupError != nil {
		testInstance.Skip("sh is not available")
	}

	testCases := []struct {
		name             string
		script           string
		expectedExitCode int
		expectedOutput   string
		expectedError    string
	}{
		{
			name:             "success",
			script:           "printf hello",
			expectedExitCode: 0,
			expectedOutput:   "hello",
		},
		{
			name:             "non_zero_exit",
			script:           "printf broken >&2; exit 3",
			expectedExitCode: 3,
			expectedError:    "broken",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			var mirroredOutput bytes.Buffer
			var mirroredError bytes.Buffer

			runner := execshell.NewOSCommandRunner()
			result, runError := runner.Run(context.Background(), execshell.ShellCommand{
				Name: execshell.CommandName(testShellExecutableConstant),
				Details: execshell.CommandDetails{
					Arguments:            []string{testShellCommandFlagConstant, testCase.script},
					StandardOutputWriter: &mirroredOutput,
					StandardErrorWriter:  &mirroredError,
				},
			})

			require.NoError(testInstance, runError)
			require.Equal(testInstance, testCase.expectedExitCode, result.ExitCode)
			require.Equal(testInstance, testCase.expectedOutput, result.StandardOutput)
			require.Equal(testInstance, testCase.expectedOutput, mirroredOutput.String())
			require.Equal(testInstance, testCase.expectedError, result.StandardError)
			require.Equal(testInstance, testCase.expectedError, mirroredError.String())
		})
	}
}

func TestOSCommandRunnerReturnsErrorForMissingExecutable(testInstance *testing.T) {
	runner := execshell.NewOSCommandRunner()
	_, runError := runner.Run(context.Background(), execshell.ShellCommand{
		Name: execshell.CommandName("webapp-missing-executable-for-tests"),
	})
	require.Error(testInstance, runError)
}
