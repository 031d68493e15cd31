package gotest

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/webapp/internal/execshell"
	"github.com/temirov/webapp/internal/utils"
)

const (
	testCommandUseConstant                = "test [ARGS...]"
	testCommandShortDescriptionConstant   = "Run the test suite"
	testCommandLongDescriptionConstant    = "test runs the configured test tool (go test ./... by default) against the project test target and forwards every argument to it unmodified. The process exits with the tool's exit code."
	testCommandExampleConstant            = "  webapp test\n  webapp test -run TestHello -v\n  webapp --log-level debug test -count=1"
	helpFlagLongConstant                  = "--help"
	helpFlagShortConstant                 = "-h"
	executorCreationErrorTemplateConstant = "unable to prepare test runner: %w"
	testExecutionErrorTemplateConstant    = "test run failed: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current test command configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the test command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	CommandRunner         execshell.CommandRunner
}

// Build constructs the test command. Flag parsing is disabled so that flags such
// as -run or -v reach the test tool instead of Cobra.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	testCommand := &cobra.Command{
		Use:                testCommandUseConstant,
		Short:              testCommandShortDescriptionConstant,
		Long:               testCommandLongDescriptionConstant,
		Example:            testCommandExampleConstant,
		DisableFlagParsing: true,
		RunE:               builder.run,
	}

	return testCommand, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 && (arguments[0] == helpFlagLongConstant || arguments[0] == helpFlagShortConstant) {
		return command.Help()
	}

	configuration := builder.resolveConfiguration()

	shellExecutor, executorError := execshell.NewShellExecutor(builder.resolveLogger(), builder.resolveCommandRunner())
	if executorError != nil {
		return fmt.Errorf(executorCreationErrorTemplateConstant, executorError)
	}

	testOptions := Options{
		Executable:         configuration.Executable,
		Arguments:          configuration.Arguments,
		Target:             configuration.Target,
		ForwardedArguments: append([]string{}, arguments...),
		WorkingDirectory:   configuration.WorkingDirectory,
		Output:             utils.NewFlushingWriter(command.OutOrStdout()),
		ErrorOutput:        utils.NewFlushingWriter(command.ErrOrStderr()),
	}

	if runError := NewService(shellExecutor).Run(command.Context(), testOptions); runError != nil {
		return fmt.Errorf(testExecutionErrorTemplateConstant, runError)
	}

	return nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveCommandRunner() execshell.CommandRunner {
	if builder.CommandRunner != nil {
		return builder.CommandRunner
	}

	return execshell.NewOSCommandRunner()
}
