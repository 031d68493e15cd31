package lint

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/webapp/internal/execshell"
	"github.com/temirov/webapp/internal/ui"
	"github.com/temirov/webapp/internal/utils"
)

const (
	lintCommandUseConstant                  = "lint"
	lintCommandShortDescriptionConstant     = "Lint the application sources"
	lintCommandLongDescriptionConstant      = "lint runs the configured linter (golangci-lint run by default) against the entry package and the application packages. The process exits with the linter's exit code when it reports issues."
	checkingCodeMessageTemplateConstant     = "Checking code: %s\n"
	unexpectedArgumentsErrorMessageConstant = "lint does not accept positional arguments"
	executorCreationErrorTemplateConstant   = "unable to prepare linter: %w"
	lintExecutionErrorTemplateConstant      = "lint failed: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current lint command configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the lint command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	CommandRunner         execshell.CommandRunner
}

// Build constructs the lint command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	lintCommand := &cobra.Command{
		Use:   lintCommandUseConstant,
		Short: lintCommandShortDescriptionConstant,
		Long:  lintCommandLongDescriptionConstant,
		RunE:  builder.run,
	}

	return lintCommand, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New(unexpectedArgumentsErrorMessageConstant)
	}

	configuration := builder.resolveConfiguration()

	announcer := ui.NewCommandLineAnnouncer(command.OutOrStdout(), checkingCodeMessageTemplateConstant)
	shellExecutor, executorError := execshell.NewShellExecutor(
		builder.resolveLogger(),
		builder.resolveCommandRunner(),
		execshell.WithCommandEventObserver(announcer),
	)
	if executorError != nil {
		return fmt.Errorf(executorCreationErrorTemplateConstant, executorError)
	}

	lintOptions := Options{
		Executable:       configuration.Executable,
		Arguments:        configuration.Arguments,
		Paths:            configuration.Paths,
		WorkingDirectory: configuration.WorkingDirectory,
		Output:           utils.NewFlushingWriter(command.OutOrStdout()),
		ErrorOutput:      utils.NewFlushingWriter(command.ErrOrStderr()),
	}

	if runError := NewService(shellExecutor).Run(command.Context(), lintOptions); runError != nil {
		return fmt.Errorf(lintExecutionErrorTemplateConstant, runError)
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
