package lint

import (
	"context"
	"io"

	"github.com/temirov/webapp/internal/execshell"
)

// Options describes a single lint run.
type Options struct {
	Executable       string
	Arguments        []string
	Paths            []string
	WorkingDirectory string
	Output           io.Writer
	ErrorOutput      io.Writer
}

// CommandExecutor runs shell commands.
type CommandExecutor interface {
	Execute(executionContext context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error)
}

// Service runs the external linter.
type Service struct {
	executor CommandExecutor
}

// NewService constructs a Service around executor.
func NewService(executor CommandExecutor) *Service {
	return &Service{executor: executor}
}

// Run invokes "<executable> <arguments...> <paths...>". Any non-zero exit is
// returned as execshell.CommandFailedError; success returns nil.
func (service *Service) Run(executionContext context.Context, options Options) error {
	commandArguments := make([]string, 0, len(options.Arguments)+len(options.Paths))
	commandArguments = append(commandArguments, options.Arguments...)
	commandArguments = append(commandArguments, options.Paths...)

	lintCommand := execshell.ShellCommand{
		Name: execshell.CommandName(options.Executable),
		Details: execshell.CommandDetails{
			Arguments:            commandArguments,
			WorkingDirectory:     options.WorkingDirectory,
			StandardOutputWriter: options.Output,
			StandardErrorWriter:  options.ErrorOutput,
		},
	}

	_, executionError := service.executor.Execute(executionContext, lintCommand)
	return executionError
}
