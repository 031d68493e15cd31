package gotest

import (
	"context"
	"io"

	"github.com/temirov/webapp/internal/execshell"
)

// Options describes a single test run.
type Options struct {
	Executable         string
	Arguments          []string
	Target             string
	ForwardedArguments []string
	WorkingDirectory   string
	Output             io.Writer
	ErrorOutput        io.Writer
}

// CommandExecutor runs shell commands.
type CommandExecutor interface {
	Execute(executionContext context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error)
}

// Service runs the external test tool.
type Service struct {
	executor CommandExecutor
}

// NewService constructs a Service around executor.
func NewService(executor CommandExecutor) *Service {
	return &Service{executor: executor}
}

// Run invokes "<executable> <arguments...> <target> <forwarded arguments...>".
// Forwarded arguments are passed through untouched. A non-zero exit of the tool
// is returned as execshell.CommandFailedError.
func (service *Service) Run(executionContext context.Context, options Options) error {
	_, executionError := service.executor.Execute(executionContext, BuildShellCommand(options))
	return executionError
}

// BuildShellCommand assembles the shell command for options.
func BuildShellCommand(options Options) execshell.ShellCommand {
	commandArguments := make([]string, 0, len(options.Arguments)+1+len(options.ForwardedArguments))
	commandArguments = append(commandArguments, options.Arguments...)
	commandArguments = append(commandArguments, options.Target)
	commandArguments = append(commandArguments, options.ForwardedArguments...)

	return execshell.ShellCommand{
		Name: execshell.CommandName(options.Executable),
		Details: execshell.CommandDetails{
			Arguments:            commandArguments,
			WorkingDirectory:     options.WorkingDirectory,
			StandardOutputWriter: options.Output,
			StandardErrorWriter:  options.ErrorOutput,
		},
	}
}
