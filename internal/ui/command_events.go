package ui

import (
	"fmt"
	"io"

	"github.com/temirov/webapp/internal/execshell"
)

// CommandLineAnnouncer prints the full command line of every command as it
// starts, so users see exactly which tool invocation produced the output that follows.
type CommandLineAnnouncer struct {
	writer          io.Writer
	messageTemplate string
}

// NewCommandLineAnnouncer constructs an announcer writing to writer. The
// template receives the command line as its single %s verb.
func NewCommandLineAnnouncer(writer io.Writer, messageTemplate string) *CommandLineAnnouncer {
	if writer == nil {
		writer = io.Discard
	}
	return &CommandLineAnnouncer{writer: writer, messageTemplate: messageTemplate}
}

// CommandStarted implements execshell.CommandEventObserver.
func (announcer *CommandLineAnnouncer) CommandStarted(command execshell.ShellCommand) {
	if announcer == nil {
		return
	}
	fmt.Fprintf(announcer.writer, announcer.messageTemplate, command.CommandLine())
}

// CommandCompleted implements execshell.CommandEventObserver.
func (announcer *CommandLineAnnouncer) CommandCompleted(execshell.ShellCommand, execshell.ExecutionResult) {}

// CommandExecutionFailed implements execshell.CommandEventObserver.
func (announcer *CommandLineAnnouncer) CommandExecutionFailed(execshell.ShellCommand, error) {}
