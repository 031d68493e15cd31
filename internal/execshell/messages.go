package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	goTestStartTemplateConstant             = "Running Go tests for %s"
	goTestSuccessTemplateConstant           = "Go tests passed for %s"
	goTestFailureTemplateConstant           = "Go tests failed for %s (exit code %d%s)"
	goTestExecutionFailureTemplateConstant  = "Unable to run Go tests for %s: %s"
	lintStartTemplateConstant               = "Linting %s"
	lintSuccessTemplateConstant             = "No lint issues in %s"
	lintFailureTemplateConstant             = "Lint reported issues in %s (exit code %d%s)"
	lintExecutionFailureTemplateConstant    = "Unable to lint %s: %s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	standardErrorSuffixTemplateConstant     = ": %s"
	argumentsJoinSeparatorConstant          = " "
	unknownFailureMessageConstant           = "unknown error"
	unknownTargetLabelConstant              = "unknown target"
	emptyStringConstant                     = ""
	goTestSubcommandNameConstant            = "test"
	lintRunSubcommandNameConstant           = "run"
	flagPrefixConstant                      = "-"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch {
	case command.Name == CommandGo && formatter.firstArgument(command) == goTestSubcommandNameConstant:
		return formatter.describeTargetedMessage(command, result, failure, stage, targetedTemplates{
			start:            goTestStartTemplateConstant,
			success:          goTestSuccessTemplateConstant,
			failure:          goTestFailureTemplateConstant,
			executionFailure: goTestExecutionFailureTemplateConstant,
		})
	case command.Name == CommandGolangCILint && formatter.firstArgument(command) == lintRunSubcommandNameConstant:
		return formatter.describeTargetedMessage(command, result, failure, stage, targetedTemplates{
			start:            lintStartTemplateConstant,
			success:          lintSuccessTemplateConstant,
			failure:          lintFailureTemplateConstant,
			executionFailure: lintExecutionFailureTemplateConstant,
		})
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

type targetedTemplates struct {
	start            string
	success          string
	failure          string
	executionFailure string
}

func (formatter CommandMessageFormatter) describeTargetedMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage, templates targetedTemplates) string {
	targetLabel := formatter.describeTargets(command) + formatter.formatWorkingDirectorySuffix(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(templates.start, targetLabel)
	case messageStageSuccess:
		return fmt.Sprintf(templates.success, targetLabel)
	case messageStageFailure:
		return fmt.Sprintf(templates.failure, targetLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(templates.executionFailure, targetLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := command.CommandLine() + formatter.formatWorkingDirectorySuffix(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

// describeTargets lists the non-flag arguments following the subcommand.
func (formatter CommandMessageFormatter) describeTargets(command ShellCommand) string {
	targets := make([]string, 0, len(command.Details.Arguments))
	for argumentIndex, argument := range command.Details.Arguments {
		if argumentIndex == 0 {
			continue
		}
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 || strings.HasPrefix(trimmedArgument, flagPrefixConstant) {
			continue
		}
		targets = append(targets, trimmedArgument)
	}
	if len(targets) == 0 {
		return unknownTargetLabelConstant
	}
	return strings.Join(targets, argumentsJoinSeparatorConstant)
}

func (formatter CommandMessageFormatter) firstArgument(command ShellCommand) string {
	if len(command.Details.Arguments) == 0 {
		return emptyStringConstant
	}
	return strings.TrimSpace(command.Details.Arguments[0])
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}
