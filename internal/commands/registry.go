package commands

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
)

const (
	registrySealedMessageConstant     = "commands already registered"
	rootCommandMissingMessageConstant = "root command not configured"
	builderMissingMessageConstant     = "command builder not configured"
	commandMissingMessageConstant     = "command builder returned no command"
	duplicateCommandTemplateConstant  = "command %q registered more than once"
	commandBuildErrorTemplateConstant = "unable to build command: %w"
)

// ErrRegistrySealed indicates RegisterAll was invoked after a previous registration pass.
var ErrRegistrySealed = errors.New(registrySealedMessageConstant)

// ErrRootCommandMissing indicates RegisterAll received a nil root command.
var ErrRootCommandMissing = errors.New(rootCommandMissingMessageConstant)

// ErrBuilderMissing indicates a nil entry in the builder list.
var ErrBuilderMissing = errors.New(builderMissingMessageConstant)

// ErrCommandMissing indicates a builder that returned neither a command nor an error.
var ErrCommandMissing = errors.New(commandMissingMessageConstant)

// DuplicateCommandError reports a command name that is already present on the root command.
type DuplicateCommandError struct {
	Name string
}

// Error describes the duplicate command.
func (duplicateError DuplicateCommandError) Error() string {
	return fmt.Sprintf(duplicateCommandTemplateConstant, duplicateError.Name)
}

// Builder constructs a single Cobra command.
type Builder interface {
	Build() (*cobra.Command, error)
}

// Registry attaches commands produced by builders to a root command exactly once.
type Registry struct {
	mutex           sync.Mutex
	sealed          bool
	registeredNames []string
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterAll builds every command and then adds them to rootCommand in order.
// Nothing is added when a build fails or a name collides with an existing
// command. The registry is sealed after the first call, successful or not.
func (registry *Registry) RegisterAll(rootCommand *cobra.Command, builders []Builder) error {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()

	if registry.sealed {
		return ErrRegistrySealed
	}
	registry.sealed = true

	if rootCommand == nil {
		return ErrRootCommandMissing
	}

	seenNames := make(map[string]struct{}, len(builders))
	for _, existingCommand := range rootCommand.Commands() {
		seenNames[existingCommand.Name()] = struct{}{}
	}

	builtCommands := make([]*cobra.Command, 0, len(builders))
	for _, builder := range builders {
		if builder == nil {
			return ErrBuilderMissing
		}
		builtCommand, buildError := builder.Build()
		if buildError != nil {
			return fmt.Errorf(commandBuildErrorTemplateConstant, buildError)
		}
		if builtCommand == nil {
			return ErrCommandMissing
		}
		commandName := builtCommand.Name()
		if _, seen := seenNames[commandName]; seen {
			return DuplicateCommandError{Name: commandName}
		}
		seenNames[commandName] = struct{}{}
		builtCommands = append(builtCommands, builtCommand)
	}

	for _, builtCommand := range builtCommands {
		rootCommand.AddCommand(builtCommand)
		registry.registeredNames = append(registry.registeredNames, builtCommand.Name())
	}

	return nil
}

// Names returns the registered command names in registration order.
func (registry *Registry) Names() []string {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()

	return append([]string(nil), registry.registeredNames...)
}
