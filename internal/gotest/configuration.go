package gotest

import (
	"strings"

	"github.com/temirov/webapp/internal/execshell"
	pathutils "github.com/temirov/webapp/internal/utils/path"
)

const (
	defaultTestSubcommandConstant = "test"
	defaultTestTargetConstant     = "./..."
)

var testConfigurationHomeDirectoryExpander = pathutils.NewHomeExpander()

// Configuration describes how the external test runner is invoked.
type Configuration struct {
	Executable       string   `mapstructure:"executable"`
	Arguments        []string `mapstructure:"arguments"`
	Target           string   `mapstructure:"target"`
	WorkingDirectory string   `mapstructure:"working_directory"`
}

// DefaultConfiguration runs "go test ./..." from the current directory.
func DefaultConfiguration() Configuration {
	return Configuration{
		Executable: string(execshell.CommandGo),
		Arguments:  []string{defaultTestSubcommandConstant},
		Target:     defaultTestTargetConstant,
	}
}

// Sanitize trims configured values, drops empty arguments, expands the working
// directory and restores defaults for missing executable and target.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	sanitized := Configuration{
		Executable:       strings.TrimSpace(configuration.Executable),
		Target:           strings.TrimSpace(configuration.Target),
		WorkingDirectory: testConfigurationHomeDirectoryExpander.Expand(strings.TrimSpace(configuration.WorkingDirectory)),
	}
	for _, argument := range configuration.Arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) > 0 {
			sanitized.Arguments = append(sanitized.Arguments, trimmedArgument)
		}
	}
	if len(sanitized.Executable) == 0 {
		sanitized.Executable = defaults.Executable
		if len(sanitized.Arguments) == 0 {
			sanitized.Arguments = defaults.Arguments
		}
	}
	if len(sanitized.Target) == 0 {
		sanitized.Target = defaults.Target
	}
	return sanitized
}
