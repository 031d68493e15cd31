package lint

import (
	"strings"

	"github.com/temirov/webapp/internal/execshell"
	pathutils "github.com/temirov/webapp/internal/utils/path"
)

const (
	defaultLintSubcommandConstant   = "run"
	entryPackagePathConstant        = "."
	applicationPackagesPathConstant = "./internal/..."
)

var lintConfigurationHomeDirectoryExpander = pathutils.NewHomeExpander()

// Configuration describes how the external linter is invoked.
type Configuration struct {
	Executable       string   `mapstructure:"executable"`
	Arguments        []string `mapstructure:"arguments"`
	Paths            []string `mapstructure:"paths"`
	WorkingDirectory string   `mapstructure:"working_directory"`
}

// DefaultConfiguration lints the entry package and the application packages with golangci-lint.
func DefaultConfiguration() Configuration {
	return Configuration{
		Executable: string(execshell.CommandGolangCILint),
		Arguments:  []string{defaultLintSubcommandConstant},
		Paths:      []string{entryPackagePathConstant, applicationPackagesPathConstant},
	}
}

// Sanitize trims configured values, expands a leading "~" in the working
// directory and restores defaults for a missing executable or an empty path list.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	sanitized := Configuration{
		Executable:       strings.TrimSpace(configuration.Executable),
		Arguments:        sanitizeValues(configuration.Arguments),
		Paths:            sanitizeValues(configuration.Paths),
		WorkingDirectory: lintConfigurationHomeDirectoryExpander.Expand(strings.TrimSpace(configuration.WorkingDirectory)),
	}
	if len(sanitized.Executable) == 0 {
		sanitized.Executable = defaults.Executable
		if len(sanitized.Arguments) == 0 {
			sanitized.Arguments = defaults.Arguments
		}
	}
	if len(sanitized.Paths) == 0 {
		sanitized.Paths = defaults.Paths
	}
	return sanitized
}

func sanitizeValues(candidateValues []string) []string {
	sanitizedValues := make([]string, 0, len(candidateValues))
	for _, candidateValue := range candidateValues {
		trimmedValue := strings.TrimSpace(candidateValue)
		if len(trimmedValue) == 0 {
			continue
		}
		sanitizedValues = append(sanitizedValues, trimmedValue)
	}
	if len(sanitizedValues) == 0 {
		return nil
	}
	return sanitizedValues
}
