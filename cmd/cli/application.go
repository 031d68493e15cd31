package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/webapp/internal/blueprints"
	"github.com/temirov/webapp/internal/commands"
	"github.com/temirov/webapp/internal/gotest"
	"github.com/temirov/webapp/internal/lint"
	"github.com/temirov/webapp/internal/routes"
	"github.com/temirov/webapp/internal/serve"
	"github.com/temirov/webapp/internal/utils"
)

const (
	applicationNameConstant                    = "webapp"
	applicationShortDescriptionConstant        = "Hello World web application and its developer commands"
	applicationLongDescriptionConstant         = "webapp serves a single Hello World route and ships commands that run the test suite and the linter."
	configFileFlagNameConstant                 = "config"
	configFileFlagUsageConstant                = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                   = "log-level"
	logLevelFlagUsageConstant                  = "Override the configured log level."
	logFormatFlagNameConstant                  = "log-format"
	logFormatFlagUsageConstant                 = "Override the configured log format (structured or console)."
	commonConfigurationKeyConstant             = "common"
	commonLogLevelConfigKeyConstant            = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant           = commonConfigurationKeyConstant + ".log_format"
	environmentPrefixConstant                  = "WEBAPP"
	configurationNameConstant                  = "config"
	configurationTypeConstant                  = "yaml"
	configurationInitializedMessageConstant    = "configuration initialized"
	applicationAssembledMessageConstant        = "application assembled"
	configurationLogLevelFieldConstant         = "log_level"
	configurationLogFormatFieldConstant        = "log_format"
	configurationFileFieldConstant             = "config_file"
	logFieldBlueprintsConstant                 = "blueprints"
	logFieldCommandsConstant                   = "commands"
	configurationLoadErrorTemplateConstant     = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant        = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant            = "unable to flush logger: %w"
	blueprintRegistrationErrorTemplateConstant = "unable to register blueprints: %w"
	commandRegistrationErrorTemplateConstant   = "unable to register commands: %w"
	defaultConfigurationSearchPathConstant     = "."
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Server serve.Configuration            `mapstructure:"server"`
	Tools  ApplicationToolsConfiguration  `mapstructure:"tools"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationToolsConfiguration holds the external tool invocations.
type ApplicationToolsConfiguration struct {
	Test gotest.Configuration `mapstructure:"test"`
	Lint lint.Configuration   `mapstructure:"lint"`
}

// Application owns the HTTP router and the Cobra root command together with
// the configuration and logger shared by every command. It is fully assembled
// by NewApplication and not modified afterwards.
type Application struct {
	rootCommand           *cobra.Command
	router                *gin.Engine
	blueprintRegistry     *blueprints.Registry
	commandRegistry       *commands.Registry
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	logLevelFlagValue     string
	logFormatFlagValue    string
}

// NewApplication builds the router and the command tree, registering every
// blueprint and command before returning.
func NewApplication() (*Application, error) {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		[]string{defaultConfigurationSearchPathConstant},
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	gin.SetMode(gin.ReleaseMode)

	application := &Application{
		router:              gin.New(),
		blueprintRegistry:   blueprints.NewRegistry(),
		commandRegistry:     commands.NewRegistry(),
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
		configuration:       defaultApplicationConfiguration(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Root flags are parsed before descending so that they still apply to
		// commands that forward their arguments verbatim.
		TraverseChildren: true,
		// Traversal bypasses cobra's unknown command detection, so a mistyped
		// command name has to fail here instead of falling through to help.
		Args: cobra.NoArgs,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)

	application.rootCommand = cobraCommand

	if registrationError := application.blueprintRegistry.RegisterAll(application.router, blueprints.Default()); registrationError != nil {
		return nil, fmt.Errorf(blueprintRegistrationErrorTemplateConstant, registrationError)
	}

	if registrationError := application.commandRegistry.RegisterAll(cobraCommand, application.commandBuilders()); registrationError != nil {
		return nil, fmt.Errorf(commandRegistrationErrorTemplateConstant, registrationError)
	}

	return application, nil
}

// commandBuilders is the static list of developer commands.
func (application *Application) commandBuilders() []commands.Builder {
	loggerProvider := func() *zap.Logger {
		return application.logger
	}

	return []commands.Builder{
		&gotest.CommandBuilder{
			LoggerProvider: loggerProvider,
			ConfigurationProvider: func() gotest.Configuration {
				return application.configuration.Tools.Test
			},
		},
		&lint.CommandBuilder{
			LoggerProvider: loggerProvider,
			ConfigurationProvider: func() lint.Configuration {
				return application.configuration.Tools.Lint
			},
		},
		&serve.CommandBuilder{
			LoggerProvider: loggerProvider,
			ConfigurationProvider: func() serve.Configuration {
				return application.configuration.Server
			},
			HandlerProvider: application.Handler,
		},
		&routes.CommandBuilder{
			RoutesProvider: application.router.Routes,
		},
	}
}

// Handler exposes the assembled router.
func (application *Application) Handler() http.Handler {
	return application.router
}

// RootCommand exposes the root command, mainly so callers can set arguments and outputs.
func (application *Application) RootCommand() *cobra.Command {
	return application.rootCommand
}

// BlueprintNames lists the registered blueprints in registration order.
func (application *Application) BlueprintNames() []string {
	return application.blueprintRegistry.Names()
}

// CommandNames lists the registered commands in registration order.
func (application *Application) CommandNames() []string {
	return application.commandRegistry.Names()
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	application, applicationError := NewApplication()
	if applicationError != nil {
		return applicationError
	}
	return application.Execute()
}

func defaultApplicationConfiguration() ApplicationConfiguration {
	return ApplicationConfiguration{
		Common: ApplicationCommonConfiguration{
			LogLevel:  string(utils.LogLevelInfo),
			LogFormat: string(utils.LogFormatConsole),
		},
		Server: serve.DefaultConfiguration(),
		Tools: ApplicationToolsConfiguration{
			Test: gotest.DefaultConfiguration(),
			Lint: lint.DefaultConfiguration(),
		},
	}
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatConsole),
	}

	var loadedApplicationConfiguration ApplicationConfiguration
	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &loadedApplicationConfiguration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configuration = loadedApplicationConfiguration
	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)
	application.logger.Debug(
		applicationAssembledMessageConstant,
		zap.Strings(logFieldBlueprintsConstant, application.BlueprintNames()),
		zap.Strings(logFieldCommandsConstant, application.CommandNames()),
	)

	return nil
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
