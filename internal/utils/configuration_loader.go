package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	configurationKeySeparatorConstant          = "."
	environmentVariableSeparatorConstant       = "_"
	listValueSeparatorConstant                 = ","
	embeddedDefaultsMergeErrorTemplateConstant = "unable to apply built-in configuration defaults: %w"
	configurationFileReadErrorTemplateConstant = "unable to read configuration file: %w"
	configurationDecodeErrorTemplateConstant   = "unable to decode configuration: %w"
)

// ConfigurationLoader resolves the application configuration from, in
// increasing precedence: built-in defaults, a config file found on the search
// paths or named explicitly, and PREFIX_SECTION_KEY environment variables
// (WEBAPP_TOOLS_LINT_PATHS for tools.lint.paths).
type ConfigurationLoader struct {
	configurationName    string
	configurationType    string
	environmentPrefix    string
	searchPaths          []string
	embeddedDefaults     []byte
	embeddedDefaultsType string
}

// LoadedConfiguration reports where the configuration came from.
type LoadedConfiguration struct {
	// ConfigFileUsed is empty when no file was found.
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader for files named configurationName.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	return &ConfigurationLoader{
		configurationName: configurationName,
		configurationType: configurationType,
		environmentPrefix: environmentPrefix,
		searchPaths:       append([]string(nil), searchPaths...),
	}
}

// SetEmbeddedConfiguration installs the built-in defaults document. An empty
// document clears previously installed defaults.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte, configurationType string) {
	if loader == nil {
		return
	}

	loader.embeddedDefaultsType = strings.TrimSpace(configurationType)
	loader.embeddedDefaults = nil
	if len(configurationData) > 0 {
		loader.embeddedDefaults = append([]byte(nil), configurationData...)
	}
}

// LoadConfiguration decodes the resolved configuration into targetConfiguration.
// defaultValues apply only to keys no other source sets. A missing config file
// on the search paths is not an error; an explicit configurationFilePath that
// cannot be read is.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance := viper.New()

	if mergeError := loader.mergeEmbeddedDefaults(viperInstance); mergeError != nil {
		return LoadedConfiguration{}, fmt.Errorf(embeddedDefaultsMergeErrorTemplateConstant, mergeError)
	}

	loader.bindEnvironment(viperInstance)
	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	if readError := loader.mergeConfigurationFile(viperInstance, configurationFilePath); readError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationFileReadErrorTemplateConstant, readError)
	}

	// Environment overrides arrive as plain strings: "a,b" decodes into lists and "5s" into durations.
	decodeHook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(listValueSeparatorConstant),
	)
	if decodeError := viperInstance.Unmarshal(targetConfiguration, viper.DecodeHook(decodeHook)); decodeError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationDecodeErrorTemplateConstant, decodeError)
	}

	return LoadedConfiguration{ConfigFileUsed: viperInstance.ConfigFileUsed()}, nil
}

func (loader *ConfigurationLoader) mergeEmbeddedDefaults(viperInstance *viper.Viper) error {
	if len(loader.embeddedDefaults) == 0 {
		return nil
	}

	embeddedType := loader.embeddedDefaultsType
	if len(embeddedType) == 0 {
		embeddedType = loader.configurationType
	}
	viperInstance.SetConfigType(embeddedType)
	return viperInstance.MergeConfig(bytes.NewReader(loader.embeddedDefaults))
}

func (loader *ConfigurationLoader) bindEnvironment(viperInstance *viper.Viper) {
	viperInstance.SetEnvPrefix(loader.environmentPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(configurationKeySeparatorConstant, environmentVariableSeparatorConstant))
	viperInstance.AutomaticEnv()
}

func (loader *ConfigurationLoader) mergeConfigurationFile(viperInstance *viper.Viper, configurationFilePath string) error {
	viperInstance.SetConfigType(loader.configurationType)
	if len(configurationFilePath) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	} else {
		viperInstance.SetConfigName(loader.configurationName)
		for _, searchPath := range loader.searchPaths {
			viperInstance.AddConfigPath(searchPath)
		}
	}

	readError := viperInstance.MergeInConfig()
	var notFoundError viper.ConfigFileNotFoundError
	if readError != nil && !errors.As(readError, &notFoundError) {
		return readError
	}
	return nil
}
