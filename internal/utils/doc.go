// Package utils exposes reusable helpers consumed by multiple commands.
//
// ConfigurationLoader layers embedded defaults, configuration files and
// WEBAPP_* environment variables through Viper; LoggerFactory builds the zap
// loggers injected into every command; FlushingWriter keeps streamed tool
// output visible as it is produced.
package utils
