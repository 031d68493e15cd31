package serve

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	serveCommandUseConstant                 = "serve"
	serveCommandShortDescriptionConstant    = "Serve the application over HTTP"
	serveCommandLongDescriptionConstant     = "serve starts an HTTP server for the application and stops gracefully on interrupt."
	addressFlagNameConstant                 = "address"
	addressFlagUsageConstant                = "Listen address (host:port); overrides server.address."
	unexpectedArgumentsErrorMessageConstant = "serve does not accept positional arguments"
	handlerProviderMissingMessageConstant   = "http handler provider not configured"
	listenErrorTemplateConstant             = "unable to listen on %s: %w"
	tcpNetworkConstant                      = "tcp"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current server configuration.
type ConfigurationProvider func() Configuration

// HandlerProvider returns the assembled application handler.
type HandlerProvider func() http.Handler

// ListenerFactory opens the listening socket.
type ListenerFactory func(network string, address string) (net.Listener, error)

// CommandBuilder assembles the serve command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	HandlerProvider       HandlerProvider
	ListenerFactory       ListenerFactory
}

// Build constructs the serve command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	if builder.HandlerProvider == nil {
		return nil, errors.New(handlerProviderMissingMessageConstant)
	}

	serveCommand := &cobra.Command{
		Use:   serveCommandUseConstant,
		Short: serveCommandShortDescriptionConstant,
		Long:  serveCommandLongDescriptionConstant,
		RunE:  builder.run,
	}
	serveCommand.Flags().String(addressFlagNameConstant, "", addressFlagUsageConstant)

	return serveCommand, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New(unexpectedArgumentsErrorMessageConstant)
	}

	configuration := builder.resolveConfiguration()
	if command.Flags().Changed(addressFlagNameConstant) {
		addressFlagValue, addressFlagError := command.Flags().GetString(addressFlagNameConstant)
		if addressFlagError != nil {
			return addressFlagError
		}
		configuration.Address = addressFlagValue
		configuration = configuration.Sanitize()
	}

	logger := builder.resolveLogger()
	server, serverError := NewServer(builder.HandlerProvider(), logger, configuration.ShutdownTimeout)
	if serverError != nil {
		return serverError
	}

	listener, listenError := builder.resolveListenerFactory()(tcpNetworkConstant, configuration.Address)
	if listenError != nil {
		return fmt.Errorf(listenErrorTemplateConstant, configuration.Address, listenError)
	}

	serveContext, stopNotifications := signal.NotifyContext(command.Context(), os.Interrupt, syscall.SIGTERM)
	defer stopNotifications()

	return server.Serve(serveContext, listener)
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveListenerFactory() ListenerFactory {
	if builder.ListenerFactory != nil {
		return builder.ListenerFactory
	}

	return net.Listen
}
