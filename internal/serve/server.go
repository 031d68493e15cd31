package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	handlerMissingMessageConstant  = "http handler not configured"
	listenerMissingMessageConstant = "listener not configured"
	serverListeningMessageConstant = "serving application"
	serverStoppingMessageConstant  = "shutting down server"
	serverStoppedMessageConstant   = "server stopped"
	logFieldAddressConstant        = "address"
	shutdownErrorTemplateConstant  = "server shutdown failed: %w"
	readHeaderTimeoutConstant      = 10 * time.Second
)

// ErrHandlerMissing indicates the server has nothing to serve.
var ErrHandlerMissing = errors.New(handlerMissingMessageConstant)

// ErrListenerMissing indicates Serve received a nil listener.
var ErrListenerMissing = errors.New(listenerMissingMessageConstant)

// Server serves an http.Handler until its context is cancelled.
type Server struct {
	handler         http.Handler
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

// NewServer constructs a Server. A nil logger is replaced by a no-op logger.
func NewServer(handler http.Handler, logger *zap.Logger, shutdownTimeout time.Duration) (*Server, error) {
	if handler == nil {
		return nil, ErrHandlerMissing
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeoutConstant
	}
	return &Server{handler: handler, logger: logger, shutdownTimeout: shutdownTimeout}, nil
}

// Serve accepts connections on listener until serveContext is done, then shuts
// down gracefully within the shutdown timeout. It returns nil after a clean shutdown.
func (server *Server) Serve(serveContext context.Context, listener net.Listener) error {
	if listener == nil {
		return ErrListenerMissing
	}

	httpServer := &http.Server{
		Handler:           server.handler,
		ReadHeaderTimeout: readHeaderTimeoutConstant,
		ErrorLog:          zap.NewStdLog(server.logger),
	}

	serveErrors := make(chan error, 1)
	go func() {
		serveErrors <- httpServer.Serve(listener)
	}()

	listenerAddress := listener.Addr().String()
	server.logger.Info(serverListeningMessageConstant, zap.String(logFieldAddressConstant, listenerAddress))

	select {
	case serveError := <-serveErrors:
		if errors.Is(serveError, http.ErrServerClosed) {
			return nil
		}
		return serveError
	case <-serveContext.Done():
	}

	server.logger.Info(serverStoppingMessageConstant, zap.String(logFieldAddressConstant, listenerAddress))

	shutdownContext, cancelShutdown := context.WithTimeout(context.Background(), server.shutdownTimeout)
	defer cancelShutdown()

	if shutdownError := httpServer.Shutdown(shutdownContext); shutdownError != nil {
		return fmt.Errorf(shutdownErrorTemplateConstant, shutdownError)
	}
	if serveError := <-serveErrors; serveError != nil && !errors.Is(serveError, http.ErrServerClosed) {
		return serveError
	}

	server.logger.Info(serverStoppedMessageConstant, zap.String(logFieldAddressConstant, listenerAddress))
	return nil
}
