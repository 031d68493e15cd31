package serve

import (
	"strings"
	"time"
)

const (
	defaultAddressConstant         = "127.0.0.1:5000"
	defaultShutdownTimeoutConstant = 5 * time.Second
)

// Configuration describes the HTTP listener.
type Configuration struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DefaultConfiguration listens on the loopback interface, port 5000.
func DefaultConfiguration() Configuration {
	return Configuration{
		Address:         defaultAddressConstant,
		ShutdownTimeout: defaultShutdownTimeoutConstant,
	}
}

// Sanitize trims the address and restores defaults for missing values.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := Configuration{
		Address:         strings.TrimSpace(configuration.Address),
		ShutdownTimeout: configuration.ShutdownTimeout,
	}
	if len(sanitized.Address) == 0 {
		sanitized.Address = defaultAddressConstant
	}
	if sanitized.ShutdownTimeout <= 0 {
		sanitized.ShutdownTimeout = defaultShutdownTimeoutConstant
	}
	return sanitized
}
