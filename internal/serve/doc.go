// Package serve implements the serve command, which hosts the application
// handler on a TCP listener and shuts it down gracefully on SIGINT or SIGTERM.
package serve
