// Package gotest implements the test command, which runs the external test tool
// against the project's fixed test target and propagates its exit code.
//
// CommandBuilder wires the Cobra command, Service performs the invocation through
// execshell, and Configuration holds the executable, base arguments, target and
// working directory loaded from the application configuration.
package gotest
