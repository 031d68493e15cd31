// Package execshell provides structured helpers for invoking external tools.
//
// ShellExecutor wraps a CommandRunner with lifecycle logging and typed errors,
// and OSCommandRunner is the default os/exec backed runner. The test and lint
// commands use it to run the Go toolchain and the linter and to recover their
// exit codes.
package execshell
