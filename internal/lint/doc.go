// Package lint implements the lint command: it announces and runs the external
// linter over a fixed set of paths and propagates a failing exit code.
package lint
