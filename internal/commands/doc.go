// Package commands attaches a fixed list of Cobra command builders to the
// application's root command, rejecting duplicate names and repeated
// registration.
package commands
