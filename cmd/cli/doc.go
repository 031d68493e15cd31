// Package cli assembles the webapp application: the gin router with every
// registered blueprint and the Cobra command tree with the developer commands
// (test, lint, serve, routes). NewApplication performs all registration up
// front and returns an application that is not modified afterwards.
package cli
