// Package blueprints groups HTTP routes into named blueprints and attaches a
// fixed list of them to the application router.
//
// The list returned by Default is the only source of blueprints; there is no
// discovery by naming convention. A Registry accepts a single registration pass
// and rejects duplicate names, so a double registration fails at startup instead
// of silently shadowing routes.
package blueprints
