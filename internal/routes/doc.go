// Package routes implements the routes command, which lists the HTTP routes
// registered by the application blueprints.
package routes
