// Package pathutils normalizes user supplied filesystem paths from configuration.
package pathutils
