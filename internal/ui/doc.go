// Package ui renders command execution events for people reading the terminal,
// while detailed telemetry keeps flowing through the structured logger.
package ui
