// Package env keeps names of environment variables with special significance to
// ITMOScript.
package env

// Environment variables with special significance to ITMOScript.
const (
	HOME            = "HOME"
	USERNAME        = "USERNAME"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
	XDG_STATE_HOME  = "XDG_STATE_HOME"
	// If set to a non-empty value, diagnostics are not styled even when
	// writing to a terminal.
	NO_COLOR = "NO_COLOR"
)
