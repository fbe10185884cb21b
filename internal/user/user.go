// Package user resolves the current system username, used to stamp exported
// snapshots with who made them.
package user

import (
	"os"
	"os/user"
)

// CurrentUsername returns the current system username. It prefers the OS
// account lookup, falls back to $USER for restricted environments, and
// returns "unknown" rather than an empty string.
func CurrentUsername() string {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "unknown"
}
