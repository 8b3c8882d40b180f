// Package debug provides global debug logging flags
package debug

import "fmt"

// Enabled controls whether debug logging is active
var Enabled bool

// Mesh controls whether verbose landmark logs are shown (per-detection poses,
// topology sizes). Use --debug-mesh flag to enable these very verbose logs
var Mesh bool

// Log prints a message only if debug mode is enabled
func Log(format string, args ...interface{}) {
	if Enabled {
		fmt.Printf(format, args...)
	}
}

// MeshLog prints a message only if mesh debug mode is enabled
func MeshLog(format string, args ...interface{}) {
	if Mesh {
		fmt.Printf(format, args...)
	}
}
