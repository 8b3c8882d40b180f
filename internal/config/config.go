// Package config provides configuration helpers for virtual-tryon commands.
package config

import (
	"os"
	"strconv"
)

// Default service configuration.
const (
	DefaultWebPort     = "8090"
	DefaultMeshAddr    = "ws://127.0.0.1:9004/mesh"
	DefaultCameraID    = 0
	DefaultOverlayPath = "assets/glasses.png"
)

// WebPort returns the dashboard port from TRYON_PORT env var.
// Falls back to the default if not set.
func WebPort() string {
	if port := os.Getenv("TRYON_PORT"); port != "" {
		return port
	}
	return DefaultWebPort
}

// MeshAddr returns the landmark sidecar websocket address from MESH_ADDR.
func MeshAddr() string {
	if addr := os.Getenv("MESH_ADDR"); addr != "" {
		return addr
	}
	return DefaultMeshAddr
}

// CameraID returns the capture device index from CAMERA_ID env var.
func CameraID() int {
	if v := os.Getenv("CAMERA_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			return id
		}
	}
	return DefaultCameraID
}

// OverlayPath returns the overlay image path from OVERLAY_PATH env var.
func OverlayPath() string {
	if path := os.Getenv("OVERLAY_PATH"); path != "" {
		return path
	}
	return DefaultOverlayPath
}
