// Package pose turns raw landmark meshes into a stable head-pose stream.
//
// Extract reduces one mesh to a compact descriptor (center, eye distance,
// roll, yaw); Smoother removes frame-to-frame jitter with an exponential
// moving average.
package pose

import "github.com/thelllmike/virtual-tryon/pkg/facemesh"

// Point2 is a 2D position in frame pixel coordinates.
type Point2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pose is the compact head-pose descriptor, raw or smoothed.
//
// EyeDistance is > 0 whenever the pose came from a valid detection.
// Yaw is the normalized horizontal turn estimate, always in [-1, 1];
// positive means the head is turned toward the viewer's right.
type Pose struct {
	Center      Point2  `json:"center"`
	EyeDistance float64 `json:"eye_distance"`
	Roll        float64 `json:"roll"` // radians, in-plane rotation
	Yaw         float64 `json:"yaw"`

	// Mesh is the source landmark sequence, kept only for debug
	// drawing. Never used for geometry downstream.
	Mesh *facemesh.Mesh `json:"-"`
}
