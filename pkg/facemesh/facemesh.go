// Package facemesh defines the face landmark topology and the provider
// boundary for landmark detection backends.
//
// The topology follows the MediaPipe FaceMesh convention: 468 base landmarks,
// or 478 when the detector runs with iris refinement. Consumers address
// landmarks through the named role constants below instead of inlining
// numeric indices.
package facemesh

import "fmt"

// Topology sizes. A mesh is either the base topology or the refined one
// with ten extra iris landmarks appended.
const (
	BaseLandmarks = 468
	IrisLandmarks = 478
)

// Semantic landmark roles mapped to their fixed topology indices.
// "Left" and "right" are in image coordinates (viewer's left/right).
const (
	NoseTip = 1

	LeftEyeOuter  = 33
	LeftEyeInner  = 133
	RightEyeInner = 362
	RightEyeOuter = 263

	FaceEdgeLeft  = 234
	FaceEdgeRight = 454

	// Iris centers, only present in the refined topology.
	LeftIrisCenter  = 468
	RightIrisCenter = 473
)

// Point is a single landmark position in frame pixel coordinates.
// Z is an estimated relative depth; it is only meaningful when the
// owning mesh reports HasDepth.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Mesh is one frame's detection result: a fixed-size ordered landmark
// sequence. Immutable once produced by a provider.
type Mesh struct {
	Points   []Point
	HasDepth bool
}

// Len returns the number of landmarks in the mesh.
func (m *Mesh) Len() int {
	return len(m.Points)
}

// HasIris reports whether the mesh carries the refined iris landmarks.
func (m *Mesh) HasIris() bool {
	return len(m.Points) >= IrisLandmarks
}

// At returns the landmark at the given topology index.
func (m *Mesh) At(i int) Point {
	return m.Points[i]
}

// Validate checks the sequence length against the two supported
// topology sizes. Called once per detection, so role lookups elsewhere
// can index without bounds concerns.
func (m *Mesh) Validate() error {
	if n := len(m.Points); n != BaseLandmarks && n != IrisLandmarks {
		return fmt.Errorf("unexpected landmark count %d (want %d or %d)", n, BaseLandmarks, IrisLandmarks)
	}
	return nil
}

// EyeCenters returns the left and right eye positions.
// With the refined topology the iris centers are used directly; the
// base topology falls back to the midpoint of each eye's inner and
// outer corners. Callers never need to know which detector variant ran.
func (m *Mesh) EyeCenters() (left, right Point) {
	if m.HasIris() {
		return m.Points[LeftIrisCenter], m.Points[RightIrisCenter]
	}
	left = midpoint(m.Points[LeftEyeOuter], m.Points[LeftEyeInner])
	right = midpoint(m.Points[RightEyeInner], m.Points[RightEyeOuter])
	return left, right
}

func midpoint(a, b Point) Point {
	return Point{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
		Z: (a.Z + b.Z) / 2,
	}
}
