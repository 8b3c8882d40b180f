package pose

import (
	"math"

	"github.com/thelllmike/virtual-tryon/pkg/facemesh"
)

// Yaw blend weights when depth is available. The edge-distance ratio is
// the primary signal; depth damps its noise.
const (
	ratioYawWeight = 0.55
	depthYawWeight = 0.45
)

// Extract reduces one mesh to a raw pose descriptor.
//
// Degenerate geometry (coincident eyes, zero edge distances) yields
// zeroed fields rather than NaN; this never returns an error or panics
// so the render loop can stay up regardless of detector output. Callers
// that care should treat EyeDistance == 0 as an unusable frame.
func Extract(mesh *facemesh.Mesh) Pose {
	left, right := mesh.EyeCenters()

	dx := right.X - left.X
	dy := right.Y - left.Y

	p := Pose{
		Center: Point2{
			X: (left.X + right.X) / 2,
			Y: (left.Y + right.Y) / 2,
		},
		EyeDistance: math.Hypot(dx, dy),
		Roll:        math.Atan2(dy, dx),
		Mesh:        mesh,
	}

	p.Yaw = clamp(estimateYaw(mesh, left, right, p.EyeDistance), -1, 1)
	return p
}

// estimateYaw computes the horizontal turn estimate from the nose-to-edge
// symmetry ratio, blended with an eye-depth signal when available.
func estimateYaw(mesh *facemesh.Mesh, left, right facemesh.Point, eyeDistance float64) float64 {
	nose := mesh.At(facemesh.NoseTip)
	edgeL := mesh.At(facemesh.FaceEdgeLeft)
	edgeR := mesh.At(facemesh.FaceEdgeRight)

	dLeft := math.Hypot(nose.X-edgeL.X, nose.Y-edgeL.Y)
	dRight := math.Hypot(nose.X-edgeR.X, nose.Y-edgeR.Y)

	var yaw float64
	if sum := dLeft + dRight; sum > 0 {
		yaw = (dLeft - dRight) / sum
	}

	if mesh.HasDepth {
		zYaw := (right.Z - left.Z) / math.Max(eyeDistance*0.5, 1)
		yaw = yaw*ratioYawWeight + zYaw*depthYawWeight
	}

	return yaw
}

// clamp limits a value to a range
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
