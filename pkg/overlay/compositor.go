package overlay

import (
	"image"

	"github.com/thelllmike/virtual-tryon/pkg/pose"
)

// Perspective factors for the split-image tilt illusion. Positive yaw
// grows one half and shrinks the other; height moves less than width
// so the effect stays subtle.
const (
	WidthFactor  = 0.40
	HeightFactor = 0.12
)

// HalfOp is one of the two draw operations a placement produces.
// The rect it describes is axis-aligned in overlay space, before the
// shared roll rotation about the placement center.
type HalfOp struct {
	Image *image.RGBA

	// WidthScale and HeightScale are the yaw-driven per-half factors
	// (1 means no perspective).
	WidthScale  float64
	HeightScale float64

	// Width and Height are the destination size in frame pixels.
	Width  float64
	Height float64

	// OffsetX and OffsetY locate the half's top-left corner relative
	// to the rotation origin. The left half extends leftward
	// (OffsetX = -Width), the right half rightward (OffsetX = 0), so
	// the seam between them stays coincident under roll.
	OffsetX float64
	OffsetY float64
}

// Placement is the full draw plan for one frame: translate to Center,
// rotate by Roll, then draw both halves at their offsets.
type Placement struct {
	Center    pose.Point2
	Roll      float64
	BaseScale float64
	Left      HalfOp
	Right     HalfOp
}

// Compositor maps a smoothed pose and a pre-split asset into a
// placement. It never draws; rendering is pkg/render's job.
type Compositor struct {
	asset *Asset

	// ScaleMultiplier is the user size adjustment on top of the
	// measured eye distance.
	ScaleMultiplier float64
}

// NewCompositor creates a compositor for the given asset.
func NewCompositor(asset *Asset) *Compositor {
	return &Compositor{
		asset:           asset,
		ScaleMultiplier: 1.0,
	}
}

// Asset returns the artwork this compositor places.
func (c *Compositor) Asset() *Asset {
	return c.asset
}

// AnchorSpan returns the designed horizontal distance between the two
// lens-center anchors, in source-image pixels.
func (c *Compositor) AnchorSpan() float64 {
	return (c.asset.Anchors.RightX - c.asset.Anchors.LeftX) * float64(c.asset.Width)
}

// BaseScale ties overlay size to the measured eye separation, the
// single most reliable scale cue. A degenerate anchor span yields 0,
// which produces zero-area draws rather than an error.
func (c *Compositor) BaseScale(eyeDistance float64) float64 {
	span := c.AnchorSpan()
	if span <= 0 {
		return 0
	}
	return (eyeDistance / span) * c.ScaleMultiplier
}

// WidthScales returns the yaw-driven width factors for the left and
// right halves.
func WidthScales(yaw float64) (left, right float64) {
	return 1 + yaw*WidthFactor, 1 - yaw*WidthFactor
}

// HeightScales returns the yaw-driven height factors for the left and
// right halves.
func HeightScales(yaw float64) (left, right float64) {
	return 1 + yaw*HeightFactor, 1 - yaw*HeightFactor
}

// Place computes the two half draws for a smoothed pose.
//
// Each half's vertical offset puts the artwork's designed lens row
// (Anchors.LensY of its height) exactly on the rotation origin, so the
// lenses land on the measured eye midpoint regardless of how tall the
// art is.
func (c *Compositor) Place(p pose.Pose) Placement {
	baseScale := c.BaseScale(p.EyeDistance)
	glassesW := float64(c.asset.Width) * baseScale
	glassesH := float64(c.asset.Height) * baseScale

	leftW, rightW := WidthScales(p.Yaw)
	leftH, rightH := HeightScales(p.Yaw)

	lensY := c.asset.Anchors.LensY

	left := HalfOp{
		Image:       c.asset.Left,
		WidthScale:  leftW,
		HeightScale: leftH,
		Width:       glassesW / 2 * leftW,
		Height:      glassesH * leftH,
	}
	left.OffsetX = -left.Width
	left.OffsetY = -lensY * left.Height

	right := HalfOp{
		Image:       c.asset.Right,
		WidthScale:  rightW,
		HeightScale: rightH,
		Width:       glassesW / 2 * rightW,
		Height:      glassesH * rightH,
	}
	right.OffsetX = 0
	right.OffsetY = -lensY * right.Height

	return Placement{
		Center:    p.Center,
		Roll:      p.Roll,
		BaseScale: baseScale,
		Left:      left,
		Right:     right,
	}
}
