// Package render applies overlay placements onto video frames.
package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/thelllmike/virtual-tryon/pkg/overlay"
)

// Composite draws both placement halves onto dst with the shared roll
// rotation. Each half is warped with a single affine transform
// (translate to center, rotate, offset, scale), so the seam between
// halves stays coincident at every roll angle. Zero-area halves are
// skipped without error.
func Composite(dst *image.RGBA, p overlay.Placement) {
	compositeHalf(dst, p, p.Left)
	compositeHalf(dst, p, p.Right)
}

func compositeHalf(dst *image.RGBA, p overlay.Placement, half overlay.HalfOp) {
	if half.Image == nil || half.Width <= 0 || half.Height <= 0 {
		return
	}

	sb := half.Image.Bounds()
	sw := float64(sb.Dx())
	sh := float64(sb.Dy())
	if sw == 0 || sh == 0 {
		return
	}

	kx := half.Width / sw
	ky := half.Height / sh

	sin, cos := math.Sincos(p.Roll)

	// dst = translate(center) * rotate(roll) * translate(offset) * scale
	m := f64.Aff3{
		cos * kx, -sin * ky, cos*half.OffsetX - sin*half.OffsetY + p.Center.X,
		sin * kx, cos * ky, sin*half.OffsetX + cos*half.OffsetY + p.Center.Y,
	}

	draw.ApproxBiLinear.Transform(dst, m, half.Image, sb, draw.Over, nil)
}
