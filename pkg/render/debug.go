package render

import (
	"image"
	"image/color"

	"github.com/thelllmike/virtual-tryon/pkg/facemesh"
)

var meshDotColor = color.RGBA{R: 0, G: 220, B: 120, A: 255}

// DrawMesh paints each landmark as a small dot. Debug aid only; the
// mesh carried on a smoothed pose is the latest raw detection, never
// smoothed geometry.
func DrawMesh(dst *image.RGBA, mesh *facemesh.Mesh) {
	if mesh == nil {
		return
	}
	b := dst.Bounds()
	for _, pt := range mesh.Points {
		x := int(pt.X)
		y := int(pt.Y)
		if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		dst.SetRGBA(x, y, meshDotColor)
	}
}
