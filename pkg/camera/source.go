package camera

import (
	"context"
	"image"
	"image/draw"
)

// Source is the interface for frame producers.
type Source interface {
	// Capture grabs the next frame.
	Capture(ctx context.Context) (*image.RGBA, error)

	// Close releases capture resources.
	Close() error
}

// toRGBA returns img as *image.RGBA, copying only when necessary.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
