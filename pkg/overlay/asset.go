// Package overlay holds the glasses artwork and the perspective
// compositor that places it over a detected face.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/thelllmike/virtual-tryon/internal/httpc"
)

// MinDimension is the smallest usable artwork size in either dimension.
// Smaller images are treated as missing so the caller can substitute a
// procedural fallback.
const MinDimension = 32

// ErrImageTooSmall marks artwork below MinDimension.
var ErrImageTooSmall = errors.New("overlay image below minimum size")

// Anchors are the designed reference positions inside the artwork, as
// fractions of the image dimensions. LeftX/RightX are the lens centers,
// LensY the lens row both share.
type Anchors struct {
	LeftX  float64 `json:"left_x"`
	RightX float64 `json:"right_x"`
	LensY  float64 `json:"lens_y"`
}

// DefaultAnchors returns the anchor ratios the stock artwork is drawn for.
func DefaultAnchors() Anchors {
	return Anchors{LeftX: 0.30, RightX: 0.70, LensY: 0.45}
}

// Asset is a loaded overlay image pre-split into left and right halves.
// The split happens once at load time; the asset is immutable afterward.
type Asset struct {
	Width  int
	Height int

	Left  *image.RGBA // left half, x in [0, Width/2)
	Right *image.RGBA // right half, x in [Width/2, Width)

	Anchors Anchors
}

// New builds an asset from a decoded image, splitting it at the
// horizontal midpoint.
func New(img image.Image, anchors Anchors) (*Asset, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < MinDimension || h < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooSmall, w, h)
	}

	half := w / 2

	left := image.NewRGBA(image.Rect(0, 0, half, h))
	draw.Draw(left, left.Bounds(), img, b.Min, draw.Src)

	right := image.NewRGBA(image.Rect(0, 0, w-half, h))
	draw.Draw(right, right.Bounds(), img, b.Min.Add(image.Pt(half, 0)), draw.Src)

	return &Asset{
		Width:   w,
		Height:  h,
		Left:    left,
		Right:   right,
		Anchors: anchors,
	}, nil
}

// Load decodes an overlay image from disk.
func Load(path string, anchors Anchors) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open overlay: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode overlay %s: %w", path, err)
	}
	return New(img, anchors)
}

// Fetch downloads and decodes an overlay image by URL.
func Fetch(url string, anchors Anchors) (*Asset, error) {
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch overlay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("fetch overlay %s: status %d", url, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode overlay %s: %w", url, err)
	}
	return New(img, anchors)
}

// Procedural draws a simple round-lens frame for use when the real
// artwork is missing or too small. Lens centers sit on DefaultAnchors.
func Procedural(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	anchors := DefaultAnchors()

	frame := color.RGBA{R: 20, G: 20, B: 24, A: 255}
	lensR := float64(h) * 0.35
	cy := anchors.LensY * float64(h)

	drawRing := func(cx float64) {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dx := float64(x) - cx
				dy := float64(y) - cy
				d := dx*dx + dy*dy
				if d <= lensR*lensR && d >= (lensR-3)*(lensR-3) {
					img.SetRGBA(x, y, frame)
				}
			}
		}
	}
	drawRing(anchors.LeftX * float64(w))
	drawRing(anchors.RightX * float64(w))

	// Bridge between the lenses.
	bridgeY := int(cy)
	x0 := int(anchors.LeftX*float64(w) + lensR)
	x1 := int(anchors.RightX*float64(w) - lensR)
	for x := x0; x <= x1 && x < w; x++ {
		for dy := -1; dy <= 1; dy++ {
			if bridgeY+dy >= 0 && bridgeY+dy < h {
				img.SetRGBA(x, bridgeY+dy, frame)
			}
		}
	}

	return img
}
