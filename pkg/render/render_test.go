package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/thelllmike/virtual-tryon/pkg/facemesh"
	"github.com/thelllmike/virtual-tryon/pkg/overlay"
	"github.com/thelllmike/virtual-tryon/pkg/pose"
)

func solidRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestComposite_NoRollLandsOnExpectedRects(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 200, 200))
	red := solidRGBA(20, 10, color.RGBA{R: 255, A: 255})
	blue := solidRGBA(20, 10, color.RGBA{B: 255, A: 255})

	p := overlay.Placement{
		Center: pose.Point2{X: 100, Y: 100},
		Left: overlay.HalfOp{
			Image: red, Width: 40, Height: 20, OffsetX: -40, OffsetY: -10,
		},
		Right: overlay.HalfOp{
			Image: blue, Width: 40, Height: 20, OffsetX: 0, OffsetY: -10,
		},
	}

	Composite(frame, p)

	// Interior of the left rect [60,100)x[90,110) must be red.
	if c := frame.RGBAAt(80, 100); c.R < 200 || c.B > 50 {
		t.Errorf("left half interior: got %+v, want red", c)
	}
	// Interior of the right rect [100,140)x[90,110) must be blue.
	if c := frame.RGBAAt(120, 100); c.B < 200 || c.R > 50 {
		t.Errorf("right half interior: got %+v, want blue", c)
	}
	// Outside both rects stays untouched.
	if c := frame.RGBAAt(20, 20); c != (color.RGBA{}) {
		t.Errorf("untouched pixel modified: %+v", c)
	}
}

func TestComposite_ZeroAreaIsNoop(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 50, 50))
	red := solidRGBA(20, 10, color.RGBA{R: 255, A: 255})

	p := overlay.Placement{
		Center: pose.Point2{X: 25, Y: 25},
		Left:   overlay.HalfOp{Image: red, Width: 0, Height: 0},
		Right:  overlay.HalfOp{Image: nil, Width: 10, Height: 10},
	}

	Composite(frame, p)

	for i := range frame.Pix {
		if frame.Pix[i] != 0 {
			t.Fatal("zero-area placement must not draw")
		}
	}
}

func TestDrawMesh_ClipsOutOfBoundsPoints(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	mesh := &facemesh.Mesh{Points: []facemesh.Point{
		{X: 5, Y: 5},
		{X: -3, Y: 4},
		{X: 40, Y: 40},
	}}

	DrawMesh(frame, mesh) // must not panic

	if frame.RGBAAt(5, 5).G == 0 {
		t.Error("in-bounds landmark was not drawn")
	}
}

func TestEncodeWebP(t *testing.T) {
	img := solidRGBA(32, 32, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	data, err := EncodeWebP(img)
	if err != nil {
		t.Fatalf("EncodeWebP: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty webp payload")
	}
}
