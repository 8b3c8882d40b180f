package camera

import (
	"context"
	"image"
	"image/color"
	"sync"
)

// Mock implements Source for testing.
type Mock struct {
	// CaptureFunc is called when Capture is invoked. When nil, a
	// synthetic gradient frame is returned.
	CaptureFunc func(ctx context.Context) (*image.RGBA, error)

	// Width and Height size the synthetic frames (defaults 640x480).
	Width  int
	Height int

	mu       sync.Mutex
	captures int
}

// NewMock creates a mock frame source.
func NewMock() *Mock {
	return &Mock{Width: 640, Height: 480}
}

// Capture implements Source.
func (m *Mock) Capture(ctx context.Context) (*image.RGBA, error) {
	m.mu.Lock()
	m.captures++
	n := m.captures
	m.mu.Unlock()

	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx)
	}

	w, h := m.Width, m.Height
	if w <= 0 || h <= 0 {
		w, h = 640, 480
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	// Shift the gradient each capture so frames are distinguishable.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x + n) % 256),
				G: uint8(y % 256),
				B: 64,
				A: 255,
			})
		}
	}
	return img, nil
}

// Close implements Source.
func (m *Mock) Close() error {
	return nil
}

// Captures returns how many frames were requested.
func (m *Mock) Captures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.captures
}
