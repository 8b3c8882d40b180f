package facemesh

import (
	"context"
	"sync"
)

// Mock implements Provider for testing.
type Mock struct {
	// DetectFunc is called when Detect is invoked. When nil, Detect
	// returns (nil, nil) — the no-face outcome.
	DetectFunc func(ctx context.Context, jpegFrame []byte) (*Mesh, error)

	// CloseFunc is called when Close is invoked.
	CloseFunc func() error

	mu      sync.Mutex
	detects int
}

// NewMock creates a mock provider that reports no face until a
// DetectFunc is supplied.
func NewMock() *Mock {
	return &Mock{}
}

// Detect implements Provider.
func (m *Mock) Detect(ctx context.Context, jpegFrame []byte) (*Mesh, error) {
	m.mu.Lock()
	m.detects++
	m.mu.Unlock()

	if m.DetectFunc != nil {
		return m.DetectFunc(ctx, jpegFrame)
	}
	return nil, nil
}

// Close implements Provider.
func (m *Mock) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// DetectCalls returns how many times Detect was invoked.
func (m *Mock) DetectCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.detects
}

// SyntheticMesh builds a mesh with all landmarks at the given default
// point, then applies the role overrides. Tests use this to exercise
// the extraction geometry without a real detector.
func SyntheticMesh(size int, def Point, overrides map[int]Point) *Mesh {
	points := make([]Point, size)
	for i := range points {
		points[i] = def
	}
	for idx, pt := range overrides {
		points[idx] = pt
	}
	return &Mesh{Points: points}
}
