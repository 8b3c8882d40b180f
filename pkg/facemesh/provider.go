package facemesh

import "context"

// Provider is the interface for landmark detection backends.
//
// Detect returns (nil, nil) when no face was found this frame; the
// caller cannot distinguish no-face from duplicate-frame or not-ready,
// only diagnostic counters do. A non-nil error indicates the backend
// itself failed, not that the frame was faceless.
type Provider interface {
	// Detect runs landmark detection on a JPEG-encoded frame.
	Detect(ctx context.Context, jpegFrame []byte) (*Mesh, error)

	// Close releases backend resources.
	Close() error
}
