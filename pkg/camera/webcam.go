package camera

import (
	"context"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// Webcam captures frames from a local video device through OpenCV.
type Webcam struct {
	cfg Config

	cap *gocv.VideoCapture
	mat gocv.Mat
	mu  sync.Mutex // Protects cap and mat

	closed bool
}

// OpenWebcam opens the configured capture device.
func OpenWebcam(cfg Config) (*Webcam, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("camera config: %w", err)
	}

	cap, err := gocv.OpenVideoCapture(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", cfg.DeviceID, err)
	}

	cap.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	cap.Set(gocv.VideoCaptureFPS, float64(cfg.FPS))

	return &Webcam{
		cfg: cfg,
		cap: cap,
		mat: gocv.NewMat(),
	}, nil
}

// Config returns the capture configuration in use.
func (w *Webcam) Config() Config {
	return w.cfg
}

// Capture grabs the next frame from the device.
func (w *Webcam) Capture(ctx context.Context) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, fmt.Errorf("camera closed")
	}

	if ok := w.cap.Read(&w.mat); !ok || w.mat.Empty() {
		return nil, fmt.Errorf("camera %d: no frame", w.cfg.DeviceID)
	}

	img, err := w.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}

	return toRGBA(img), nil
}

// Close releases the capture device.
func (w *Webcam) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	w.mat.Close()
	return w.cap.Close()
}
