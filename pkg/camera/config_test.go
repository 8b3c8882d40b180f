package camera

import (
	"context"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"low", LowConfig(), false},
		{"1080p", HD1080Config(), false},
		{"zero width", Config{Width: 0, Height: 720, FPS: 30}, true},
		{"negative height", Config{Width: 1280, Height: -1, FPS: 30}, true},
		{"zero fps", Config{Width: 1280, Height: 720, FPS: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	if cfg := GetPreset(PresetLow); cfg == nil || cfg.Width != 640 {
		t.Errorf("low preset: got %+v", cfg)
	}
	if cfg := GetPreset("4k"); cfg != nil {
		t.Errorf("unknown preset should be nil, got %+v", cfg)
	}
}

func TestMockCapture(t *testing.T) {
	m := NewMock()
	m.Width, m.Height = 320, 240

	frame, err := m.Capture(context.Background())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if b := frame.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("frame bounds: got %v", b)
	}
	if m.Captures() != 1 {
		t.Errorf("capture count: got %d, want 1", m.Captures())
	}

	// Frames shift over time so streamed output visibly changes.
	second, err := m.Capture(context.Background())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	same := true
	for i := range frame.Pix {
		if frame.Pix[i] != second.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("consecutive mock frames should differ")
	}
}
