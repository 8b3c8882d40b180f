// Package camera provides frame sources for the try-on pipeline.
package camera

import "fmt"

// Config holds webcam capture parameters.
type Config struct {
	DeviceID int `json:"device_id"` // Capture device index
	Width    int `json:"width"`     // Frame width in pixels
	Height   int `json:"height"`    // Frame height in pixels
	FPS      int `json:"fps"`       // Requested capture rate
}

// DefaultConfig returns the recommended webcam configuration.
func DefaultConfig() Config {
	return Config{
		DeviceID: 0,
		Width:    1280,
		Height:   720,
		FPS:      30,
	}
}

// Preset names for common configurations
const (
	PresetDefault = "default"
	PresetLow     = "low"
	Preset1080p   = "1080p"
)

// Presets returns all available preset configurations.
func Presets() map[string]Config {
	return map[string]Config{
		PresetDefault: DefaultConfig(),
		PresetLow:     LowConfig(),
		Preset1080p:   HD1080Config(),
	}
}

// GetPreset returns a preset config by name, or nil if not found.
func GetPreset(name string) *Config {
	presets := Presets()
	if cfg, ok := presets[name]; ok {
		return &cfg
	}
	return nil
}

// LowConfig returns a reduced-resolution configuration for slow machines.
func LowConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 640
	cfg.Height = 480
	return cfg
}

// HD1080Config returns full HD capture.
func HD1080Config() Config {
	cfg := DefaultConfig()
	cfg.Width = 1920
	cfg.Height = 1080
	return cfg
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", c.FPS)
	}
	return nil
}
