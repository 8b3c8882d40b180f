package render

import (
	"bytes"
	"fmt"
	"image"

	"github.com/HugoSmits86/nativewebp"
)

// EncodeWebP encodes a composited frame for the dashboard's
// still-capture endpoint.
func EncodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
