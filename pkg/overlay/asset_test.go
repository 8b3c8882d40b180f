package overlay

import (
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_SplitsAtMidpoint(t *testing.T) {
	asset := testAsset(t, 101, 50)

	if asset.Left.Bounds().Dx() != 50 {
		t.Errorf("left half width: got %d, want 50", asset.Left.Bounds().Dx())
	}
	if asset.Right.Bounds().Dx() != 51 {
		t.Errorf("right half width: got %d, want 51", asset.Right.Bounds().Dx())
	}
	if asset.Left.Bounds().Dy() != 50 || asset.Right.Bounds().Dy() != 50 {
		t.Error("halves must keep the full source height")
	}
}

func TestNew_SplitCopiesPixels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 32))
	// Distinct marker pixels either side of the midline.
	src.Pix[src.PixOffset(10, 5)] = 200   // left half, red channel
	src.Pix[src.PixOffset(50, 5)+1] = 150 // right half, green channel

	asset, err := New(src, DefaultAnchors())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if asset.Left.Pix[asset.Left.PixOffset(10, 5)] != 200 {
		t.Error("left half lost its source pixels")
	}
	// x=50 in source is x=18 in the right half (midpoint 32).
	if asset.Right.Pix[asset.Right.PixOffset(18, 5)+1] != 150 {
		t.Error("right half lost its source pixels")
	}
}

func TestNew_RejectsTinyImages(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{name: "too narrow", w: MinDimension - 1, h: 100},
		{name: "too short", w: 100, h: MinDimension - 1},
		{name: "both tiny", w: 1, h: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)), DefaultAnchors())
			if !errors.Is(err, ErrImageTooSmall) {
				t.Errorf("got %v, want ErrImageTooSmall", err)
			}
		})
	}
}

func TestFetch_LoadsRemoteArtwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, Procedural(120, 60)); err != nil {
			t.Errorf("encode: %v", err)
		}
	}))
	defer srv.Close()

	asset, err := Fetch(srv.URL, DefaultAnchors())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if asset.Width != 120 || asset.Height != 60 {
		t.Errorf("got %dx%d, want 120x60", asset.Width, asset.Height)
	}
	if asset.Left.Bounds().Dx() != 60 {
		t.Errorf("left half width: got %d, want 60", asset.Left.Bounds().Dx())
	}
}

func TestFetch_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		case "/tiny":
			w.Header().Set("Content-Type", "image/png")
			png.Encode(w, image.NewRGBA(image.Rect(0, 0, 4, 4)))
		default:
			w.Write([]byte("not an image"))
		}
	}))
	defer srv.Close()

	if _, err := Fetch(srv.URL+"/missing", DefaultAnchors()); err == nil {
		t.Error("expected an error for a 404 response")
	}
	if _, err := Fetch(srv.URL+"/garbage", DefaultAnchors()); err == nil {
		t.Error("expected a decode error for a non-image body")
	}
	if _, err := Fetch(srv.URL+"/tiny", DefaultAnchors()); !errors.Is(err, ErrImageTooSmall) {
		t.Errorf("tiny remote image: got %v, want ErrImageTooSmall", err)
	}
}

func TestProcedural_MeetsMinimumSize(t *testing.T) {
	img := Procedural(240, 80)

	asset, err := New(img, DefaultAnchors())
	if err != nil {
		t.Fatalf("procedural fallback must be loadable: %v", err)
	}
	if asset.Width != 240 || asset.Height != 80 {
		t.Errorf("got %dx%d, want 240x80", asset.Width, asset.Height)
	}
}
