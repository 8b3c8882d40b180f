// Virtual try-on - live webcam glasses overlay with face tracking
//
// Captures webcam frames, tracks the face through a landmark sidecar,
// and composites pre-split glasses artwork with a pseudo-3D head-turn
// effect. Serves a dashboard with frame and status streams.
package main

import (
	"bytes"
	"context"
	"flag"
	"image"
	"image/jpeg"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/thelllmike/virtual-tryon/internal/config"
	"github.com/thelllmike/virtual-tryon/internal/log"
	"github.com/thelllmike/virtual-tryon/pkg/camera"
	"github.com/thelllmike/virtual-tryon/pkg/debug"
	"github.com/thelllmike/virtual-tryon/pkg/facemesh"
	"github.com/thelllmike/virtual-tryon/pkg/overlay"
	"github.com/thelllmike/virtual-tryon/pkg/pose"
	"github.com/thelllmike/virtual-tryon/pkg/session"
	"github.com/thelllmike/virtual-tryon/pkg/web"
)

func main() {
	var (
		meshAddr    = flag.String("mesh-addr", config.MeshAddr(), "Landmark sidecar websocket address")
		overlayPath = flag.String("overlay", config.OverlayPath(), "Glasses artwork (PNG/JPEG)")
		cameraID    = flag.Int("camera", config.CameraID(), "Capture device index")
		port        = flag.String("port", config.WebPort(), "Dashboard port")
		preset      = flag.String("camera-preset", camera.PresetDefault, "Camera preset: default, low, 1080p")
		logLevel    = flag.String("log-level", "info", "Log level: debug, info, warn, error")
		debugFlag   = flag.Bool("debug", false, "Enable verbose debug logging")
		debugMesh   = flag.Bool("debug-mesh", false, "Draw landmarks and log per-detection poses")
	)
	flag.Parse()

	log.Init(*logLevel)
	debug.Enabled = *debugFlag
	debug.Mesh = *debugMesh

	// Camera
	camCfg := camera.DefaultConfig()
	if p := camera.GetPreset(*preset); p != nil {
		camCfg = *p
	}
	camCfg.DeviceID = *cameraID

	source, err := camera.OpenWebcam(camCfg)
	if err != nil {
		log.Error("camera open failed", "error", err)
		os.Exit(1)
	}
	defer source.Close()

	// Detector handle. A failure here is fatal to starting the
	// session; there is no built-in retry.
	provider, err := facemesh.NewRemote(*meshAddr)
	if err != nil {
		log.Error("landmark sidecar unavailable", "addr", *meshAddr, "error", err)
		os.Exit(1)
	}
	defer provider.Close()

	// Overlay artwork, with a procedural fallback when the source is
	// missing or below the minimum size.
	asset, err := loadOverlay(*overlayPath)
	if err != nil {
		log.Warn("overlay unavailable, using procedural fallback",
			"source", *overlayPath, "error", err)
		asset, err = overlay.New(overlay.Procedural(240, 80), overlay.DefaultAnchors())
		if err != nil {
			log.Error("fallback overlay failed", "error", err)
			os.Exit(1)
		}
	}

	sess := session.New(session.DefaultConfig(), provider, source, asset)
	server := web.NewServer(*port, sess)

	// Stream every composited frame to dashboard viewers.
	sess.OnFrame = func(frame *image.RGBA, _ pose.Pose, _ bool) {
		data, err := encodeJPEG(frame)
		if err != nil {
			return
		}
		server.PublishFrame(data)
		server.PublishStatus()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := server.Start(); err != nil {
			log.Error("dashboard server failed", "error", err)
			cancel()
		}
	}()

	sess.Run(ctx)

	if err := server.Shutdown(); err != nil {
		log.Warn("dashboard shutdown", "error", err)
	}
}

// loadOverlay resolves the -overlay value: URLs are fetched, anything
// else is read from disk.
func loadOverlay(source string) (*overlay.Asset, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return overlay.Fetch(source, overlay.DefaultAnchors())
	}
	return overlay.Load(source, overlay.DefaultAnchors())
}

func encodeJPEG(frame *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: 75}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
