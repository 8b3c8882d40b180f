package session

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thelllmike/virtual-tryon/internal/log"
	"github.com/thelllmike/virtual-tryon/pkg/camera"
	"github.com/thelllmike/virtual-tryon/pkg/debug"
	"github.com/thelllmike/virtual-tryon/pkg/facemesh"
	"github.com/thelllmike/virtual-tryon/pkg/overlay"
	"github.com/thelllmike/virtual-tryon/pkg/pose"
	"github.com/thelllmike/virtual-tryon/pkg/render"
)

// State is the render session's face-visibility state, recomputed from
// the last-pose timestamp on every query. It is never stored, so it
// cannot drift from the timing condition that defines it.
type State string

const (
	// StateTracking means the most recent detection succeeded within
	// the last throttling window.
	StateTracking State = "tracking"

	// StateGrace means detection has gone quiet but the frozen last
	// pose is still being shown.
	StateGrace State = "grace"

	// StateHidden means the grace period expired; no overlay is drawn.
	StateHidden State = "hidden"
)

// detectionResult is what an asynchronous detection delivers back into
// the render loop.
type detectionResult struct {
	mesh       *facemesh.Mesh
	err        error
	generation uint64
}

// Session owns one try-on pipeline: detector handle, smoothing state,
// render-session state, and the render loop driving them. Sessions are
// explicitly constructed; there is no process-wide tracking state, so
// multiple independent sessions can coexist and tear down cleanly.
type Session struct {
	// ID uniquely identifies this session in logs and the status API.
	ID string

	provider   facemesh.Provider
	source     camera.Source
	smoother   *pose.Smoother
	compositor *overlay.Compositor
	diag       *Diagnostics

	// now is replaceable for deterministic timing tests.
	now func() time.Time

	results chan detectionResult

	// OnFrame, when set before Run, receives every composited frame.
	// visible is false when the overlay was not drawn.
	OnFrame func(frame *image.RGBA, p pose.Pose, visible bool)

	mu         sync.RWMutex
	cfg        Config
	lastPose   pose.Pose
	hasPose    bool
	lastPoseAt time.Time
	generation uint64
	lastFrame  *image.RGBA
}

// New creates a session from its collaborators. The provider is the
// already-initialized detector handle; a failed provider constructor is
// the "model load error" and means no session is started.
func New(cfg Config, provider facemesh.Provider, source camera.Source, asset *overlay.Asset) *Session {
	comp := overlay.NewCompositor(asset)
	comp.ScaleMultiplier = cfg.ScaleMultiplier

	return &Session{
		ID:         uuid.New().String(),
		provider:   provider,
		source:     source,
		smoother:   pose.NewSmoother(cfg.SmoothingAlpha),
		compositor: comp,
		diag:       &Diagnostics{},
		now:        time.Now,
		results:    make(chan detectionResult, 1),
		cfg:        cfg,
	}
}

// Diagnostics returns the session's advisory counters.
func (s *Session) Diagnostics() *Diagnostics {
	return s.diag
}

// Run drives the render loop until ctx is cancelled.
//
// Every tick draws a frame with whatever pose is currently valid; every
// Nth tick launches a detection in the background. Detection results
// are merged back on this loop via the results channel, so smoothing
// and session state are only ever mutated from interleaved
// continuations of one logical thread. The loop never waits on the
// detector and never returns an error once started: degraded
// conditions log and degrade to "no overlay shown".
func (s *Session) Run(ctx context.Context) {
	s.mu.RLock()
	interval := s.cfg.TickInterval
	s.mu.RUnlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("try-on session started",
		"id", s.ID,
		"tick", interval,
		"detect_every", s.detectCadence(),
	)

	tick := 0
	inFlight := false

	for {
		select {
		case <-ctx.Done():
			log.Info("try-on session stopped", "id", s.ID)
			return

		case res := <-s.results:
			inFlight = false
			s.applyDetection(res)

		case <-ticker.C:
			tick++

			frame, err := s.source.Capture(ctx)
			if err != nil {
				if ctx.Err() != nil {
					log.Info("try-on session stopped", "id", s.ID)
					return
				}
				debug.Log("capture failed: %v\n", err)
				continue
			}

			if tick%s.detectCadence() == 0 {
				if inFlight {
					// At most one outstanding detection: the new
					// request is dropped, not queued.
					s.diag.skip()
				} else if jpegFrame, err := encodeJPEG(frame); err == nil {
					inFlight = true
					s.diag.attempt()
					go s.detect(ctx, jpegFrame, s.currentGeneration())
				}
			}

			s.renderFrame(frame)
		}
	}
}

// detect runs one provider call off the render loop and posts the
// result back. The result is delivered even if several frames have
// passed; applyDetection decides whether it is still welcome.
func (s *Session) detect(ctx context.Context, jpegFrame []byte, gen uint64) {
	mesh, err := s.provider.Detect(ctx, jpegFrame)
	select {
	case s.results <- detectionResult{mesh: mesh, err: err, generation: gen}:
	case <-ctx.Done():
	}
}

// applyDetection merges a completed detection into session state.
func (s *Session) applyDetection(res detectionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res.generation != s.generation {
		// Launched before a restart; its smoothing state is gone.
		s.diag.staleDrop()
		return
	}

	if res.err != nil {
		s.diag.error(res.err)
		return
	}

	if res.mesh == nil {
		// No face this frame: expected and frequent. The timestamp
		// stays untouched and elapsed time walks the state toward
		// hidden.
		s.diag.miss()
		return
	}

	s.diag.success()

	raw := pose.Extract(res.mesh)
	smoothed := s.smoother.Smooth(raw)

	s.lastPose = smoothed
	s.hasPose = true
	s.lastPoseAt = s.now()

	debug.MeshLog("pose center=(%.0f,%.0f) eyes=%.1f roll=%.2f yaw=%.2f\n",
		smoothed.Center.X, smoothed.Center.Y, smoothed.EyeDistance, smoothed.Roll, smoothed.Yaw)
}

// renderFrame composites the overlay (when a valid pose exists) and
// publishes the frame.
func (s *Session) renderFrame(frame *image.RGBA) {
	p, visible := s.Pose()

	if visible {
		s.mu.RLock()
		placement := s.compositor.Place(p)
		s.mu.RUnlock()

		render.Composite(frame, placement)
		if debug.Mesh {
			render.DrawMesh(frame, p.Mesh)
		}
	}

	s.mu.Lock()
	s.lastFrame = frame
	cb := s.OnFrame
	s.mu.Unlock()

	if cb != nil {
		cb(frame, p, visible)
	}
}

// Pose returns the pose the overlay is currently drawn with. ok is
// false once the grace period has expired or nothing was ever detected.
func (s *Session) Pose() (pose.Pose, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasPose {
		return pose.Pose{}, false
	}
	if s.now().Sub(s.lastPoseAt) >= s.cfg.GracePeriod {
		return pose.Pose{}, false
	}
	return s.lastPose, true
}

// State reports the current visibility state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasPose {
		return StateHidden
	}

	age := s.now().Sub(s.lastPoseAt)
	switch {
	case age < s.cfg.cadenceWindow():
		return StateTracking
	case age < s.cfg.GracePeriod:
		return StateGrace
	default:
		return StateHidden
	}
}

// Restart clears all tracking state: the smoother reseeds on the next
// successful detection, and any detection launched before the restart
// is discarded by the generation check instead of leaking into the
// fresh smoothing state.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.hasPose = false
	s.lastPoseAt = time.Time{}
	s.smoother.Reset()

	log.Info("try-on session restarted", "id", s.ID, "generation", s.generation)
}

// Snapshot returns the last composited frame encoded as WebP.
func (s *Session) Snapshot() ([]byte, error) {
	s.mu.RLock()
	frame := s.lastFrame
	s.mu.RUnlock()

	if frame == nil {
		return nil, fmt.Errorf("no frame composited yet")
	}
	return render.EncodeWebP(frame)
}

// Status is the session state exposed to the dashboard.
type Status struct {
	ID       string              `json:"id"`
	State    State               `json:"state"`
	Visible  bool                `json:"visible"`
	Pose     *pose.Pose          `json:"pose,omitempty"`
	Counters DiagnosticsSnapshot `json:"counters"`
}

// Status returns a point-in-time view for the status API.
func (s *Session) Status() Status {
	p, visible := s.Pose()

	st := Status{
		ID:       s.ID,
		State:    s.State(),
		Visible:  visible,
		Counters: s.diag.Snapshot(),
	}
	if visible {
		st.Pose = &p
	}
	return st
}

func (s *Session) currentGeneration() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *Session) detectCadence() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg.DetectEveryNTicks < 1 {
		return 1
	}
	return s.cfg.DetectEveryNTicks
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return buf.Bytes(), nil
}
