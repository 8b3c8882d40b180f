package facemesh

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/thelllmike/virtual-tryon/pkg/debug"
)

// RemoteProvider talks to a landmark sidecar over a websocket.
// The protocol is one binary JPEG frame out, one JSON mesh result back.
type RemoteProvider struct {
	addr string

	ws *websocket.Conn
	mu sync.Mutex // one request/response exchange at a time

	topology int
	closed   bool
}

// readyMessage is the sidecar's handshake after connect.
type readyMessage struct {
	Type     string `json:"type"`
	Topology int    `json:"topology"`
}

// meshResult is the per-frame detection payload from the sidecar.
type meshResult struct {
	Face     bool        `json:"face"`
	Points   [][]float64 `json:"points"`
	HasDepth bool        `json:"has_depth"`
}

// NewRemote dials the sidecar and waits for its ready handshake.
// A dial or handshake failure is the caller's "model load error":
// fatal to starting a session, retry is up to the caller.
func NewRemote(addr string) (*RemoteProvider, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	ws, _, err := dialer.Dial(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("mesh sidecar connect failed: %w", err)
	}

	var ready readyMessage
	if err := ws.ReadJSON(&ready); err != nil {
		ws.Close()
		return nil, fmt.Errorf("mesh sidecar handshake failed: %w", err)
	}
	if ready.Type != "ready" {
		ws.Close()
		return nil, fmt.Errorf("mesh sidecar handshake: unexpected message %q", ready.Type)
	}

	debug.MeshLog("mesh sidecar ready, topology=%d\n", ready.Topology)

	return &RemoteProvider{
		addr:     addr,
		ws:       ws,
		topology: ready.Topology,
	}, nil
}

// Topology returns the landmark count the sidecar reported at handshake.
func (p *RemoteProvider) Topology() int {
	return p.topology
}

// Detect sends one frame and blocks until the sidecar responds.
// There is no timeout on the exchange itself; a hung sidecar never
// completes and the session's in-flight guard stops further attempts.
func (p *RemoteProvider) Detect(ctx context.Context, jpegFrame []byte) (*Mesh, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, fmt.Errorf("mesh provider closed")
	}

	if err := p.ws.WriteMessage(websocket.BinaryMessage, jpegFrame); err != nil {
		return nil, fmt.Errorf("send frame: %w", err)
	}

	_, data, err := p.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read mesh result: %w", err)
	}

	var result meshResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode mesh result: %w", err)
	}

	if !result.Face {
		return nil, nil
	}

	mesh := &Mesh{
		Points:   make([]Point, len(result.Points)),
		HasDepth: result.HasDepth,
	}
	for i, pt := range result.Points {
		if len(pt) < 2 {
			return nil, fmt.Errorf("malformed landmark %d: %d coords", i, len(pt))
		}
		mesh.Points[i].X = pt[0]
		mesh.Points[i].Y = pt[1]
		if len(pt) >= 3 {
			mesh.Points[i].Z = pt[2]
		}
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	return mesh, nil
}

// Close shuts down the sidecar connection.
func (p *RemoteProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.ws.Close()
}
