// Package web provides a real-time dashboard for the try-on pipeline:
// a status API, runtime tuning, and websocket streams of composited
// frames.
package web

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/thelllmike/virtual-tryon/internal/log"
	"github.com/thelllmike/virtual-tryon/pkg/hub"
	"github.com/thelllmike/virtual-tryon/pkg/session"
)

// Server is the web dashboard server
type Server struct {
	app  *fiber.App
	port string

	session *session.Session

	// Hubs for websocket broadcast
	frameHub  *hub.Hub
	statusHub *hub.Hub
}

// NewServer creates a new dashboard server bound to one session.
func NewServer(port string, sess *session.Session) *Server {
	s := &Server{
		port:      port,
		session:   sess,
		frameHub:  hub.New("frames"),
		statusHub: hub.New("status"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Try-On Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// Static files
	app.Static("/", "./web")

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/tuning", s.handleGetTuning)
	api.Post("/tuning", s.handleSetTuning)
	api.Get("/snapshot", s.handleSnapshot)
	api.Post("/restart", s.handleRestart)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/frames", websocket.New(s.handleFramesWS))
	app.Get("/ws/status", websocket.New(s.handleStatusWS))

	s.app = app
	return s
}

// Start starts the web server
func (s *Server) Start() error {
	log.Info("dashboard listening", "addr", "http://localhost:"+s.port)

	go s.frameHub.Run()
	go s.statusHub.Run()

	return s.app.Listen(":" + s.port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// PublishFrame broadcasts one composited JPEG frame to viewers.
func (s *Server) PublishFrame(jpegFrame []byte) {
	s.frameHub.Broadcast(hub.NewBinaryMessage(jpegFrame))
}

// PublishStatus broadcasts the current session status as JSON.
func (s *Server) PublishStatus() {
	data, err := json.Marshal(s.session.Status())
	if err != nil {
		return
	}
	s.statusHub.Broadcast(hub.NewJSONMessage(data))
}
