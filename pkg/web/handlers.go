package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/thelllmike/virtual-tryon/pkg/hub"
	"github.com/thelllmike/virtual-tryon/pkg/session"
)

// handleStatus returns the session's pose, state, and counters.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.session.Status())
}

// handleGetTuning returns the current tuning parameters.
func (s *Server) handleGetTuning(c *fiber.Ctx) error {
	return c.JSON(s.session.GetTuningParams())
}

// handleSetTuning applies tuning parameters from the request body.
// Zero-valued fields are left unchanged.
func (s *Server) handleSetTuning(c *fiber.Ctx) error {
	var params session.TuningParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid tuning payload: " + err.Error(),
		})
	}

	s.session.SetTuningParams(params)
	return c.JSON(s.session.GetTuningParams())
}

// handleSnapshot returns the last composited frame as WebP.
func (s *Server) handleSnapshot(c *fiber.Ctx) error {
	data, err := s.session.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	return c.Send(data)
}

// handleRestart resets tracking: smoothing state clears and in-flight
// detection results from before the restart are discarded.
func (s *Server) handleRestart(c *fiber.Ctx) error {
	s.session.Restart()
	return c.JSON(fiber.Map{"ok": true, "state": s.session.State()})
}

// handleFramesWS streams composited JPEG frames.
func (s *Server) handleFramesWS(c *websocket.Conn) {
	client := hub.NewClient(s.frameHub, c)
	client.Run()
}

// handleStatusWS streams status updates.
func (s *Server) handleStatusWS(c *websocket.Conn) {
	client := hub.NewClient(s.statusHub, c)
	client.Run()
}
