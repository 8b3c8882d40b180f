package hub

import (
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/thelllmike/virtual-tryon/internal/log"
)

const (
	// writeWait bounds a single frame write; a viewer that cannot take
	// a frame in this long is effectively gone.
	writeWait = 10 * time.Second

	// pongWait is how long a silent viewer stays registered. pingPeriod
	// must be shorter so a ping is always in flight before the deadline.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// inboundLimit caps what a viewer may send. Dashboard connections
	// are one-way: anything beyond control frames is a misbehaving
	// client and gets disconnected by the limit.
	inboundLimit = 512
)

// Client is one dashboard viewer attached to a hub. It only ever
// receives: composited frames or status updates, depending on which hub
// it registered with.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Message
}

// NewClient registers a new viewer connection with the hub.
// The send buffer absorbs short stalls; the hub drops the client once
// the buffer fills.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	client := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan Message, 256),
	}
	hub.register <- client
	return client
}

// Run services the connection until it closes. Call it from the
// websocket handler; it blocks for the connection's lifetime.
func (c *Client) Run() {
	go c.writeLoop()
	c.readLoop()
}

// readLoop exists to notice disconnects and answer pings. Viewers have
// nothing to say; any inbound payload is discarded.
func (c *Client) readLoop() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(inboundLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("viewer connection lost", "hub", c.hub.name, "error", err)
			}
			return
		}
	}
}

// writeLoop is the only writer on the connection. It drains the send
// buffer and keeps the connection alive with pings.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub dropped or unregistered us.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(wireType(msg.Type), msg.Data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// wireType maps a hub message kind to its websocket frame type: status
// updates go as text, composited frames as binary.
func wireType(t MessageType) int {
	if t == BinaryMessage {
		return websocket.BinaryMessage
	}
	return websocket.TextMessage
}
