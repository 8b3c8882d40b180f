package hub

import (
	"testing"
	"time"

	"github.com/gofiber/websocket/v2"
)

// testClient builds a bare client with a send buffer; the websocket
// connection is only touched by the pumps, which these tests never run.
func testClient(h *Hub, buffer int) *Client {
	return &Client{hub: h, send: make(chan Message, buffer)}
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("client count: got %d, want %d", h.ClientCount(), want)
}

func TestHub_BroadcastFanOut(t *testing.T) {
	h := New("frames")
	go h.Run()

	a := testClient(h, 4)
	b := testClient(h, 4)
	h.register <- a
	h.register <- b
	waitForClients(t, h, 2)

	h.Broadcast(NewBinaryMessage([]byte{0x01, 0x02}))

	for name, c := range map[string]*Client{"a": a, "b": b} {
		select {
		case msg := <-c.send:
			if msg.Type != BinaryMessage || len(msg.Data) != 2 {
				t.Errorf("client %s: got %+v", name, msg)
			}
		case <-time.After(time.Second):
			t.Errorf("client %s never received the broadcast", name)
		}
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	h := New("frames")
	go h.Run()

	slow := testClient(h, 1)
	h.register <- slow
	waitForClients(t, h, 1)

	// First fills the buffer, second forces the drop.
	h.Broadcast(NewJSONMessage([]byte(`{}`)))
	h.Broadcast(NewJSONMessage([]byte(`{}`)))
	waitForClients(t, h, 0)

	// The hub closes the channel on drop so the write pump exits.
	<-slow.send
	if _, ok := <-slow.send; ok {
		t.Error("dropped client's send channel should be closed")
	}
}

func TestHub_Unregister(t *testing.T) {
	h := New("status")
	go h.Run()

	c := testClient(h, 1)
	h.register <- c
	waitForClients(t, h, 1)

	h.unregister <- c
	waitForClients(t, h, 0)

	if _, ok := <-c.send; ok {
		t.Error("unregistered client's send channel should be closed")
	}
}

func TestWireType(t *testing.T) {
	if got := wireType(JSONMessage); got != websocket.TextMessage {
		t.Errorf("status messages must go as text frames, got %d", got)
	}
	if got := wireType(BinaryMessage); got != websocket.BinaryMessage {
		t.Errorf("frame messages must go as binary frames, got %d", got)
	}
}

func TestHub_BroadcastNeverBlocks(t *testing.T) {
	h := New("frames") // Run never started, the hub queue will fill

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			h.Broadcast(NewBinaryMessage(nil))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked on a backlogged hub")
	}
}
