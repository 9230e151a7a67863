package socket

import (
	"net/http"
	"time"

	"casedesk/pkg/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	pongWait   = pingPeriod + 10*time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS configuration in front of the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Identity string
	Send     chan []byte
}

// ServeWs upgrades the request and registers a dashboard connection.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request, identity string) {
	// 1. The HTTP connection is upgraded to a persistent WebSocket connection.
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Sugar.Error(err)
		return
	}

	// 2. The client carries the identity resolved by the auth middleware so
	// hub logs name the user behind each dashboard.
	client := &Client{
		Hub:      hub,
		Conn:     conn,
		Identity: identity,
		Send:     make(chan []byte, 256),
	}
	// If the hub has already stopped, nobody will read Register.
	select {
	case client.Hub.Register <- client:
	case <-hub.Done():
		conn.Close()
		return
	}

	// One goroutine per direction; only writePump writes to the connection.
	go client.writePump()
	go client.readPump()
}

// readPump only exists to notice the connection closing; dashboards do not
// send anything meaningful.
func (c *Client) readPump() {
	defer func() {
		// 6. Hand the client back to the hub, unless the hub is gone.
		select {
		case c.Hub.Unregister <- c:
		case <-c.Hub.Done():
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Sugar.Errorf("error: %v", err)
			}
			return
		}
	}
}

// writePump drains Send onto the connection. Its pings draw the pongs that
// keep readPump's deadline moving.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
