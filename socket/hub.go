package socket

import (
	"context"
	"encoding/json"

	"casedesk/internal/workspace/model"
	"casedesk/pkg/logger"
)

const (
	SnapshotType         = "SNAPSHOT"          // Full workspace list sent on connect
	WorkspaceCreatedType = "WORKSPACE_CREATED" // A workspace was appended to the store
)

type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans workspace events out to every connected dashboard.
// A client that joins while a workspace is being created may see it in both
// its snapshot and the following event; dashboards key rows by id.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan WSMessage
	Register   chan *Client
	Unregister chan *Client

	snapshot func() []model.Workspace
	done     chan struct{}
}

// NewHub takes the function used to build the snapshot for new clients.
func NewHub(snapshot func() []model.Workspace) *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan WSMessage, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		snapshot:   snapshot,
		done:       make(chan struct{}),
	}
}

// Run owns Clients; nothing else may touch the map. It returns when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		// 8. On shutdown every client is dropped so its pumps can exit.
		case <-ctx.Done():
			for client := range h.Clients {
				h.drop(client)
			}
			return

		// 3. A new dashboard is added to the set, then sent the current list
		// so it can render without a separate REST call.
		case client := <-h.Register:
			h.Clients[client] = true
			logger.Sugar.Infof("Dashboard connected: %s (%d open)", client.Identity, len(h.Clients))

			payload, err := json.Marshal(h.snapshot())
			if err != nil {
				logger.Sugar.Errorf("Error marshalling snapshot: %v", err)
				continue
			}
			msg, _ := json.Marshal(WSMessage{Type: SnapshotType, Payload: payload})
			// Send is freshly made and buffered, so this first write cannot block Run.
			client.Send <- msg

		// 7. The read pump noticed the connection closing. The client may
		// already be gone if a broadcast dropped it first.
		case client := <-h.Unregister:
			if h.Clients[client] {
				h.drop(client)
				logger.Sugar.Infof("Dashboard disconnected: %s (%d open)", client.Identity, len(h.Clients))
			}

		// 5. A workspace was created; every open dashboard gets the event.
		case msg := <-h.Broadcast:
			payload, err := json.Marshal(msg)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling broadcast message: %v", err)
				continue
			}
			for client := range h.Clients {
				select {
				case client.Send <- payload:
				default:
					// A full buffer means the client stopped reading.
					logger.Sugar.Warnf("Client %s's send buffer is full. Dropping.", client.Identity)
					h.drop(client)
				}
			}
		}
	}
}

// WorkspaceCreated queues a WORKSPACE_CREATED event for all clients.
// 4. It is the store's notifier. Once Run has returned nobody drains
// Broadcast, so the send gives up when done is closed.
func (h *Hub) WorkspaceCreated(w model.Workspace) {
	payload, err := json.Marshal(w)
	if err != nil {
		logger.Sugar.Errorf("Error marshalling workspace %d: %v", w.ID, err)
		return
	}
	select {
	case h.Broadcast <- WSMessage{Type: WorkspaceCreatedType, Payload: payload}:
	case <-h.done:
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// drop forgets the client and closes its Send channel. The write pump sees
// the closed channel, sends a close frame and shuts the connection, which in
// turn ends the read pump. Only Run calls it, so Send is closed exactly once.
func (h *Hub) drop(client *Client) {
	delete(h.Clients, client)
	close(client.Send)
}
