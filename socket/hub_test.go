package socket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"casedesk/internal/workspace/model"
	"casedesk/internal/workspace/store"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to read messages from a WebSocket connection with a timeout.
func readMessage(t *testing.T, conn *websocket.Conn) WSMessage {
	var msg WSMessage
	conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	_, p, err := conn.ReadMessage()
	require.NoError(t, err, "Failed to read message from WebSocket")
	err = json.Unmarshal(p, &msg)
	require.NoError(t, err, "Failed to unmarshal WSMessage JSON")
	return msg
}

func TestHubIntegration(t *testing.T) {
	st := store.New(model.Workspace{ID: 1, Name: "Johnson & Partners Merger", CreatedAt: "May 3, 2024"})
	hub := NewHub(st.List)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r, r.URL.Query().Get("identity"))
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	conn1, _, err := websocket.DefaultDialer.Dial(wsURL+"/ws?identity=amy", nil)
	require.NoError(t, err, "Client 1 failed to connect")
	defer conn1.Close()

	// New clients start from the current list.
	snap := readMessage(t, conn1)
	assert.Equal(t, SnapshotType, snap.Type)
	var list []model.Workspace
	require.NoError(t, json.Unmarshal(snap.Payload, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Johnson & Partners Merger", list[0].Name)

	conn2, _, err := websocket.DefaultDialer.Dial(wsURL+"/ws?identity=tom", nil)
	require.NoError(t, err, "Client 2 failed to connect")
	defer conn2.Close()
	_ = readMessage(t, conn2)

	created := model.Workspace{ID: 2, Name: "Acme Patent Dispute", Status: model.StatusCompleted, CreatedAt: "June 1, 2024"}
	st.Append(created)
	hub.WorkspaceCreated(created)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readMessage(t, conn)
		assert.Equal(t, WorkspaceCreatedType, msg.Type)
		var got model.Workspace
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, created, got)
	}
}

func TestWorkspaceCreatedAfterShutdownDoesNotBlock(t *testing.T) {
	hub := NewHub(func() []model.Workspace { return nil })
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	cancel()
	<-hub.Done()

	finished := make(chan struct{})
	go func() {
		for i := 0; i < cap(hub.Broadcast)+1; i++ {
			hub.WorkspaceCreated(model.Workspace{ID: int64(i)})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("WorkspaceCreated blocked after hub shutdown")
	}
}
