package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"hypnosis-landing/internal/types"
	"hypnosis-landing/pkg/config"
)

// writeWait bounds a single write so a stalled client cannot hold up a broadcast
var writeWait = 5 * time.Second

// WSHandler handles live-reload WebSocket connections. Clients only listen;
// anything they send is read and dropped so close frames are processed.
func WSHandler(w http.ResponseWriter, r *http.Request) {
	upgrader := config.GetUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	client := &types.WSClient{
		Conn: conn,
		Mu:   sync.Mutex{},
	}

	config.AddWSClient(client)
	defer config.RemoveWSClient(client)

	logrus.WithField("remote", r.RemoteAddr).Info("New WebSocket client connected")

	client.Mu.Lock()
	err = client.Conn.WriteJSON(types.WSMessage{Type: types.WSConnected})
	client.Mu.Unlock()
	if err != nil {
		logrus.WithError(err).Warn("Failed to greet WebSocket client")
		return
	}

	for {
		if _, _, err := conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				logrus.WithError(err).Error("WebSocket error")
			}
			break
		}
	}

	logrus.Info("WebSocket client disconnected")
}

// BroadcastToAll sends a message to all WebSocket clients
func BroadcastToAll(msg types.WSMessage) {
	clients := config.GetWSClients()

	logrus.WithFields(logrus.Fields{
		"message_type": msg.Type,
		"client_count": len(clients),
	}).Info("Broadcasting message to WebSocket clients")

	if len(clients) == 0 {
		logrus.Debug("No WebSocket clients connected to receive message")
		return
	}

	var wg sync.WaitGroup
	for client := range clients {
		wg.Add(1)
		go func(c *types.WSClient) {
			defer wg.Done()
			c.Mu.Lock()
			defer c.Mu.Unlock()
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).Error("Failed to send WebSocket message to client")
			}
		}(client)
	}
	wg.Wait()
}

// BroadcastReload tells every open page to reload itself
func BroadcastReload() {
	BroadcastToAll(types.WSMessage{Type: types.WSReload})
}
