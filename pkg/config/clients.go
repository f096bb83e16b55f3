package config

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"hypnosis-landing/internal/types"
)

// Live-reload WebSocket clients
var (
	wsClients      = make(map[*types.WSClient]bool)
	wsClientsMutex sync.RWMutex
	upgrader       = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true // /ws is only mounted in dev mode
		},
	}
)

// GetWSClients returns a copy of the WebSocket clients map
func GetWSClients() map[*types.WSClient]bool {
	wsClientsMutex.RLock()
	defer wsClientsMutex.RUnlock()

	clients := make(map[*types.WSClient]bool, len(wsClients))
	for k, v := range wsClients {
		clients[k] = v
	}
	return clients
}

// CountWSClients returns the number of connected clients
func CountWSClients() int {
	wsClientsMutex.RLock()
	defer wsClientsMutex.RUnlock()
	return len(wsClients)
}

// AddWSClient adds a WebSocket client to the global map (thread-safe)
func AddWSClient(client *types.WSClient) {
	wsClientsMutex.Lock()
	wsClients[client] = true
	wsClientsMutex.Unlock()
}

// RemoveWSClient removes a WebSocket client from the global map (thread-safe)
func RemoveWSClient(client *types.WSClient) {
	wsClientsMutex.Lock()
	delete(wsClients, client)
	wsClientsMutex.Unlock()
}

// GetUpgrader returns the WebSocket upgrader
func GetUpgrader() websocket.Upgrader {
	return upgrader
}
