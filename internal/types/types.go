package types

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"hypnosis-landing/internal/lead"
)

// Response represents an API response
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// ID is the receipt id of an accepted lead
	ID    string `json:"id,omitempty"`
	Field string `json:"field,omitempty"`
}

// LeadRequest is the JSON body posted by lead.js
type LeadRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// FormState converts the request into the form's value pair
func (r LeadRequest) FormState() lead.FormState {
	return lead.FormState{Email: r.Email, Phone: r.Phone}
}

// WS message types
const (
	WSConnected = "connected"
	WSReload    = "reload"
)

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// WSClient represents a WebSocket client connection
type WSClient struct {
	Conn *websocket.Conn
	Mu   sync.Mutex
}

// ServerState is the snapshot returned by /api/state
type ServerState struct {
	DefaultTheme     string    `json:"defaultTheme"`
	Themes           []string  `json:"themes"`
	ContentSource    string    `json:"contentSource"`
	ContentUpdatedAt time.Time `json:"contentUpdatedAt"`
	LiveReload       bool      `json:"liveReload"`
	Clients          int       `json:"clients"`
}
