package handlers

import (
	"net/http"

	"hypnosis-landing/internal/state"
	"hypnosis-landing/internal/theme"
	"hypnosis-landing/internal/types"
	"hypnosis-landing/pkg/config"
)

// StateHandler returns what the server is currently serving
func (s *Site) StateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	source, updatedAt := state.GetContentInfo()
	sendJSON(w, http.StatusOK, types.ServerState{
		DefaultTheme:     s.DefaultTheme,
		Themes:           theme.Names(),
		ContentSource:    source,
		ContentUpdatedAt: updatedAt,
		LiveReload:       s.LiveReload,
		Clients:          config.CountWSClients(),
	})
}
