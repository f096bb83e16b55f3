package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"hypnosis-landing/internal/schema"
	"hypnosis-landing/internal/state"
	"hypnosis-landing/internal/types"
	"hypnosis-landing/web"
)

// maxBodyBytes caps lead submissions; two short inputs never come close
const maxBodyBytes = 16 << 10

// sendError sends an error response
func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, types.Response{
		Success: false,
		Message: message,
	})
}

// sendSuccess sends a success response
func sendSuccess(w http.ResponseWriter, message string, id string) {
	sendJSON(w, http.StatusOK, types.Response{
		Success: true,
		Message: message,
		ID:      id,
	})
}

func sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

// HealthHandler reports that the process is serving
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// SchemaHandler serves the LocalBusiness record embedded in every page
func SchemaHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rec, err := schema.LocalBusiness(state.GetCatalog().Business)
	if err != nil {
		logrus.WithError(err).Error("Failed to build structured data")
		sendError(w, "Structured data unavailable", http.StatusInternalServerError)
		return
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logrus.WithError(err).Error("Failed to encode structured data")
		sendError(w, "Structured data unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/ld+json")
	w.Write(data)
}

// StaticHandler serves the embedded stylesheet and scripts under /static/
func StaticHandler() http.Handler {
	fs := http.FileServer(http.FS(web.Static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fs.ServeHTTP(w, r)
	})
}
