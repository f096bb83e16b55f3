package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"hypnosis-landing/internal/lead"
	"hypnosis-landing/internal/types"
)

// APILeadHandler accepts the lead form as JSON (from lead.js) or as a
// urlencoded body and answers with the notice shown to the visitor.
func (s *Site) APILeadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req types.LeadRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			sendError(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, "Invalid form body", http.StatusBadRequest)
			return
		}
		req.Email = r.PostForm.Get("email")
		req.Phone = r.PostForm.Get("phone")
	}

	f := lead.Normalize(req.FormState())
	log := logrus.WithField("request_id", requestID(r))

	if err := lead.Validate(f); err != nil {
		var ve *lead.ValidationError
		if !errors.As(err, &ve) {
			sendError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.WithField("field", ve.Field).Info("Lead rejected")
		sendJSON(w, http.StatusUnprocessableEntity, types.Response{
			Success: false,
			Message: ve.Reason,
			Field:   ve.Field,
		})
		return
	}

	receipt, err := s.Submitter.Submit(r.Context(), f)
	if err != nil {
		log.WithError(err).Error("Lead submission failed")
		sendError(w, submitFailed, http.StatusInternalServerError)
		return
	}

	sendSuccess(w, receipt.Notice, receipt.ID)
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
