package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"hypnosis-landing/internal/lead"
	"hypnosis-landing/internal/page"
	"hypnosis-landing/internal/state"
	"hypnosis-landing/internal/theme"
)

// LeadEndpoint is the JSON route lead.js posts to
const LeadEndpoint = "/api/lead"

const submitFailed = "We could not send that right now. Please try again or call us."

// Site serves the landing page and its lead form
type Site struct {
	DefaultTheme string
	Submitter    lead.Submitter
	LiveReload   bool
}

// theme resolves the {theme} route parameter, falling back to the default
func (s *Site) theme(r *http.Request) (theme.Theme, error) {
	name := chi.URLParam(r, "theme")
	if name == "" {
		name = s.DefaultTheme
	}
	return theme.Lookup(name)
}

func (s *Site) options(th theme.Theme) page.Options {
	return page.Options{
		Theme:        th,
		Catalog:      state.GetCatalog(),
		FormAction:   leadPath(th) + "#" + string(theme.Guide),
		LeadEndpoint: LeadEndpoint,
		LiveReload:   s.LiveReload,
	}
}

func (s *Site) render(w http.ResponseWriter, opts page.Options, status int) {
	var buf bytes.Buffer
	if err := page.Render(opts).Render(&buf); err != nil {
		logrus.WithError(err).WithField("theme", opts.Theme.Name).Error("Failed to render page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// PageHandler renders the page in the theme named by the route, or the
// default theme on /
func (s *Site) PageHandler(w http.ResponseWriter, r *http.Request) {
	th, err := s.theme(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.render(w, s.options(th), http.StatusOK)
}

// LeadFormHandler is the no-JavaScript path of the lead form. The page is
// rendered again with the submitted values kept in the inputs and either the
// notice or the reason the values were rejected.
func (s *Site) LeadFormHandler(w http.ResponseWriter, r *http.Request) {
	th, err := s.theme(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	f := lead.Normalize(lead.FormState{
		Email: r.PostForm.Get("email"),
		Phone: r.PostForm.Get("phone"),
	})
	opts := s.options(th)
	opts.Lead = f

	log := logrus.WithFields(logrus.Fields{
		"theme":      th.Name,
		"request_id": requestID(r),
	})

	if err := lead.Validate(f); err != nil {
		var ve *lead.ValidationError
		if errors.As(err, &ve) {
			opts.FormError = ve.Reason
		}
		log.WithField("field", fieldOf(err)).Info("Lead form rejected")
		s.render(w, opts, http.StatusUnprocessableEntity)
		return
	}

	receipt, err := s.Submitter.Submit(r.Context(), f)
	if err != nil {
		log.WithError(err).Error("Lead submission failed")
		opts.FormError = submitFailed
		s.render(w, opts, http.StatusInternalServerError)
		return
	}

	opts.Notice = receipt.Notice
	s.render(w, opts, http.StatusOK)
}

// LeadRedirectHandler sends a GET of the form's post-back URL, from a refresh
// or a bookmark, to the form on the theme's page.
func (s *Site) LeadRedirectHandler(w http.ResponseWriter, r *http.Request) {
	th, err := s.theme(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/"+th.Name+"#"+string(theme.Guide), http.StatusSeeOther)
}

func leadPath(th theme.Theme) string {
	return "/" + th.Name + "/lead"
}

func fieldOf(err error) string {
	var ve *lead.ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}
