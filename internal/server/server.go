// Package server wires the handlers into a chi router and runs it.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"hypnosis-landing/internal/handlers"
	"hypnosis-landing/internal/lead"
	"hypnosis-landing/internal/websocket"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Options configures the router
type Options struct {
	DefaultTheme string
	Submitter    lead.Submitter
	// Dev mounts /ws and adds the live-reload script to every page
	Dev bool
}

// NewRouter returns the HTTP handler for the whole site
func NewRouter(opts Options) http.Handler {
	if opts.Submitter == nil {
		opts.Submitter = lead.Placeholder{}
	}
	site := &handlers.Site{
		DefaultTheme: opts.DefaultTheme,
		Submitter:    opts.Submitter,
		LiveReload:   opts.Dev,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.HealthHandler)

	if opts.Dev {
		// outside the timeout and compression middleware: the connection is hijacked
		r.Get("/ws", websocket.WSHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))
		r.Use(middleware.Timeout(requestTimeout))

		r.Handle("/static/*", handlers.StaticHandler())
		r.Get("/schema.json", handlers.SchemaHandler)
		r.Get("/api/state", site.StateHandler)
		r.HandleFunc("/api/lead", site.APILeadHandler)

		r.Get("/", site.PageHandler)
		r.Get("/{theme}", site.PageHandler)
		r.Post("/{theme}/lead", site.LeadFormHandler)
		r.Get("/{theme}/lead", site.LeadRedirectHandler)
	})

	return r
}

// Logger logs one line per request with the chi request id
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		entry := logrus.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     status,
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		})
		if status >= http.StatusInternalServerError {
			entry.Error("Request failed")
			return
		}
		entry.Info("Request served")
	})
}

// Run serves h on addr until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logrus.WithField("addr", addr).Info("Server started")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
