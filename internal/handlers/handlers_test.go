package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"hypnosis-landing/internal/lead"
	"hypnosis-landing/internal/types"
)

// countingSubmitter records every call it receives
type countingSubmitter struct {
	calls []lead.FormState
	err   error
}

func (c *countingSubmitter) Submit(ctx context.Context, f lead.FormState) (lead.Receipt, error) {
	c.calls = append(c.calls, f)
	if c.err != nil {
		return lead.Receipt{}, c.err
	}
	return lead.Receipt{ID: "receipt-1", Notice: lead.PlaceholderNotice}, nil
}

func newSite(sub lead.Submitter) *Site {
	return &Site{DefaultTheme: "classic", Submitter: sub}
}

// withTheme attaches the {theme} route parameter the router would set
func withTheme(r *http.Request, name string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("theme", name)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestSendError(t *testing.T) {
	w := httptest.NewRecorder()
	sendError(w, "Test error", http.StatusBadRequest)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp types.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Success {
		t.Error("Expected success to be false")
	}

	if resp.Message != "Test error" {
		t.Errorf("Expected message 'Test error', got '%s'", resp.Message)
	}
}

func TestSendSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	sendSuccess(w, "Test success", "abc")

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp types.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("Expected success to be true")
	}

	if resp.ID != "abc" {
		t.Errorf("Expected id 'abc', got '%s'", resp.ID)
	}
}

func TestPageHandler(t *testing.T) {
	site := newSite(&countingSubmitter{})

	for _, name := range []string{"", "classic", "spotlight", "calm"} {
		req := httptest.NewRequest("GET", "/"+name, nil)
		if name != "" {
			req = withTheme(req, name)
		}
		w := httptest.NewRecorder()
		site.PageHandler(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%q: expected status %d, got %d", name, http.StatusOK, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Errorf("%q: expected Content-Type 'text/html; charset=utf-8', got '%s'", name, ct)
		}
		want := name
		if want == "" {
			want = "classic"
		}
		if !strings.Contains(w.Body.String(), `data-theme="`+want+`"`) {
			t.Errorf("%q: expected page in theme %s", name, want)
		}
	}
}

func TestPageHandlerUnknownTheme(t *testing.T) {
	site := newSite(&countingSubmitter{})
	req := withTheme(httptest.NewRequest("GET", "/neon", nil), "neon")
	w := httptest.NewRecorder()

	site.PageHandler(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestLeadFormHandlerValid(t *testing.T) {
	sub := &countingSubmitter{}
	site := newSite(sub)
	req := withTheme(formRequest("/calm/lead", url.Values{
		"email": {" jane@example.com "},
		"phone": {"813 555 0100"},
	}), "calm")
	w := httptest.NewRecorder()

	site.LeadFormHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if len(sub.calls) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(sub.calls))
	}
	if sub.calls[0].Email != "jane@example.com" {
		t.Errorf("Expected trimmed email, got '%s'", sub.calls[0].Email)
	}
	if w.Header().Get("Location") != "" {
		t.Error("Expected no redirect")
	}

	body := w.Body.String()
	if !strings.Contains(body, lead.PlaceholderNotice) {
		t.Error("Expected the placeholder notice in the page")
	}
	if !strings.Contains(body, `value="jane@example.com"`) || !strings.Contains(body, `value="813 555 0100"`) {
		t.Error("Expected the submitted values to stay in the inputs")
	}
}

func TestLeadFormHandlerEmptyEmail(t *testing.T) {
	sub := &countingSubmitter{}
	site := newSite(sub)
	req := withTheme(formRequest("/classic/lead", url.Values{
		"email": {""},
		"phone": {"813 555 0100"},
	}), "classic")
	w := httptest.NewRecorder()

	site.LeadFormHandler(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
	if len(sub.calls) != 0 {
		t.Errorf("Expected no submission, got %d", len(sub.calls))
	}
	if !strings.Contains(w.Body.String(), "Please fill out this field.") {
		t.Error("Expected the rejection reason in the page")
	}
	if !strings.Contains(w.Body.String(), `value="813 555 0100"`) {
		t.Error("Expected the phone value to stay in the input")
	}
}

func TestLeadFormHandlerSubmitterError(t *testing.T) {
	sub := &countingSubmitter{err: errors.New("crm down")}
	site := newSite(sub)
	req := withTheme(formRequest("/classic/lead", url.Values{
		"email": {"jane@example.com"},
		"phone": {"813 555 0100"},
	}), "classic")
	w := httptest.NewRecorder()

	site.LeadFormHandler(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if strings.Contains(w.Body.String(), lead.PlaceholderNotice+"</div>") {
		t.Error("Expected no success notice")
	}
}

func TestLeadRedirectHandler(t *testing.T) {
	site := newSite(&countingSubmitter{})
	req := withTheme(httptest.NewRequest("GET", "/calm/lead", nil), "calm")
	w := httptest.NewRecorder()

	site.LeadRedirectHandler(w, req)

	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected status %d, got %d", http.StatusSeeOther, w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/calm#guide" {
		t.Errorf("Expected redirect to /calm#guide, got '%s'", loc)
	}
}

func TestAPILeadHandler_InvalidMethod(t *testing.T) {
	site := newSite(&countingSubmitter{})
	req := httptest.NewRequest("GET", "/api/lead", nil)
	w := httptest.NewRecorder()

	site.APILeadHandler(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestAPILeadHandler_InvalidJSON(t *testing.T) {
	site := newSite(&countingSubmitter{})
	req := httptest.NewRequest("POST", "/api/lead", bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	site.APILeadHandler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestAPILeadHandler_Valid(t *testing.T) {
	sub := &countingSubmitter{}
	site := newSite(sub)
	body, _ := json.Marshal(types.LeadRequest{Email: "jane@example.com", Phone: "813-555-0100"})
	req := httptest.NewRequest("POST", "/api/lead", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	w := httptest.NewRecorder()

	site.APILeadHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if len(sub.calls) != 1 {
		t.Errorf("Expected 1 submission, got %d", len(sub.calls))
	}

	var resp types.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || resp.Message != lead.PlaceholderNotice || resp.ID != "receipt-1" {
		t.Errorf("Unexpected response %+v", resp)
	}
}

func TestAPILeadHandler_MissingEmail(t *testing.T) {
	sub := &countingSubmitter{}
	site := newSite(sub)
	req := formRequest("/api/lead", url.Values{"phone": {"813-555-0100"}})
	w := httptest.NewRecorder()

	site.APILeadHandler(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
	if len(sub.calls) != 0 {
		t.Errorf("Expected no submission, got %d", len(sub.calls))
	}

	var resp types.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Field != "email" {
		t.Errorf("Expected field 'email', got '%s'", resp.Field)
	}
}

func TestSchemaHandler(t *testing.T) {
	req := httptest.NewRequest("GET", "/schema.json", nil)
	w := httptest.NewRecorder()

	SchemaHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/ld+json" {
		t.Errorf("Expected Content-Type 'application/ld+json', got '%s'", ct)
	}

	var rec map[string]any
	if err := json.NewDecoder(w.Body).Decode(&rec); err != nil {
		t.Fatalf("Failed to decode record: %v", err)
	}
	if rec["@type"] != "LocalBusiness" {
		t.Errorf("Expected @type 'LocalBusiness', got '%v'", rec["@type"])
	}
}

func TestStaticHandler(t *testing.T) {
	for path, ct := range map[string]string{
		"/static/css/site.css":     "text/css; charset=utf-8",
		"/static/js/lead.js":       "text/javascript; charset=utf-8",
		"/static/js/livereload.js": "text/javascript; charset=utf-8",
	} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		StaticHandler().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusOK, w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != ct {
			t.Errorf("%s: expected Content-Type '%s', got '%s'", path, ct, got)
		}
		if w.Header().Get("Cache-Control") == "" {
			t.Errorf("%s: expected a Cache-Control header", path)
		}
	}
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	HealthHandler(w, httptest.NewRequest("GET", "/healthz", nil))

	if w.Body.String() != "ok" {
		t.Errorf("Expected body 'ok', got '%s'", w.Body.String())
	}
}

func TestStateHandler(t *testing.T) {
	site := newSite(&countingSubmitter{})
	w := httptest.NewRecorder()
	site.StateHandler(w, httptest.NewRequest("GET", "/api/state", nil))

	var st types.ServerState
	if err := json.NewDecoder(w.Body).Decode(&st); err != nil {
		t.Fatalf("Failed to decode state: %v", err)
	}
	if st.DefaultTheme != "classic" {
		t.Errorf("Expected default theme 'classic', got '%s'", st.DefaultTheme)
	}
	if len(st.Themes) != 3 {
		t.Errorf("Expected 3 themes, got %d", len(st.Themes))
	}
}
