package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLeadRequestFormState(t *testing.T) {
	req := LeadRequest{Email: "jane@example.com", Phone: "813-555-0100"}
	f := req.FormState()

	if f.Email != "jane@example.com" {
		t.Errorf("Expected email 'jane@example.com', got '%s'", f.Email)
	}
	if f.Phone != "813-555-0100" {
		t.Errorf("Expected phone '813-555-0100', got '%s'", f.Phone)
	}
}

func TestResponseOmitsEmptyID(t *testing.T) {
	data, err := json.Marshal(Response{Success: false, Message: "bad"})
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	if strings.Contains(string(data), `"id"`) {
		t.Errorf("Expected no id field, got %s", data)
	}

	data, err = json.Marshal(Response{Success: true, Message: "ok", ID: "abc"})
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	if !strings.Contains(string(data), `"id":"abc"`) {
		t.Errorf("Expected id field, got %s", data)
	}
}

func TestWSMessage(t *testing.T) {
	data, err := json.Marshal(WSMessage{Type: WSReload})
	if err != nil {
		t.Fatalf("Failed to marshal message: %v", err)
	}
	if string(data) != `{"type":"reload"}` {
		t.Errorf("Expected {\"type\":\"reload\"}, got %s", data)
	}
}
