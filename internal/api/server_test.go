package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	s := NewServer(DefaultConfig(), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %q, want healthy", body["status"])
	}
}

func TestJSONContentTypeEnforced(t *testing.T) {
	s := NewServer(DefaultConfig(), nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rounds", strings.NewReader("course=Local Muni"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnsupportedMediaType)
	}
}

func TestServerPort(t *testing.T) {
	s := NewServer(&Config{Port: 9999}, nil, nil)
	if s.Port() != 9999 {
		t.Errorf("Port() = %d, want 9999", s.Port())
	}
}
