package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

func serve(t *testing.T, h echo.HandlerFunc) (*httptest.ResponseRecorder, readinessResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var body readinessResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	if err := NewHealthHandler().Liveness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_PostgresUpRedisDisabled(t *testing.T) {
	h := NewHealthDependenciesHandler(stubPinger{}, nil)
	rec, body := serve(t, h.Readiness)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body.Dependencies["postgres"].Status != "ok" {
		t.Fatalf("expected postgres ok, got %+v", body.Dependencies["postgres"])
	}
	if body.Dependencies["redis"].Status != "disabled" {
		t.Fatalf("expected redis disabled, got %+v", body.Dependencies["redis"])
	}
}

func TestReadiness_PostgresDown(t *testing.T) {
	h := NewHealthDependenciesHandler(stubPinger{err: errors.New("connection refused")}, nil)
	rec, body := serve(t, h.Readiness)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if body.Status != "degraded" {
		t.Fatalf("expected degraded, got %q", body.Status)
	}
	if body.Dependencies["postgres"].Error == "" {
		t.Fatalf("expected postgres error detail")
	}
}
