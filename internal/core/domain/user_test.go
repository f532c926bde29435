package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestUser_JSONHidesHashAndUsesCamelCase(t *testing.T) {
	u := User{ID: 1, Email: "alice@x.io", PasswordHash: "$2a$10$secret", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(b)
	if strings.Contains(out, "secret") || strings.Contains(out, "password") {
		t.Fatalf("password hash leaked: %s", out)
	}
	if !strings.Contains(out, `"createdAt":"2026-01-01T00:00:00Z"`) {
		t.Fatalf("expected camelCase createdAt, got %s", out)
	}
}
