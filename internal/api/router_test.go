package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/jobtrack/tracker-api/internal/core/domain"
	"github.com/jobtrack/tracker-api/internal/core/ports"
	"github.com/jobtrack/tracker-api/internal/core/service"
)

// ---------------------------------------------------------------------------
// In-memory repositories
// ---------------------------------------------------------------------------

type memUsers struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int64
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	clone.CreatedAt = time.Now().UTC()
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}

type memJobs struct {
	mu     sync.Mutex
	jobs   map[int64]*domain.JobApplication
	nextID int64
}

func (r *memJobs) Create(_ context.Context, job *domain.JobApplication) (*domain.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone := *job
	clone.ID = r.nextID
	r.jobs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memJobs) FindByID(_ context.Context, id int64) (*domain.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *memJobs) List(_ context.Context, f ports.ListJobsFilter) ([]*domain.JobApplication, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.JobApplication
	for _, j := range r.jobs {
		if j.UserID != f.UserID || (f.Status != "" && j.Status != f.Status) {
			continue
		}
		if f.CompanyName != "" && !strings.Contains(strings.ToLower(j.CompanyName), strings.ToLower(f.CompanyName)) {
			continue
		}
		clone := *j
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].ID > matched[b].ID })
	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []*domain.JobApplication{}, total, nil
	}
	return matched[f.Offset:min(f.Offset+f.Limit, len(matched))], total, nil
}

func (r *memJobs) Update(_ context.Context, id, userID int64, c ports.JobChanges) (*domain.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok || j.UserID != userID {
		return nil, domain.ErrJobNotFound
	}
	if c.CompanyName != nil {
		j.CompanyName = *c.CompanyName
	}
	if c.JobTitle != nil {
		j.JobTitle = *c.JobTitle
	}
	if c.Status != nil {
		j.Status = *c.Status
	}
	clone := *j
	return &clone, nil
}

func (r *memJobs) Delete(_ context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok || j.UserID != userID {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const testSecret = "router-test-secret"

type testServer struct {
	t  *testing.T
	ts *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zerolog.Nop()
	users := &memUsers{users: make(map[string]*domain.User)}
	jobs := &memJobs{jobs: make(map[int64]*domain.JobApplication)}

	e := NewRouter(Deps{
		AuthService: service.NewAuthService(users, nil, testSecret, time.Hour, log),
		JobService:  service.NewJobService(jobs, log),
		Verifier:    service.NewTokenVerifier(testSecret),
		DB:          okPinger{},
		Logger:      log,
		Registry:    prometheus.NewRegistry(),
	})
	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)
	return &testServer{t: t, ts: ts}
}

// do sends a request and decodes the JSON response body into a generic map.
func (s *testServer) do(method, path, token, body string) (int, map[string]any) {
	s.t.Helper()
	req, err := http.NewRequest(method, s.ts.URL+path, strings.NewReader(body))
	if err != nil {
		s.t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.ts.Client().Do(req)
	if err != nil {
		s.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func (s *testServer) register(email, password string) {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/auth/register", "", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	if code != http.StatusCreated {
		s.t.Fatalf("register %s: expected 201, got %d (%v)", email, code, body)
	}
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/auth/login", "", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	if code != http.StatusOK {
		s.t.Fatalf("login %s: expected 200, got %d (%v)", email, code, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		s.t.Fatalf("login %s: empty token", email)
	}
	return token
}

func (s *testServer) createJob(token, company, title, status string) int64 {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/jobs", token,
		fmt.Sprintf(`{"companyName":%q,"jobTitle":%q,"status":%q}`, company, title, status))
	if code != http.StatusCreated {
		s.t.Fatalf("create job: expected 201, got %d (%v)", code, body)
	}
	id, _ := body["id"].(float64)
	return int64(id)
}

func expectStatus(t *testing.T, got, want int, body map[string]any) {
	t.Helper()
	if got != want {
		t.Fatalf("expected %d, got %d (%v)", want, got, body)
	}
}

// ---------------------------------------------------------------------------
// End-to-end
// ---------------------------------------------------------------------------

func TestRouter_Scenario(t *testing.T) {
	s := newTestServer(t)

	s.register("alice@x.io", "pw1")

	code, body := s.do(http.MethodPost, "/auth/register", "", `{"email":"alice@x.io","password":"pw1"}`)
	expectStatus(t, code, http.StatusConflict, body)
	if body["message"] != "user already exists" {
		t.Fatalf("unexpected conflict message: %v", body["message"])
	}

	code, body = s.do(http.MethodPost, "/auth/login", "", `{"email":"alice@x.io","password":"bad"}`)
	expectStatus(t, code, http.StatusUnauthorized, body)

	token := s.login("alice@x.io", "pw1")

	id := s.createJob(token, "Acme", "Engineer", "Applied")
	if id < 1 {
		t.Fatalf("expected positive job id, got %d", id)
	}

	code, body = s.do(http.MethodGet, "/jobs", token, "")
	expectStatus(t, code, http.StatusOK, body)
	data, _ := body["data"].([]any)
	if len(data) != 1 || body["total"] != float64(1) || body["totalPages"] != float64(1) {
		t.Fatalf("unexpected list body: %v", body)
	}
	first, _ := data[0].(map[string]any)
	if first["companyName"] != "Acme" || first["jobTitle"] != "Engineer" || first["status"] != "Applied" {
		t.Fatalf("unexpected job: %v", first)
	}

	path := fmt.Sprintf("/jobs/%d", id)
	code, body = s.do(http.MethodDelete, path, token, "")
	expectStatus(t, code, http.StatusOK, body)
	if body["message"] != "Job deleted successfully" {
		t.Fatalf("unexpected delete message: %v", body["message"])
	}

	code, body = s.do(http.MethodGet, path, token, "")
	expectStatus(t, code, http.StatusNotFound, body)
}

func TestRouter_GetAndPatch(t *testing.T) {
	s := newTestServer(t)
	s.register("alice@x.io", "pw1")
	token := s.login("alice@x.io", "pw1")
	id := s.createJob(token, "Acme", "Engineer", "Applied")
	path := fmt.Sprintf("/jobs/%d", id)

	code, body := s.do(http.MethodPatch, path, token, `{"status":"Interview"}`)
	expectStatus(t, code, http.StatusOK, body)
	if body["status"] != "Interview" || body["companyName"] != "Acme" || body["jobTitle"] != "Engineer" {
		t.Fatalf("patch changed more than status: %v", body)
	}

	code, body = s.do(http.MethodGet, path, token, "")
	expectStatus(t, code, http.StatusOK, body)
	if body["status"] != "Interview" {
		t.Fatalf("expected persisted status Interview, got %v", body["status"])
	}

	code, body = s.do(http.MethodPatch, path, token, `{}`)
	expectStatus(t, code, http.StatusBadRequest, body)
}

func TestRouter_OwnershipIsEnforced(t *testing.T) {
	s := newTestServer(t)
	s.register("alice@x.io", "pw1")
	s.register("bob@x.io", "pw2")
	alice := s.login("alice@x.io", "pw1")
	bob := s.login("bob@x.io", "pw2")

	id := s.createJob(alice, "Acme", "Engineer", "Applied")
	path := fmt.Sprintf("/jobs/%d", id)

	for _, tc := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPatch, `{"status":"Rejected"}`},
		{http.MethodDelete, ""},
	} {
		code, body := s.do(tc.method, path, bob, tc.body)
		expectStatus(t, code, http.StatusForbidden, body)
		if _, leaked := body["companyName"]; leaked {
			t.Fatalf("%s leaked job contents: %v", tc.method, body)
		}
	}

	code, body := s.do(http.MethodGet, "/jobs", bob, "")
	expectStatus(t, code, http.StatusOK, body)
	if body["total"] != float64(0) {
		t.Fatalf("bob should see no jobs, got %v", body)
	}
}

func TestRouter_Unauthenticated(t *testing.T) {
	s := newTestServer(t)

	for _, token := range []string{"", "not-a-token"} {
		code, body := s.do(http.MethodGet, "/jobs", token, "")
		expectStatus(t, code, http.StatusUnauthorized, body)
		if body["message"] == nil {
			t.Fatalf("expected message envelope, got %v", body)
		}
	}
}

func TestRouter_BadInput(t *testing.T) {
	s := newTestServer(t)
	s.register("alice@x.io", "pw1")
	token := s.login("alice@x.io", "pw1")

	cases := []struct {
		name, method, path, body string
	}{
		{"non-integer id", http.MethodGet, "/jobs/abc", ""},
		{"zero id", http.MethodDelete, "/jobs/0", ""},
		{"bad status", http.MethodPost, "/jobs", `{"companyName":"Acme","jobTitle":"Engineer","status":"Hired"}`},
		{"missing company", http.MethodPost, "/jobs", `{"jobTitle":"Engineer","status":"Applied"}`},
		{"malformed json", http.MethodPost, "/jobs", `{"companyName":`},
		{"bad page", http.MethodGet, "/jobs?page=abc", ""},
		{"zero limit", http.MethodGet, "/jobs?limit=0", ""},
		{"bad status filter", http.MethodGet, "/jobs?status=Hired", ""},
		{"register bad email", http.MethodPost, "/auth/register", `{"email":"nope","password":"pw"}`},
		{"login missing password", http.MethodPost, "/auth/login", `{"email":"alice@x.io"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := s.do(tc.method, tc.path, token, tc.body)
			expectStatus(t, code, http.StatusBadRequest, body)
			if msg, _ := body["message"].(string); msg == "" {
				t.Fatalf("expected validation message, got %v", body)
			}
		})
	}
}

func TestRouter_UnknownRouteKeepsEchoStatus(t *testing.T) {
	s := newTestServer(t)
	code, body := s.do(http.MethodGet, "/nope", "", "")
	expectStatus(t, code, http.StatusNotFound, body)
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodGet, "/health", "", "")
	expectStatus(t, code, http.StatusOK, body)

	code, body = s.do(http.MethodGet, "/health/ready", "", "")
	expectStatus(t, code, http.StatusOK, body)

	resp, err := s.ts.Client().Get(s.ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", resp.StatusCode)
	}
}
