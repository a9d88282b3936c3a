package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"accesslint/internal/db"
	"accesslint/internal/migrate"
	"accesslint/internal/report"
	"accesslint/internal/store"
)

func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC) }
	}
	handler, err := New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

func newTestStoreForServer(t *testing.T) *store.Store {
	t.Helper()
	conn, err := db.Open(db.Config{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := migrate.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return &store.Store{DB: conn}
}

func doJSON(t *testing.T, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		payload = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestHealthRequiresNoAuth(t *testing.T) {
	ts := newTestServer(t, Config{Auth: AuthConfig{AllowAnonymous: false}})
	resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/v1/health", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), `"ok"`) {
		t.Errorf("unexpected body: %s", raw)
	}
}

func TestCheckContrastEndToEnd(t *testing.T) {
	ts := newTestServer(t, Config{Auth: AuthConfig{AllowAnonymous: true}})

	resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/v1/checks/contrast?title=Homepage",
		map[string]any{"foreground": "#333333", "background": "#FFFFFF"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, raw)
	}

	var body struct {
		Text    string               `json:"text"`
		Machine report.MachineReport `json:"machine"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Machine.Summary.Total != 2 || body.Machine.Summary.Passed != 2 {
		t.Errorf("summary = %+v, want 2 passed of 2", body.Machine.Summary)
	}
	if body.Machine.Title != "Homepage" {
		t.Errorf("title = %q, want Homepage", body.Machine.Title)
	}
	if !strings.Contains(body.Text, "12.63") {
		t.Errorf("text report missing computed ratio:\n%s", body.Text)
	}
	if !strings.Contains(body.Text, report.MachineHeader) {
		t.Errorf("text report missing machine block header:\n%s", body.Text)
	}
}

func TestValidationErrorsReturn400(t *testing.T) {
	ts := newTestServer(t, Config{Auth: AuthConfig{AllowAnonymous: true}})

	resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/v1/checks/contrast",
		map[string]any{"foreground": 42, "background": "#fff"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", resp.StatusCode, raw)
	}
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode error envelope: %v in %s", err, raw)
	}
	if envelope.Error.Code != "bad_request" {
		t.Errorf("error code = %q, want bad_request", envelope.Error.Code)
	}
}

func TestCriteriaEndpoints(t *testing.T) {
	ts := newTestServer(t, Config{Auth: AuthConfig{AllowAnonymous: true}})

	resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/v1/criteria", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d: %s", resp.StatusCode, raw)
	}
	var all []map[string]any
	if err := json.Unmarshal(raw, &all); err != nil {
		t.Fatalf("decode criteria: %v", err)
	}
	if len(all) != 78 {
		t.Errorf("criteria count = %d, want 78", len(all))
	}

	resp, raw = doJSON(t, http.MethodGet, ts.URL+"/api/v1/criteria?level=AAA", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("filtered status = %d: %s", resp.StatusCode, raw)
	}
	var aaa []map[string]any
	if err := json.Unmarshal(raw, &aaa); err != nil {
		t.Fatalf("decode filtered criteria: %v", err)
	}
	if len(aaa) == 0 || len(aaa) >= len(all) {
		t.Errorf("AAA filter returned %d of %d", len(aaa), len(all))
	}

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/criteria/1.4.3", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("get 1.4.3 status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/criteria/9.9.9", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get 9.9.9 status = %d, want 404", resp.StatusCode)
	}
}

func TestAnonymousRejectedWhenDisabled(t *testing.T) {
	ts := newTestServer(t, Config{Auth: AuthConfig{JWTSecret: "shh", AllowAnonymous: false}})
	resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/v1/criteria", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: %s", resp.StatusCode, raw)
	}
}

func TestBearerJWTAuth(t *testing.T) {
	secret := "test-signing-secret"
	ts := newTestServer(t, Config{Auth: AuthConfig{JWTSecret: secret}})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "tester"}).
		SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/v1/criteria", nil,
		map[string]string{"Authorization": "Bearer " + token})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("valid token status = %d: %s", resp.StatusCode, raw)
	}

	bad, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "tester"}).
		SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatal(err)
	}
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/criteria", nil,
		map[string]string{"Authorization": "Bearer " + bad})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("forged token status = %d, want 401", resp.StatusCode)
	}
}

func TestAPIKeyAuth(t *testing.T) {
	s := newTestStoreForServer(t)
	secret := "ak-ci-secret"
	if err := s.InsertAPIKey(context.Background(), store.APIKey{
		ID:      "k1",
		Name:    "ci",
		KeyHash: store.HashAPIKey(secret),
	}); err != nil {
		t.Fatalf("insert key: %v", err)
	}

	ts := newTestServer(t, Config{Store: s, Auth: AuthConfig{AllowAnonymous: false}})
	resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/v1/criteria", nil,
		map[string]string{"X-Api-Key": secret})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("api key status = %d: %s", resp.StatusCode, raw)
	}
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/criteria", nil,
		map[string]string{"X-Api-Key": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong key status = %d, want 401", resp.StatusCode)
	}
}

func TestAuditsRecordedAndListed(t *testing.T) {
	s := newTestStoreForServer(t)
	ts := newTestServer(t, Config{Store: s, Auth: AuthConfig{AllowAnonymous: true}})

	resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/v1/checks/contrast",
		map[string]any{"foreground": "#333", "background": "#fff"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check status = %d: %s", resp.StatusCode, raw)
	}

	resp, raw = doJSON(t, http.MethodGet, ts.URL+"/api/v1/audits", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("audits status = %d: %s", resp.StatusCode, raw)
	}
	var audits []store.Audit
	if err := json.Unmarshal(raw, &audits); err != nil {
		t.Fatalf("decode audits: %v", err)
	}
	if len(audits) != 1 {
		t.Fatalf("audit count = %d, want 1", len(audits))
	}
	if audits[0].Operation != "check-contrast" || audits[0].Total != 2 {
		t.Errorf("audit record = %+v", audits[0])
	}

	resp, raw = doJSON(t, http.MethodGet, ts.URL+"/api/v1/audits/"+audits[0].ID, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get audit status = %d: %s", resp.StatusCode, raw)
	}
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/audits/nope", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing audit status = %d, want 404", resp.StatusCode)
	}
}

func TestAuditsDisabledWithoutStore(t *testing.T) {
	ts := newTestServer(t, Config{Auth: AuthConfig{AllowAnonymous: true}})
	resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/v1/audits", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), "auditing is disabled") {
		t.Errorf("unexpected body: %s", raw)
	}
}
