package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"accesslint/internal/db"
	"accesslint/internal/migrate"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	conn, err := db.Open(db.Config{Workspace: t.TempDir()})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := migrate.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return Store{DB: conn}
}

func testAudit(id, createdAt, operation string) Audit {
	return Audit{
		ID:        id,
		CreatedAt: createdAt,
		Operation: operation,
		Category:  "text",
		Actor:     "cli",
		Total:     3,
		Passed:    2,
		Failed:    1,
	}
}

func TestInsertAndGetAudit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAudit("a1", "2026-01-02T03:04:05Z", "check-contrast")
	a.ReportJSON = `{"version":"wcag2.1"}`
	if err := s.InsertAudit(ctx, a); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.GetAudit(ctx, "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != a {
		t.Errorf("got %+v, want %+v", got, a)
	}

	if _, err := s.GetAudit(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing: err = %v, want ErrNotFound", err)
	}
}

func TestLatestAudits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ops := []string{"check-contrast", "validate-text", "check-contrast"}
	for i, op := range ops {
		a := testAudit(fmt.Sprintf("a%d", i), fmt.Sprintf("2026-01-0%dT00:00:00Z", i+1), op)
		if err := s.InsertAudit(ctx, a); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	all, err := s.LatestAudits(ctx, "", 0)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	// Newest first.
	if all[0].ID != "a2" || all[2].ID != "a0" {
		t.Errorf("order: %s .. %s, want a2 .. a0", all[0].ID, all[2].ID)
	}

	filtered, err := s.LatestAudits(ctx, "check-contrast", 0)
	if err != nil {
		t.Fatalf("filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered len = %d, want 2", len(filtered))
	}
	for _, a := range filtered {
		if a.Operation != "check-contrast" {
			t.Errorf("filter leaked operation %q", a.Operation)
		}
	}

	limited, err := s.LatestAudits(ctx, "", 1)
	if err != nil {
		t.Fatalf("limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "a2" {
		t.Errorf("limit 1: %+v", limited)
	}
}

func TestPruneAudits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		a := testAudit(fmt.Sprintf("a%d", i), fmt.Sprintf("2026-01-0%dT00:00:00Z", i+1), "check-contrast")
		if err := s.InsertAudit(ctx, a); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	// keep<=0 is a no-op.
	if err := s.PruneAudits(ctx, 0); err != nil {
		t.Fatalf("prune 0: %v", err)
	}
	if n, _ := s.CountAudits(ctx); n != 5 {
		t.Errorf("after no-op prune: %d, want 5", n)
	}

	if err := s.PruneAudits(ctx, 2); err != nil {
		t.Fatalf("prune 2: %v", err)
	}
	remaining, err := s.LatestAudits(ctx, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 2 {
		t.Fatalf("after prune: %d records, want 2", len(remaining))
	}
	if remaining[0].ID != "a4" || remaining[1].ID != "a3" {
		t.Errorf("prune kept %s, %s; want a4, a3", remaining[0].ID, remaining[1].ID)
	}
}

func TestAPIKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	secret := "sk-test-secret"
	key := APIKey{
		ID:        "k1",
		Name:      "ci",
		KeyHash:   HashAPIKey(secret),
		CreatedAt: "2026-01-01T00:00:00Z",
	}
	if err := s.InsertAPIKey(ctx, key); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.GetAPIKeyByHash(ctx, HashAPIKey(secret))
	if err != nil {
		t.Fatalf("get by hash: %v", err)
	}
	if got.Name != "ci" {
		t.Errorf("name = %q, want ci", got.Name)
	}

	// Hashing trims surrounding whitespace.
	if HashAPIKey(" "+secret+" ") != key.KeyHash {
		t.Error("hash is not whitespace-insensitive")
	}

	if _, err := s.GetAPIKeyByHash(ctx, HashAPIKey("wrong")); !errors.Is(err, ErrNotFound) {
		t.Errorf("wrong secret: err = %v, want ErrNotFound", err)
	}

	if err := s.RevokeAPIKey(ctx, "k1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := s.GetAPIKeyByHash(ctx, HashAPIKey(secret)); !errors.Is(err, ErrNotFound) {
		t.Errorf("revoked key still resolves: err = %v", err)
	}
	if err := s.RevokeAPIKey(ctx, "k1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second revoke: err = %v, want ErrNotFound", err)
	}

	keys, err := s.ListAPIKeys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0].RevokedAt == nil {
		t.Errorf("listed keys should include the revoked one with its timestamp: %+v", keys)
	}
}
