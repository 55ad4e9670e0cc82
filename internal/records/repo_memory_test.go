package records

import (
	"context"
	"testing"

	"audit-backend/internal/audit"
)

func TestMemoryRepoPutOverwrites(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, audit.Record{UserID: "r1", Status: audit.StatusFailed, Error: "boom"}); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := repo.Put(ctx, audit.Record{UserID: "r1", Status: audit.StatusProcessed, AuditID: "a1"}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	rec, ok := repo.Get("r1")
	if !ok {
		t.Fatal("expected record for r1")
	}
	if rec.Status != audit.StatusProcessed || rec.Error != "" {
		t.Fatalf("expected second write to win fully, got %+v", rec)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected exactly one record per key, got %d", repo.Len())
	}
}

func TestMemoryRepoDeleteIdempotent(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Delete(ctx, "absent"); err != nil {
		t.Fatalf("delete absent key: %v", err)
	}

	if err := repo.Put(ctx, audit.Record{UserID: "r1", Status: audit.StatusProcessed}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete(ctx, "r1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "r1"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	if _, ok := repo.Get("r1"); ok {
		t.Fatal("expected record to be gone")
	}
}
