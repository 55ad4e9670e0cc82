package records

import (
	"context"
	"sync"

	"audit-backend/internal/audit"
)

// MemoryRepo is an in-memory record store for dev mode and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]audit.Record
}

// NewMemoryRepo creates an empty in-memory record store.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]audit.Record)}
}

// Put overwrites the record at rec.UserID.
func (r *MemoryRepo) Put(ctx context.Context, rec audit.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[rec.UserID] = rec
	return nil
}

// Delete removes the record at key; absent keys are not an error.
func (r *MemoryRepo) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, key)
	return nil
}

// Get returns the record at key, if present.
func (r *MemoryRepo) Get(key string) (audit.Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[key]
	return rec, ok
}

// Len reports the number of stored records.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

var _ audit.RecordStore = (*MemoryRepo)(nil)
