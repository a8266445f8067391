package memory

import (
	"context"
	"sync"
	"time"

	"github.com/petcare/petcare-api/internal/domains/pets/ports"
)

var _ ports.CreationReceipts = (*Receipts)(nil)

// Receipts holds pet creation receipts in process memory. Expired keys are reclaimed on Claim.
type Receipts struct {
	mu    sync.Mutex
	byKey map[string]ports.CreationReceipt
	now   func() time.Time
}

// NewReceipts returns an empty receipt book using the wall clock.
func NewReceipts() *Receipts {
	return NewReceiptsWithClock(time.Now)
}

// NewReceiptsWithClock is NewReceipts with a custom time source.
func NewReceiptsWithClock(now func() time.Time) *Receipts {
	return &Receipts{byKey: map[string]ports.CreationReceipt{}, now: now}
}

func (r *Receipts) Find(_ context.Context, key string) (*ports.CreationReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.liveLocked(key), nil
}

func (r *Receipts) Claim(_ context.Context, receipt ports.CreationReceipt) (*ports.CreationReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if holder := r.liveLocked(receipt.Key); holder != nil {
		if !holder.Matches(receipt.Fingerprint) {
			return holder, ports.ErrIdempotencyConflict
		}
		return holder, nil
	}
	receipt.IssuedAt = r.now().UTC()
	r.byKey[receipt.Key] = receipt
	return &receipt, nil
}

func (r *Receipts) liveLocked(key string) *ports.CreationReceipt {
	receipt, ok := r.byKey[key]
	if !ok {
		return nil
	}
	if receipt.Expired(r.now()) {
		delete(r.byKey, key)
		return nil
	}
	return &receipt
}
