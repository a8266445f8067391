package ports

import (
	"context"
	"errors"
	"time"
)

// ErrIdempotencyConflict reports an Idempotency-Key reused for a different pet payload.
var ErrIdempotencyConflict = errors.New("chave de idempotência já usada com outro cadastro de pet")

// ReceiptTTL is how long an Idempotency-Key replays the pet it created.
const ReceiptTTL = 24 * time.Hour

// CreationReceipt remembers which pet a POST /pets with an Idempotency-Key produced.
type CreationReceipt struct {
	Key         string
	Fingerprint string
	PetID       int64
	IssuedAt    time.Time
}

// Matches reports whether a retry carrying fingerprint may replay this receipt.
func (r CreationReceipt) Matches(fingerprint string) bool {
	return r.Fingerprint == fingerprint
}

// Expired reports whether the key is free again at now.
func (r CreationReceipt) Expired(now time.Time) bool {
	return !now.Before(r.IssuedAt.Add(ReceiptTTL))
}

// CreationReceipts keeps the live receipts of pet creations.
type CreationReceipts interface {
	// Find returns the live receipt for key, or nil.
	Find(ctx context.Context, key string) (*CreationReceipt, error)
	// Claim stores receipt unless a live receipt already holds its key. The holder is
	// returned either way, with ErrIdempotencyConflict when its fingerprint differs.
	Claim(ctx context.Context, receipt CreationReceipt) (*CreationReceipt, error)
}
