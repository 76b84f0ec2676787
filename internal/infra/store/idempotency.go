package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/config"

	"github.com/google/uuid"
)

const idempotencyKeyPrefix = "booking:v1:idem:"

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Status        string    `json:"status"`
	RequestHash   string    `json:"request_hash"`
	BookingNumber string    `json:"booking_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// IdempotencyStore makes duplicate-submission prevention request-scoped: a
// confirm request claims its key before any charge is attempted, so a double
// click can never fire two charges.
type IdempotencyStore struct {
	kv     KV
	logger *slog.Logger
	ttl    time.Duration
}

func NewIdempotencyStore(kv KV, logger *slog.Logger, cfg config.BookingConfig) *IdempotencyStore {
	return &IdempotencyStore{
		kv:     kv,
		logger: logger,
		ttl:    cfg.IdempotencyTTL,
	}
}

// TryClaim inserts a processing record unless the key already exists and
// reports whether this request claimed it.
func (s *IdempotencyStore) TryClaim(ctx context.Context, clientID, key uuid.UUID, requestHash string, now time.Time) (bool, error) {
	rec := IdempotencyRecord{
		Status:      IdempotencyProcessing,
		RequestHash: requestHash,
		CreatedAt:   now,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return false, infra.WrapStoreErr(s.logger, infra.KindBadRecord, "encode idempotency record", err)
	}

	claimed, err := s.kv.SetNX(ctx, s.key(clientID, key), data, s.ttl)
	if err != nil {
		return false, infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "claim idempotency key", err)
	}
	return claimed, nil
}

func (s *IdempotencyStore) Get(ctx context.Context, clientID, key uuid.UUID) (*IdempotencyRecord, error) {
	data, err := s.kv.Get(ctx, s.key(clientID, key))
	if err != nil {
		if errors.Is(err, ErrKeyMissing) {
			return nil, infra.NewStoreErr(infra.KindNotFound, "idempotency record missing")
		}
		return nil, infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "get idempotency record", err)
	}

	var rec IdempotencyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindBadRecord, "decode idempotency record", err)
	}
	return &rec, nil
}

// Complete records the booking number so a replayed request returns the
// original confirmation instead of charging again.
func (s *IdempotencyStore) Complete(ctx context.Context, clientID, key uuid.UUID, requestHash, bookingNumber string, now time.Time) error {
	rec := IdempotencyRecord{
		Status:        IdempotencyCompleted,
		RequestHash:   requestHash,
		BookingNumber: bookingNumber,
		CreatedAt:     now,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindBadRecord, "encode idempotency record", err)
	}
	if err := s.kv.Set(ctx, s.key(clientID, key), data, s.ttl); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "complete idempotency record", err)
	}
	return nil
}

// Release frees a claimed key after a failed attempt so the client can retry
// with the same key once the failure is resolved.
func (s *IdempotencyStore) Release(ctx context.Context, clientID, key uuid.UUID) error {
	if err := s.kv.Del(ctx, s.key(clientID, key)); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "release idempotency key", err)
	}
	return nil
}

func (s *IdempotencyStore) key(clientID, key uuid.UUID) string {
	return idempotencyKeyPrefix + clientID.String() + ":" + key.String()
}
