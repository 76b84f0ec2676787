// Package store is the typed, namespaced replacement for the frontends'
// two-key localStorage hand-off: one draft slot and one confirmation slot
// per client, versioned payloads, TTL on drafts, clear-on-consume driven by
// the confirm flow.
package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/chat"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/config"

	"github.com/google/uuid"
)

const (
	draftKeyPrefix        = "booking:v1:draft:"
	confirmationKeyPrefix = "booking:v1:confirmation:"
	chatKeyPrefix         = "booking:v1:chat:"
	leadsKey              = "booking:v1:leads"
)

type BookingStore struct {
	kv       KV
	logger   *slog.Logger
	draftTTL time.Duration
}

func NewBookingStore(kv KV, logger *slog.Logger, cfg config.BookingConfig) *BookingStore {
	return &BookingStore{
		kv:       kv,
		logger:   logger,
		draftTTL: cfg.DraftTTL,
	}
}

// SaveDraft overwrites any existing draft for the client unconditionally;
// the slot is last-write-wins.
func (s *BookingStore) SaveDraft(ctx context.Context, clientID uuid.UUID, d *booking.Draft) error {
	rec, err := toDraftRecord(d)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindBadRecord, "encode draft", err)
	}
	data, err := seal(rec)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindBadRecord, "seal draft", err)
	}
	if err := s.kv.Set(ctx, draftKeyPrefix+clientID.String(), data, s.draftTTL); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "save draft", err)
	}
	return nil
}

// LoadDraft reads the client's draft slot. Absent, expired, undecodable and
// schema-mismatched values all read as not-found; a corrupt slot must not
// wedge the checkout flow.
func (s *BookingStore) LoadDraft(ctx context.Context, clientID uuid.UUID) (*booking.Draft, error) {
	data, err := s.kv.Get(ctx, draftKeyPrefix+clientID.String())
	if err != nil {
		return nil, s.asNotFound("load draft", err)
	}

	var rec draftRecord
	if err := unseal(data, &rec); err != nil {
		s.logger.Warn("discarding undecodable draft", "client_id", clientID, "error", err)
		return nil, infra.NewStoreErr(infra.KindNotFound, "draft not decodable")
	}

	d, err := fromDraftRecord(rec)
	if err != nil {
		s.logger.Warn("discarding invalid draft", "client_id", clientID, "error", err)
		return nil, infra.NewStoreErr(infra.KindNotFound, "draft not valid")
	}
	return d, nil
}

// ClearDraft removes the slot; clearing an empty slot is a no-op.
func (s *BookingStore) ClearDraft(ctx context.Context, clientID uuid.UUID) error {
	if err := s.kv.Del(ctx, draftKeyPrefix+clientID.String()); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "clear draft", err)
	}
	return nil
}

func (s *BookingStore) SaveConfirmation(ctx context.Context, clientID uuid.UUID, c *booking.Confirmation) error {
	rec, err := toConfirmationRecord(c)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindBadRecord, "encode confirmation", err)
	}
	data, err := seal(rec)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindBadRecord, "seal confirmation", err)
	}
	// Confirmations do not expire; the slot holds the latest confirmed
	// booking until the next one overwrites it.
	if err := s.kv.Set(ctx, confirmationKeyPrefix+clientID.String(), data, 0); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "save confirmation", err)
	}
	return nil
}

func (s *BookingStore) LoadConfirmation(ctx context.Context, clientID uuid.UUID) (*booking.Confirmation, error) {
	data, err := s.kv.Get(ctx, confirmationKeyPrefix+clientID.String())
	if err != nil {
		return nil, s.asNotFound("load confirmation", err)
	}

	var rec confirmationRecord
	if err := unseal(data, &rec); err != nil {
		return nil, infra.NewStoreErr(infra.KindNotFound, "confirmation not decodable")
	}

	c, err := fromConfirmationRecord(rec)
	if err != nil {
		return nil, infra.NewStoreErr(infra.KindNotFound, "confirmation not valid")
	}
	return c, nil
}

func (s *BookingStore) LoadChatSession(ctx context.Context, clientID uuid.UUID) (chat.Session, error) {
	data, err := s.kv.Get(ctx, chatKeyPrefix+clientID.String())
	if err != nil {
		// A fresh or lost session just starts over in free mode.
		return chat.NewSession(), nil
	}

	var session chat.Session
	if err := unseal(data, &session); err != nil {
		return chat.NewSession(), nil
	}
	return session, nil
}

func (s *BookingStore) SaveChatSession(ctx context.Context, clientID uuid.UUID, session chat.Session) error {
	data, err := seal(session)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindBadRecord, "seal chat session", err)
	}
	if err := s.kv.Set(ctx, chatKeyPrefix+clientID.String(), data, s.draftTTL); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "save chat session", err)
	}
	return nil
}

func (s *BookingStore) AppendLead(ctx context.Context, lead chat.Lead) error {
	data, err := toLeadRecord(lead)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindBadRecord, "encode lead", err)
	}
	if err := s.kv.RPush(ctx, leadsKey, data); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "append lead", err)
	}
	return nil
}

func (s *BookingStore) ListLeads(ctx context.Context) ([]chat.Lead, error) {
	raw, err := s.kv.LRange(ctx, leadsKey)
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "list leads", err)
	}

	leads := make([]chat.Lead, 0, len(raw))
	for _, data := range raw {
		lead, err := fromLeadRecord(data)
		if err != nil {
			s.logger.Warn("skipping undecodable lead", "error", err)
			continue
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

func (s *BookingStore) asNotFound(msg string, err error) error {
	if errors.Is(err, ErrKeyMissing) {
		return infra.NewStoreErr(infra.KindNotFound, msg)
	}
	return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, msg, err)
}
