package queries

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type DraftReadStore interface {
	LoadDraft(ctx context.Context, clientID uuid.UUID) (*booking.Draft, error)
}

type ConfirmationReadStore interface {
	LoadConfirmation(ctx context.Context, clientID uuid.UUID) (*booking.Confirmation, error)
}

type BookingQueries interface {
	GetDraft(ctx context.Context, clientID uuid.UUID) (*DraftView, error)
	GetConfirmation(ctx context.Context, clientID uuid.UUID) (*ConfirmationView, error)
}

type bookingQueriesImpl struct {
	drafts        DraftReadStore
	confirmations ConfirmationReadStore
	calculator    booking.PriceCalculator
}

func NewBookingQueries(
	drafts DraftReadStore,
	confirmations ConfirmationReadStore,
	calculator booking.PriceCalculator,
) BookingQueries {
	return &bookingQueriesImpl{
		drafts:        drafts,
		confirmations: confirmations,
		calculator:    calculator,
	}
}

// GetDraft returns the pending draft with a freshly computed quote; the
// quote is never persisted with the draft so a rate rule change reprices
// in-flight checkouts.
func (q *bookingQueriesImpl) GetDraft(ctx context.Context, clientID uuid.UUID) (*DraftView, error) {
	draft, err := q.drafts.LoadDraft(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNoDraft
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	quote, err := q.calculator.Quote(draft)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnpriceableItem)
	}

	return NewDraftView(draft, quote)
}

func (q *bookingQueriesImpl) GetConfirmation(ctx context.Context, clientID uuid.UUID) (*ConfirmationView, error) {
	confirmation, err := q.confirmations.LoadConfirmation(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrConfirmationNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return NewConfirmationView(confirmation)
}
