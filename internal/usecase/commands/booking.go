package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/payment"
	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SaveDraftParams struct {
	TripType booking.TripType
	Item     json.RawMessage
	CheckIn  *time.Time
	CheckOut *time.Time
	Guests   int
	Rooms    int
}

type ConfirmBookingResult struct {
	Confirmation *queries.ConfirmationView
	IsReplayed   bool
}

type DraftStore interface {
	SaveDraft(ctx context.Context, clientID uuid.UUID, d *booking.Draft) error
	LoadDraft(ctx context.Context, clientID uuid.UUID) (*booking.Draft, error)
	ClearDraft(ctx context.Context, clientID uuid.UUID) error
}

type ConfirmationStore interface {
	SaveConfirmation(ctx context.Context, clientID uuid.UUID, c *booking.Confirmation) error
	LoadConfirmation(ctx context.Context, clientID uuid.UUID) (*booking.Confirmation, error)
}

type IdempotencyStore interface {
	TryClaim(ctx context.Context, clientID, key uuid.UUID, requestHash string, now time.Time) (bool, error)
	Get(ctx context.Context, clientID, key uuid.UUID) (*store.IdempotencyRecord, error)
	Complete(ctx context.Context, clientID, key uuid.UUID, requestHash, bookingNumber string, now time.Time) error
	Release(ctx context.Context, clientID, key uuid.UUID) error
}

type PaymentGateway interface {
	Charge(ctx context.Context, amount booking.Money, currency, method string) (booking.PaymentResult, error)
}

type EventPublisher interface {
	PublishBookingConfirmed(clientID uuid.UUID, c *booking.Confirmation, currency string) error
}

type BookingCommands interface {
	SaveDraft(ctx context.Context, clientID uuid.UUID, params SaveDraftParams) (*queries.DraftView, error)
	ConfirmBooking(ctx context.Context, clientID, idempotencyKey uuid.UUID, method string) (*ConfirmBookingResult, error)
	CancelDraft(ctx context.Context, clientID uuid.UUID) error
}

type bookingCommandsImpl struct {
	drafts        DraftStore
	confirmations ConfirmationStore
	idempotency   IdempotencyStore
	gateway       PaymentGateway
	publisher     EventPublisher
	calculator    booking.PriceCalculator
	numbers       booking.NumberGenerator
	clock         clock.Clock
	currency      string
	logger        *slog.Logger
}

func NewBookingCommands(
	drafts DraftStore,
	confirmations ConfirmationStore,
	idempotency IdempotencyStore,
	gateway PaymentGateway,
	publisher EventPublisher,
	calculator booking.PriceCalculator,
	numbers booking.NumberGenerator,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		drafts:        drafts,
		confirmations: confirmations,
		idempotency:   idempotency,
		gateway:       gateway,
		publisher:     publisher,
		calculator:    calculator,
		numbers:       numbers,
		clock:         clk,
		currency:      cfg.Payment.Currency,
		logger:        logger,
	}
}

// SaveDraft validates the selection, prices it once to reject unpriceable
// items before checkout starts, and overwrites the client's draft slot.
func (b *bookingCommandsImpl) SaveDraft(ctx context.Context, clientID uuid.UUID, params SaveDraftParams) (*queries.DraftView, error) {
	item, err := booking.DecodeItem(params.TripType, params.Item)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDraft)
	}

	var stay *booking.StayPeriod
	if params.TripType == booking.TripHotel {
		if params.CheckIn == nil || params.CheckOut == nil {
			return nil, errs.Mark(booking.ErrStayRequired, errs.ErrInvalidDraft)
		}
		s, err := booking.NewStayPeriod(*params.CheckIn, *params.CheckOut)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidDraft)
		}
		stay = &s
	}

	draft, err := booking.NewDraft(item, stay, params.Guests, params.Rooms, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDraft)
	}

	quote, err := b.calculator.Quote(draft)
	if err != nil {
		if errors.Is(err, booking.ErrUnpriceable) {
			return nil, errs.Mark(err, errs.ErrUnpriceableItem)
		}
		return nil, err
	}

	if err := b.drafts.SaveDraft(ctx, clientID, draft); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return queries.NewDraftView(draft, quote)
}

// ConfirmBooking is the payment step. The idempotency key is claimed before
// any charge is attempted so a duplicate submission of the same request is
// request-scoped safe: a replay returns the original confirmation, a
// concurrent attempt is rejected, and only a declined or failed attempt
// releases the key for retry.
func (b *bookingCommandsImpl) ConfirmBooking(ctx context.Context, clientID, idempotencyKey uuid.UUID, method string) (*ConfirmBookingResult, error) {
	requestHash := confirmRequestHash(clientID, method)
	now := b.clock.Now()

	claimed, err := b.idempotency.TryClaim(ctx, clientID, idempotencyKey, requestHash, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if !claimed {
		return b.handleReplay(ctx, clientID, idempotencyKey, requestHash)
	}

	view, err := b.confirmClaimed(ctx, clientID, idempotencyKey, requestHash, method)
	if err != nil {
		// The claim must not outlive a failed attempt, otherwise the client
		// cannot retry with the same key.
		if releaseErr := b.idempotency.Release(ctx, clientID, idempotencyKey); releaseErr != nil {
			b.logger.Warn("failed to release idempotency key", "client_id", clientID, "error", releaseErr)
		}
		return nil, err
	}

	return &ConfirmBookingResult{Confirmation: view, IsReplayed: false}, nil
}

func (b *bookingCommandsImpl) CancelDraft(ctx context.Context, clientID uuid.UUID) error {
	if err := b.drafts.ClearDraft(ctx, clientID); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

func (b *bookingCommandsImpl) confirmClaimed(ctx context.Context, clientID, idempotencyKey uuid.UUID, requestHash, method string) (*queries.ConfirmationView, error) {
	draft, err := b.drafts.LoadDraft(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNoDraft
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	quote, err := b.calculator.Quote(draft)
	if err != nil {
		if errors.Is(err, booking.ErrUnpriceable) {
			return nil, errs.Mark(err, errs.ErrUnpriceableItem)
		}
		return nil, err
	}

	payResult, err := b.gateway.Charge(ctx, quote.Total, b.currency, method)
	if err != nil {
		if errors.Is(err, payment.ErrDeclined) {
			// Draft stays in place so the client can pick another method.
			return nil, errs.Mark(err, errs.ErrPaymentDeclined)
		}
		return nil, err
	}

	now := b.clock.Now()
	bookingNumber := b.numbers.Next(now)

	confirmation, err := booking.NewConfirmation(bookingNumber, draft, quote, payResult, now)
	if err != nil {
		return nil, err
	}

	if err := b.confirmations.SaveConfirmation(ctx, clientID, confirmation); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	// Consume the draft only after the confirmation is durable. A failed
	// clear is logged, not fatal: the draft TTL bounds the stale window and
	// the idempotency record prevents a double charge.
	if err := b.drafts.ClearDraft(ctx, clientID); err != nil {
		b.logger.Warn("failed to clear consumed draft", "client_id", clientID, "error", err)
	}

	if err := b.idempotency.Complete(ctx, clientID, idempotencyKey, requestHash, bookingNumber, now); err != nil {
		b.logger.Warn("failed to complete idempotency record", "client_id", clientID, "error", err)
	}

	if err := b.publisher.PublishBookingConfirmed(clientID, confirmation, b.currency); err != nil {
		b.logger.Warn("failed to publish booking confirmed event", "booking_number", bookingNumber, "error", err)
	}

	return queries.NewConfirmationView(confirmation)
}

func (b *bookingCommandsImpl) handleReplay(ctx context.Context, clientID, idempotencyKey uuid.UUID, requestHash string) (*ConfirmBookingResult, error) {
	existing, err := b.idempotency.Get(ctx, clientID, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrDuplicateConfirmation
	}

	switch existing.Status {
	case store.IdempotencyCompleted:
		confirmation, err := b.confirmations.LoadConfirmation(ctx, clientID)
		if err != nil || confirmation.BookingNumber() != existing.BookingNumber {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		view, err := queries.NewConfirmationView(confirmation)
		if err != nil {
			return nil, err
		}
		return &ConfirmBookingResult{Confirmation: view, IsReplayed: true}, nil

	case store.IdempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.Mark(errs.New("invalid idempotency record status"), errs.ErrIdempotencyCheckFailed)
	}
}

func confirmRequestHash(clientID uuid.UUID, method string) string {
	sum := sha256.Sum256([]byte(clientID.String() + "|" + method))
	return hex.EncodeToString(sum[:])
}
