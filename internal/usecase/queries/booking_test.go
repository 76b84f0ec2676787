//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueriesFixture(t *testing.T) (queries.BookingQueries, *store.BookingStore, uuid.UUID) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bookingStore := store.NewBookingStore(store.NewMemoryKV(), logger, config.NewTestConfig().Booking)
	q := queries.NewBookingQueries(bookingStore, bookingStore, booking.NewStandardPriceCalculator())
	return q, bookingStore, uuid.New()
}

func storedHotelDraft(t *testing.T) *booking.Draft {
	t.Helper()
	item, err := booking.DecodeItem(booking.TripHotel, []byte(`{"id":"h-1","name":"Seaside Inn","city":"Goa","cheapest_price_cents":5000}`))
	require.NoError(t, err)
	stay := booking.ReconstructStayPeriod(
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC),
	)
	return booking.ReconstructDraft(item, stay, 2, 2, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
}

func TestBookingQueries_GetDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the draft with a fresh quote", func(t *testing.T) {
		q, bookingStore, clientID := newQueriesFixture(t)
		require.NoError(t, bookingStore.SaveDraft(ctx, clientID, storedHotelDraft(t)))

		view, err := q.GetDraft(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, "hotel", view.TripType)
		assert.Equal(t, "Seaside Inn", view.ItemLabel)
		assert.Equal(t, 3, view.Quote.Nights)
		assert.Equal(t, int64(30000), view.Quote.TotalCents)
		require.NotNil(t, view.CheckIn)
		require.NotNil(t, view.CheckOut)
	})

	t.Run("missing draft maps to no-draft", func(t *testing.T) {
		q, _, clientID := newQueriesFixture(t)

		_, err := q.GetDraft(ctx, clientID)
		assert.ErrorIs(t, err, errs.ErrNoDraft)
	})
}

func TestBookingQueries_GetConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing confirmation maps to not-found", func(t *testing.T) {
		q, _, clientID := newQueriesFixture(t)

		_, err := q.GetConfirmation(ctx, clientID)
		assert.ErrorIs(t, err, errs.ErrConfirmationNotFound)
	})

	t.Run("returns the stored confirmation", func(t *testing.T) {
		q, bookingStore, clientID := newQueriesFixture(t)

		draft := storedHotelDraft(t)
		quote := booking.Quote{BaseRate: booking.NewMoney(5000), Nights: 3, Rooms: 2, Total: booking.NewMoney(30000)}
		payment := booking.PaymentResult{
			PaymentID: "pay_1",
			OrderID:   "order_1",
			Amount:    booking.NewMoney(30000),
			Currency:  "INR",
			Method:    "card",
			Status:    "captured",
			Timestamp: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		}
		conf, err := booking.NewConfirmation("BK1705320000000123", draft, quote, payment, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NoError(t, bookingStore.SaveConfirmation(ctx, clientID, conf))

		view, err := q.GetConfirmation(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, "BK1705320000000123", view.BookingNumber)
		assert.Equal(t, "confirmed", view.Status)
		assert.Equal(t, int64(30000), view.Draft.Quote.TotalCents)
		assert.Equal(t, "pay_1", view.Payment.PaymentID)
	})
}
