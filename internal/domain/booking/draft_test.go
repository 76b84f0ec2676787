//go:build unit

package booking_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("hotel draft requires a stay period", func(t *testing.T) {
		_, err := booking.NewDraft(hotelItem(t, 5000), nil, 2, 1, now)
		assert.ErrorIs(t, err, booking.ErrStayRequired)
	})

	t.Run("hotel draft keeps the stay", func(t *testing.T) {
		stay, err := booking.NewStayPeriod(date(t, "2024-02-01"), date(t, "2024-02-03"))
		require.NoError(t, err)

		draft, err := booking.NewDraft(hotelItem(t, 5000), &stay, 2, 1, now)
		require.NoError(t, err)
		assert.Equal(t, 2, draft.Stay().Nights())
		assert.Equal(t, now, draft.CreatedAt())
	})

	t.Run("flight draft needs no stay", func(t *testing.T) {
		draft, err := booking.NewDraft(flightItem(t, 4800), nil, 3, 1, now)
		require.NoError(t, err)
		assert.Equal(t, booking.TripFlight, draft.TripType())
		assert.Equal(t, 3, draft.Guests())
	})

	t.Run("zero counts default to one", func(t *testing.T) {
		draft, err := booking.NewDraft(flightItem(t, 4800), nil, 0, 0, now)
		require.NoError(t, err)
		assert.Equal(t, 1, draft.Guests())
		assert.Equal(t, 1, draft.Rooms())
	})

	t.Run("negative counts are rejected", func(t *testing.T) {
		_, err := booking.NewDraft(flightItem(t, 4800), nil, -1, 1, now)
		assert.ErrorIs(t, err, booking.ErrInvalidCount)
	})

	t.Run("nil item is rejected", func(t *testing.T) {
		_, err := booking.NewDraft(nil, nil, 1, 1, now)
		assert.ErrorIs(t, err, booking.ErrItemRequired)
	})
}

func TestNewConfirmation(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	draft := hotelDraft(t, 5000, "2024-01-01", "2024-01-04", 2, 2)
	quote := booking.Quote{
		BaseRate: booking.NewMoney(5000),
		Nights:   3,
		Rooms:    2,
		Total:    booking.NewMoney(30000),
	}
	settled := booking.PaymentResult{
		PaymentID: "pay_1",
		OrderID:   "order_1",
		Amount:    booking.NewMoney(30000),
		Currency:  "INR",
		Method:    "card",
		Status:    "captured",
		Timestamp: now,
	}

	t.Run("settled payment confirms", func(t *testing.T) {
		conf, err := booking.NewConfirmation("BK17052xxx001", draft, quote, settled, now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, conf.Status())
		assert.Equal(t, int64(30000), conf.Quote().Total.Cents())
		assert.Equal(t, "h-1", conf.Draft().Item().ItemID())
	})

	t.Run("empty booking number is rejected", func(t *testing.T) {
		_, err := booking.NewConfirmation("", draft, quote, settled, now)
		assert.ErrorIs(t, err, booking.ErrEmptyBookingNumber)
	})

	t.Run("unsettled payment is rejected", func(t *testing.T) {
		failed := settled
		failed.Status = "failed"
		_, err := booking.NewConfirmation("BK1", draft, quote, failed, now)
		assert.ErrorIs(t, err, booking.ErrPaymentNotSettled)
	})
}
