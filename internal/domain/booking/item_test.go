//go:build unit

package booking_test

import (
	"testing"

	"travel-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeItem(t *testing.T) {
	tests := []struct {
		name      string
		tripType  booking.TripType
		payload   string
		wantID    string
		wantLabel string
		wantRate  int64
	}{
		{
			name:      "hotel",
			tripType:  booking.TripHotel,
			payload:   `{"id":"h-1","name":"Seaside Inn","city":"Goa","cheapest_price_cents":5000}`,
			wantID:    "h-1",
			wantLabel: "Seaside Inn",
			wantRate:  5000,
		},
		{
			name:      "flight economy fare",
			tripType:  booking.TripFlight,
			payload:   `{"id":"f-1","airline":"IndiGo","from":"DEL","to":"BOM","pricing":{"economy":{"base_price_cents":4800}}}`,
			wantID:    "f-1",
			wantLabel: "IndiGo DEL-BOM",
			wantRate:  4800,
		},
		{
			name:      "train sleeper fare",
			tripType:  booking.TripTrain,
			payload:   `{"id":"t-1","name":"Rajdhani","from":"NDLS","to":"BCT","pricing":{"sleeper":{"base_price_cents":1500}}}`,
			wantID:    "t-1",
			wantLabel: "Rajdhani NDLS-BCT",
			wantRate:  1500,
		},
		{
			name:      "bus seater fare",
			tripType:  booking.TripBus,
			payload:   `{"id":"b-1","operator":"VRL","from":"BLR","to":"GOA","pricing":{"seater":{"base_price_cents":900}}}`,
			wantID:    "b-1",
			wantLabel: "VRL BLR-GOA",
			wantRate:  900,
		},
		{
			name:      "package falls back to price_cents",
			tripType:  booking.TripPackage,
			payload:   `{"id":"p-1","name":"Kerala Escape","duration_days":5,"price_cents":260000}`,
			wantID:    "p-1",
			wantLabel: "Kerala Escape",
			wantRate:  260000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := booking.DecodeItem(tt.tripType, []byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.tripType, item.TripType())
			assert.Equal(t, tt.wantID, item.ItemID())
			assert.Equal(t, tt.wantLabel, item.Label())
			rate, ok := item.BaseRate()
			require.True(t, ok)
			assert.Equal(t, tt.wantRate, rate.Cents())
		})
	}
}

func TestDecodeItem_Errors(t *testing.T) {
	t.Run("unknown trip type", func(t *testing.T) {
		_, err := booking.DecodeItem("cruise", []byte(`{"id":"c-1"}`))
		assert.ErrorIs(t, err, booking.ErrUnknownTripType)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := booking.DecodeItem(booking.TripHotel, nil)
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := booking.DecodeItem(booking.TripHotel, []byte(`{`))
		assert.Error(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := booking.DecodeItem(booking.TripHotel, []byte(`{"name":"No ID Hotel"}`))
		assert.Error(t, err)
	})
}

func TestItem_BaseRateAbsent(t *testing.T) {
	item, err := booking.DecodeItem(booking.TripFlight, []byte(`{"id":"f-2","airline":"Air X","from":"A","to":"B"}`))
	require.NoError(t, err)

	_, ok := item.BaseRate()
	assert.False(t, ok)
}

func TestEncodeItem_RoundTrip(t *testing.T) {
	original, err := booking.DecodeItem(booking.TripHotel, []byte(`{"id":"h-1","name":"Seaside Inn","city":"Goa","cheapest_price_cents":5000}`))
	require.NoError(t, err)

	data, err := booking.EncodeItem(original)
	require.NoError(t, err)

	decoded, err := booking.DecodeItem(booking.TripHotel, data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
