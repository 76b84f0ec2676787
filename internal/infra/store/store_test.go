//go:build unit

package store_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/chat"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/store"
	"travel-booking/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bookingCfg() config.BookingConfig {
	return config.BookingConfig{
		DraftTTL:       30 * time.Minute,
		IdempotencyTTL: 24 * time.Hour,
	}
}

func testDraft(t *testing.T) *booking.Draft {
	t.Helper()
	item, err := booking.DecodeItem(booking.TripHotel, []byte(`{"id":"h-1","name":"Seaside Inn","city":"Goa","cheapest_price_cents":5000}`))
	require.NoError(t, err)
	stay := booking.ReconstructStayPeriod(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	)
	return booking.ReconstructDraft(item, stay, 2, 2, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
}

func testConfirmation(t *testing.T) *booking.Confirmation {
	t.Helper()
	draft := testDraft(t)
	quote := booking.Quote{
		BaseRate: booking.NewMoney(5000),
		Nights:   3,
		Rooms:    2,
		Total:    booking.NewMoney(30000),
	}
	payment := booking.PaymentResult{
		PaymentID: "pay_abc",
		OrderID:   "order_abc",
		Signature: "sig",
		Amount:    booking.NewMoney(30000),
		Currency:  "INR",
		Method:    "card",
		Status:    "captured",
		Timestamp: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
	conf, err := booking.NewConfirmation("BK1705320000000123", draft, quote, payment, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return conf
}

func TestBookingStore_DraftLifecycle(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := store.NewBookingStore(kv, discardLogger(), bookingCfg())
	clientID := uuid.New()

	t.Run("save then load returns an equal draft", func(t *testing.T) {
		original := testDraft(t)
		require.NoError(t, s.SaveDraft(ctx, clientID, original))

		loaded, err := s.LoadDraft(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, original.Item(), loaded.Item())
		assert.True(t, original.Stay().CheckIn().Equal(loaded.Stay().CheckIn()))
		assert.True(t, original.Stay().CheckOut().Equal(loaded.Stay().CheckOut()))
		assert.Equal(t, original.Guests(), loaded.Guests())
		assert.Equal(t, original.Rooms(), loaded.Rooms())
	})

	t.Run("save overwrites the previous draft", func(t *testing.T) {
		require.NoError(t, s.SaveDraft(ctx, clientID, testDraft(t)))

		item, err := booking.DecodeItem(booking.TripFlight, []byte(`{"id":"f-1","airline":"IndiGo","from":"DEL","to":"BOM","pricing":{"economy":{"base_price_cents":4800}}}`))
		require.NoError(t, err)
		replacement := booking.ReconstructDraft(item, booking.StayPeriod{}, 1, 1, time.Now())
		require.NoError(t, s.SaveDraft(ctx, clientID, replacement))

		loaded, err := s.LoadDraft(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, booking.TripFlight, loaded.TripType())
	})

	t.Run("clear removes the draft", func(t *testing.T) {
		require.NoError(t, s.SaveDraft(ctx, clientID, testDraft(t)))
		require.NoError(t, s.ClearDraft(ctx, clientID))

		_, err := s.LoadDraft(ctx, clientID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("clearing an empty slot is a no-op", func(t *testing.T) {
		assert.NoError(t, s.ClearDraft(ctx, uuid.New()))
	})

	t.Run("drafts are isolated per client", func(t *testing.T) {
		require.NoError(t, s.SaveDraft(ctx, clientID, testDraft(t)))

		_, err := s.LoadDraft(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingStore_DraftExpiry(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	kv.SetClock(func() time.Time { return now })

	s := store.NewBookingStore(kv, discardLogger(), bookingCfg())
	clientID := uuid.New()
	require.NoError(t, s.SaveDraft(ctx, clientID, testDraft(t)))

	now = now.Add(29 * time.Minute)
	_, err := s.LoadDraft(ctx, clientID)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = s.LoadDraft(ctx, clientID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingStore_SchemaVersionMismatch(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := store.NewBookingStore(kv, discardLogger(), bookingCfg())
	clientID := uuid.New()

	// A value sealed under a future schema must read as absent, not error.
	stale := []byte(`{"schema_version":2,"payload":{"trip_type":"hotel"}}`)
	require.NoError(t, kv.Set(ctx, "booking:v1:draft:"+clientID.String(), stale, 0))

	_, err := s.LoadDraft(ctx, clientID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingStore_CorruptDraftReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := store.NewBookingStore(kv, discardLogger(), bookingCfg())
	clientID := uuid.New()

	require.NoError(t, kv.Set(ctx, "booking:v1:draft:"+clientID.String(), []byte(`not json`), 0))

	_, err := s.LoadDraft(ctx, clientID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingStore_ConfirmationLifecycle(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := store.NewBookingStore(kv, discardLogger(), bookingCfg())
	clientID := uuid.New()

	t.Run("absent confirmation reads as not found", func(t *testing.T) {
		_, err := s.LoadConfirmation(ctx, clientID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		original := testConfirmation(t)
		require.NoError(t, s.SaveConfirmation(ctx, clientID, original))

		loaded, err := s.LoadConfirmation(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, original.BookingNumber(), loaded.BookingNumber())
		assert.Equal(t, original.Quote(), loaded.Quote())
		assert.Equal(t, original.Payment().PaymentID, loaded.Payment().PaymentID)
		assert.Equal(t, original.Status(), loaded.Status())
		assert.Equal(t, original.Draft().Item(), loaded.Draft().Item())
	})
}

func TestBookingStore_ChatSession(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := store.NewBookingStore(kv, discardLogger(), bookingCfg())
	clientID := uuid.New()

	t.Run("missing session starts in free mode", func(t *testing.T) {
		session, err := s.LoadChatSession(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, chat.ModeFree, session.Mode)
	})

	t.Run("session state round-trips", func(t *testing.T) {
		saved := chat.Session{Mode: chat.ModeCollectContact, Name: "Priya"}
		require.NoError(t, s.SaveChatSession(ctx, clientID, saved))

		loaded, err := s.LoadChatSession(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("corrupt session starts over", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "booking:v1:chat:"+clientID.String(), []byte(`{{`), 0))

		session, err := s.LoadChatSession(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, chat.NewSession(), session)
	})
}

func TestBookingStore_Leads(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := store.NewBookingStore(kv, discardLogger(), bookingCfg())

	first := chat.Lead{Name: "Priya", Contact: "priya@example.com", Message: "Group rates?", CapturedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
	second := chat.Lead{Name: "Arjun", Contact: "+91 98765", Message: "Visa help", CapturedAt: time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC)}

	require.NoError(t, s.AppendLead(ctx, first))
	require.NoError(t, s.AppendLead(ctx, second))

	// An undecodable entry is skipped, not fatal.
	require.NoError(t, kv.RPush(ctx, "booking:v1:leads", []byte(`broken`)))

	leads, err := s.ListLeads(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff([]chat.Lead{first, second}, leads); diff != "" {
		t.Errorf("leads mismatch (-want +got):\n%s", diff)
	}
}
