//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
)

type BookingBuilder struct {
	TripType      string
	Item          json.RawMessage
	CheckIn       string
	CheckOut      string
	Guests        int
	Rooms         int
	BaseRateCents int64
	BookingNumber string
	Method        string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		TripType:      "hotel",
		Item:          json.RawMessage(`{"id":"h-1","name":"Seaside Inn","city":"Goa","cheapest_price_cents":5000}`),
		CheckIn:       "2024-01-01",
		CheckOut:      "2024-01-04",
		Guests:        2,
		Rooms:         2,
		BaseRateCents: 5000,
		BookingNumber: "BK1705320000000123",
		Method:        "card",
		CreatedAt:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildSaveDraftRequestDTO() reqdto.SaveDraftRequest {
	checkIn := b.CheckIn
	checkOut := b.CheckOut
	return reqdto.SaveDraftRequest{
		TripType: b.TripType,
		Item:     b.Item,
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
		Guests:   b.Guests,
		Rooms:    b.Rooms,
	}
}

func (b *BookingBuilder) BuildConfirmRequestDTO() reqdto.ConfirmBookingRequest {
	return reqdto.ConfirmBookingRequest{Method: b.Method}
}

func (b *BookingBuilder) BuildDraftView() *queries.DraftView {
	nights := b.nights()
	checkIn, _ := time.Parse(time.DateOnly, b.CheckIn)
	checkOut, _ := time.Parse(time.DateOnly, b.CheckOut)
	view := &queries.DraftView{
		TripType:  b.TripType,
		Item:      b.Item,
		ItemID:    "h-1",
		ItemLabel: "Seaside Inn",
		Guests:    b.Guests,
		Rooms:     b.Rooms,
		CreatedAt: b.CreatedAt,
		Quote: queries.QuoteView{
			BaseRateCents: b.BaseRateCents,
			Nights:        nights,
			Rooms:         b.Rooms,
			TotalCents:    b.BaseRateCents * int64(nights) * int64(b.Rooms),
		},
	}
	if b.TripType == "hotel" {
		view.CheckIn = &checkIn
		view.CheckOut = &checkOut
	}
	return view
}

func (b *BookingBuilder) BuildConfirmationView() *queries.ConfirmationView {
	draft := b.BuildDraftView()
	return &queries.ConfirmationView{
		BookingNumber: b.BookingNumber,
		Draft:         *draft,
		Payment: queries.PaymentView{
			PaymentID:   "pay_test",
			OrderID:     "order_test",
			Signature:   "sig_test",
			AmountCents: draft.Quote.TotalCents,
			Currency:    "INR",
			Method:      b.Method,
			Status:      "captured",
			Timestamp:   b.CreatedAt,
		},
		Status:   "confirmed",
		BookedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildConfirmResult(replayed bool) *commands.ConfirmBookingResult {
	return &commands.ConfirmBookingResult{
		Confirmation: b.BuildConfirmationView(),
		IsReplayed:   replayed,
	}
}

func (b *BookingBuilder) nights() int {
	checkIn, err1 := time.Parse(time.DateOnly, b.CheckIn)
	checkOut, err2 := time.Parse(time.DateOnly, b.CheckOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
