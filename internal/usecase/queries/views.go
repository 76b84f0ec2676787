package queries

import (
	"encoding/json"
	"time"
)

// Read models (DTO for read side)
type QuoteView struct {
	BaseRateCents int64 `json:"base_rate_cents"`
	Nights        int   `json:"nights,omitempty"`
	Rooms         int   `json:"rooms,omitempty"`
	TotalCents    int64 `json:"total_cents"`
}

type DraftView struct {
	TripType  string          `json:"trip_type"`
	Item      json.RawMessage `json:"item"`
	ItemID    string          `json:"item_id"`
	ItemLabel string          `json:"item_label"`
	CheckIn   *time.Time      `json:"check_in,omitempty"`
	CheckOut  *time.Time      `json:"check_out,omitempty"`
	Guests    int             `json:"guests"`
	Rooms     int             `json:"rooms"`
	CreatedAt time.Time       `json:"created_at"`
	Quote     QuoteView       `json:"quote"`
}

type PaymentView struct {
	PaymentID   string    `json:"payment_id"`
	OrderID     string    `json:"order_id"`
	Signature   string    `json:"signature"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

type ConfirmationView struct {
	BookingNumber string      `json:"booking_number"`
	Draft         DraftView   `json:"draft"`
	Payment       PaymentView `json:"payment"`
	Status        string      `json:"status"`
	BookedAt      time.Time   `json:"booked_at"`
}

type ItemView struct {
	TripType      string          `json:"trip_type"`
	ID            string          `json:"id"`
	Label         string          `json:"label"`
	BaseRateCents int64           `json:"base_rate_cents"`
	Item          json.RawMessage `json:"item"`
}

type ContactLeadView struct {
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	Message    string    `json:"message"`
	CapturedAt time.Time `json:"captured_at"`
}
