package response

import (
	"encoding/json"
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	BaseRateCents int64 `json:"baseRateCents"`
	Nights        int   `json:"nights,omitempty"`
	Rooms         int   `json:"rooms,omitempty"`
	TotalCents    int64 `json:"totalCents"`
}

type DraftResponse struct {
	TripType  string          `json:"tripType"`
	Item      json.RawMessage `json:"item"`
	ItemID    string          `json:"itemId"`
	ItemLabel string          `json:"itemLabel"`
	CheckIn   *string         `json:"checkIn,omitempty"`
	CheckOut  *string         `json:"checkOut,omitempty"`
	Guests    int             `json:"guests"`
	Rooms     int             `json:"rooms"`
	CreatedAt time.Time       `json:"createdAt"`
	Quote     QuoteResponse   `json:"quote"`
}

type PaymentResponse struct {
	PaymentID   string    `json:"paymentId"`
	OrderID     string    `json:"orderId"`
	Signature   string    `json:"signature"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

type ConfirmationResponse struct {
	BookingNumber string          `json:"bookingNumber"`
	Draft         DraftResponse   `json:"draft"`
	Payment       PaymentResponse `json:"payment"`
	Status        string          `json:"status"`
	BookedAt      time.Time       `json:"bookedAt"`
	Replayed      bool            `json:"replayed,omitempty"`
}

func FromDraftView(view *queries.DraftView) *DraftResponse {
	var resp DraftResponse
	_ = copier.Copy(&resp, view)
	resp.CheckIn = formatDate(view.CheckIn)
	resp.CheckOut = formatDate(view.CheckOut)
	return &resp
}

func FromConfirmationView(view *queries.ConfirmationView, replayed bool) *ConfirmationResponse {
	var resp ConfirmationResponse
	_ = copier.Copy(&resp, view)
	resp.Draft = *FromDraftView(&view.Draft)
	resp.Replayed = replayed
	return &resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
