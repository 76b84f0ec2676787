package store

import (
	"encoding/json"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/chat"
	"travel-booking/internal/pkg/errs"
)

// Stored values are wrapped in a versioned envelope so a schema change never
// resurrects a stale draft under the new shape; a version mismatch reads as
// no value.
const schemaVersion = 1

type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Payload       json.RawMessage `json:"payload"`
}

type draftRecord struct {
	TripType  booking.TripType `json:"trip_type"`
	Item      json.RawMessage  `json:"item"`
	CheckIn   *time.Time       `json:"check_in,omitempty"`
	CheckOut  *time.Time       `json:"check_out,omitempty"`
	Guests    int              `json:"guests"`
	Rooms     int              `json:"rooms"`
	CreatedAt time.Time        `json:"created_at"`
}

type quoteRecord struct {
	BaseRateCents int64 `json:"base_rate_cents"`
	Nights        int   `json:"nights"`
	Rooms         int   `json:"rooms"`
	TotalCents    int64 `json:"total_cents"`
}

type paymentRecord struct {
	PaymentID   string    `json:"payment_id"`
	OrderID     string    `json:"order_id"`
	Signature   string    `json:"signature"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

type confirmationRecord struct {
	BookingNumber string        `json:"booking_number"`
	Draft         draftRecord   `json:"draft"`
	Quote         quoteRecord   `json:"quote"`
	Payment       paymentRecord `json:"payment"`
	Status        string        `json:"status"`
	BookedAt      time.Time     `json:"booked_at"`
}

func seal(payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "marshal payload")
	}
	return json.Marshal(envelope{SchemaVersion: schemaVersion, Payload: raw})
}

func unseal(data []byte, payload any) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return errs.Wrap(err, "unmarshal envelope")
	}
	if env.SchemaVersion != schemaVersion {
		return errs.New("schema version mismatch")
	}
	if err := json.Unmarshal(env.Payload, payload); err != nil {
		return errs.Wrap(err, "unmarshal payload")
	}
	return nil
}

func toDraftRecord(d *booking.Draft) (draftRecord, error) {
	item, err := booking.EncodeItem(d.Item())
	if err != nil {
		return draftRecord{}, err
	}

	rec := draftRecord{
		TripType:  d.TripType(),
		Item:      item,
		Guests:    d.Guests(),
		Rooms:     d.Rooms(),
		CreatedAt: d.CreatedAt(),
	}
	if d.TripType() == booking.TripHotel {
		checkIn := d.Stay().CheckIn()
		checkOut := d.Stay().CheckOut()
		rec.CheckIn = &checkIn
		rec.CheckOut = &checkOut
	}
	return rec, nil
}

func fromDraftRecord(rec draftRecord) (*booking.Draft, error) {
	item, err := booking.DecodeItem(rec.TripType, rec.Item)
	if err != nil {
		return nil, err
	}

	var stay booking.StayPeriod
	if rec.CheckIn != nil && rec.CheckOut != nil {
		stay = booking.ReconstructStayPeriod(*rec.CheckIn, *rec.CheckOut)
	}

	return booking.ReconstructDraft(item, stay, rec.Guests, rec.Rooms, rec.CreatedAt), nil
}

func toQuoteRecord(q booking.Quote) quoteRecord {
	return quoteRecord{
		BaseRateCents: q.BaseRate.Cents(),
		Nights:        q.Nights,
		Rooms:         q.Rooms,
		TotalCents:    q.Total.Cents(),
	}
}

func fromQuoteRecord(rec quoteRecord) booking.Quote {
	return booking.Quote{
		BaseRate: booking.NewMoney(rec.BaseRateCents),
		Nights:   rec.Nights,
		Rooms:    rec.Rooms,
		Total:    booking.NewMoney(rec.TotalCents),
	}
}

func toPaymentRecord(p booking.PaymentResult) paymentRecord {
	return paymentRecord{
		PaymentID:   p.PaymentID,
		OrderID:     p.OrderID,
		Signature:   p.Signature,
		AmountCents: p.Amount.Cents(),
		Currency:    p.Currency,
		Method:      p.Method,
		Status:      p.Status,
		Timestamp:   p.Timestamp,
	}
}

func fromPaymentRecord(rec paymentRecord) booking.PaymentResult {
	return booking.PaymentResult{
		PaymentID: rec.PaymentID,
		OrderID:   rec.OrderID,
		Signature: rec.Signature,
		Amount:    booking.NewMoney(rec.AmountCents),
		Currency:  rec.Currency,
		Method:    rec.Method,
		Status:    rec.Status,
		Timestamp: rec.Timestamp,
	}
}

func toConfirmationRecord(c *booking.Confirmation) (confirmationRecord, error) {
	draft, err := toDraftRecord(c.Draft())
	if err != nil {
		return confirmationRecord{}, err
	}
	return confirmationRecord{
		BookingNumber: c.BookingNumber(),
		Draft:         draft,
		Quote:         toQuoteRecord(c.Quote()),
		Payment:       toPaymentRecord(c.Payment()),
		Status:        c.Status().String(),
		BookedAt:      c.BookedAt(),
	}, nil
}

func fromConfirmationRecord(rec confirmationRecord) (*booking.Confirmation, error) {
	draft, err := fromDraftRecord(rec.Draft)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructConfirmation(
		rec.BookingNumber,
		draft,
		fromQuoteRecord(rec.Quote),
		fromPaymentRecord(rec.Payment),
		booking.Status(rec.Status),
		rec.BookedAt,
	), nil
}

func toLeadRecord(l chat.Lead) ([]byte, error) {
	return json.Marshal(l)
}

func fromLeadRecord(data []byte) (chat.Lead, error) {
	var l chat.Lead
	err := json.Unmarshal(data, &l)
	return l, err
}
