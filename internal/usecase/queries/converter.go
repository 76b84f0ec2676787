package queries

import (
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/chat"
)

func NewDraftView(d *booking.Draft, q booking.Quote) (*DraftView, error) {
	item, err := booking.EncodeItem(d.Item())
	if err != nil {
		return nil, err
	}

	view := &DraftView{
		TripType:  d.TripType().String(),
		Item:      item,
		ItemID:    d.Item().ItemID(),
		ItemLabel: d.Item().Label(),
		Guests:    d.Guests(),
		Rooms:     d.Rooms(),
		CreatedAt: d.CreatedAt(),
		Quote: QuoteView{
			BaseRateCents: q.BaseRate.Cents(),
			Nights:        q.Nights,
			Rooms:         q.Rooms,
			TotalCents:    q.Total.Cents(),
		},
	}
	if d.TripType() == booking.TripHotel {
		checkIn := d.Stay().CheckIn()
		checkOut := d.Stay().CheckOut()
		view.CheckIn = &checkIn
		view.CheckOut = &checkOut
	}
	return view, nil
}

func NewConfirmationView(c *booking.Confirmation) (*ConfirmationView, error) {
	draft, err := NewDraftView(c.Draft(), c.Quote())
	if err != nil {
		return nil, err
	}

	pay := c.Payment()
	return &ConfirmationView{
		BookingNumber: c.BookingNumber(),
		Draft:         *draft,
		Payment: PaymentView{
			PaymentID:   pay.PaymentID,
			OrderID:     pay.OrderID,
			Signature:   pay.Signature,
			AmountCents: pay.Amount.Cents(),
			Currency:    pay.Currency,
			Method:      pay.Method,
			Status:      pay.Status,
			Timestamp:   pay.Timestamp,
		},
		Status:   c.Status().String(),
		BookedAt: c.BookedAt(),
	}, nil
}

func NewItemView(item booking.Item) (*ItemView, error) {
	raw, err := booking.EncodeItem(item)
	if err != nil {
		return nil, err
	}

	var rateCents int64
	if rate, ok := item.BaseRate(); ok {
		rateCents = rate.Cents()
	}

	return &ItemView{
		TripType:      item.TripType().String(),
		ID:            item.ItemID(),
		Label:         item.Label(),
		BaseRateCents: rateCents,
		Item:          raw,
	}, nil
}

func NewContactLeadView(lead chat.Lead) *ContactLeadView {
	return &ContactLeadView{
		Name:       lead.Name,
		Contact:    lead.Contact,
		Message:    lead.Message,
		CapturedAt: lead.CapturedAt,
	}
}
