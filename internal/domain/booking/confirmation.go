package booking

import (
	"errors"
	"time"
)

var (
	ErrEmptyBookingNumber = errors.New("booking number is required")
	ErrPaymentNotSettled  = errors.New("payment is not settled")
)

type PaymentResult struct {
	PaymentID string
	OrderID   string
	Signature string
	Amount    Money
	Currency  string
	Method    string
	Status    string
	Timestamp time.Time
}

func (p PaymentResult) IsSettled() bool {
	return p.Status == "captured" || p.Status == "success"
}

// Confirmation is the finalized booking record written once after a
// successful charge. It carries the originating draft in full so the
// confirmation view renders without a backend round trip.
type Confirmation struct {
	bookingNumber string
	draft         Draft
	quote         Quote
	payment       PaymentResult
	status        Status
	bookedAt      time.Time
}

func NewConfirmation(bookingNumber string, draft *Draft, quote Quote, payment PaymentResult, now time.Time) (*Confirmation, error) {
	if bookingNumber == "" {
		return nil, ErrEmptyBookingNumber
	}
	if !payment.IsSettled() {
		return nil, ErrPaymentNotSettled
	}

	return &Confirmation{
		bookingNumber: bookingNumber,
		draft:         *draft,
		quote:         quote,
		payment:       payment,
		status:        StatusConfirmed,
		bookedAt:      now,
	}, nil
}

func ReconstructConfirmation(bookingNumber string, draft *Draft, quote Quote, payment PaymentResult, status Status, bookedAt time.Time) *Confirmation {
	return &Confirmation{
		bookingNumber: bookingNumber,
		draft:         *draft,
		quote:         quote,
		payment:       payment,
		status:        status,
		bookedAt:      bookedAt,
	}
}

func (c *Confirmation) BookingNumber() string  { return c.bookingNumber }
func (c *Confirmation) Draft() *Draft          { return &c.draft }
func (c *Confirmation) Quote() Quote           { return c.quote }
func (c *Confirmation) Payment() PaymentResult { return c.payment }
func (c *Confirmation) Status() Status         { return c.status }
func (c *Confirmation) BookedAt() time.Time    { return c.bookedAt }
