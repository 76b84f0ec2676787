package payment

import (
	"context"
	"errors"

	"travel-booking/internal/domain/booking"
)

var ErrDeclined = errors.New("payment declined")

// Gateway charges a priced draft. The real processor lives outside this
// service; the simulator below stands in for it.
type Gateway interface {
	Charge(ctx context.Context, amount booking.Money, currency, method string) (booking.PaymentResult, error)
}
