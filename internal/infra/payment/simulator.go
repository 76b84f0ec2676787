package payment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math/rand/v2"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"

	"github.com/lithammer/shortuuid/v3"
)

// Simulator approximates a Razorpay-style gateway: order and payment ids,
// a signature over both, a configurable decline rate and settlement latency.
type Simulator struct {
	clock       clock.Clock
	declineRate float64
	latency     time.Duration
	float64     func() float64
}

func NewSimulator(clk clock.Clock, cfg config.PaymentConfig) *Simulator {
	return &Simulator{
		clock:       clk,
		declineRate: cfg.DeclineRate,
		latency:     cfg.Latency,
		float64:     rand.Float64,
	}
}

// NewSeededSimulator pins the decline roll for tests.
func NewSeededSimulator(clk clock.Clock, cfg config.PaymentConfig, seed uint64) *Simulator {
	r := rand.New(rand.NewPCG(seed, seed))
	return &Simulator{
		clock:       clk,
		declineRate: cfg.DeclineRate,
		latency:     cfg.Latency,
		float64:     r.Float64,
	}
}

func (s *Simulator) Charge(ctx context.Context, amount booking.Money, currency, method string) (booking.PaymentResult, error) {
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return booking.PaymentResult{}, ctx.Err()
		}
	}

	if s.float64() < s.declineRate {
		return booking.PaymentResult{}, ErrDeclined
	}

	orderID := "order_" + shortuuid.New()
	paymentID := "pay_" + shortuuid.New()

	return booking.PaymentResult{
		PaymentID: paymentID,
		OrderID:   orderID,
		Signature: sign(orderID, paymentID),
		Amount:    amount,
		Currency:  currency,
		Method:    method,
		Status:    "captured",
		Timestamp: s.clock.Now(),
	}, nil
}

func sign(orderID, paymentID string) string {
	sum := sha256.Sum256([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(sum[:])
}
