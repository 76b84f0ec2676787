package booking

import (
	"errors"
	"math"
	"time"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt64(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Multiply(factor int64) Money {
	return Money{cents: m.cents * factor}
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

// StayPeriod is a hotel stay expressed as calendar dates. checkOut must be
// strictly after checkIn at construction time; Nights still clamps defensively
// because drafts are reconstructed from storage.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return StayPeriod{}, errors.New("check-in and check-out are required")
	}
	if !checkOut.After(checkIn) {
		return StayPeriod{}, errors.New("check-out must be after check-in")
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayPeriod rebuilds a stored stay without re-validating order.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

// Nights is the stay length in nights: the day difference rounded up, never
// below 1. A missing or inverted date range prices as a single night rather
// than poisoning the total.
func (s StayPeriod) Nights() int {
	if s.checkIn.IsZero() || s.checkOut.IsZero() {
		return 1
	}
	days := s.checkOut.Sub(s.checkIn).Hours() / 24
	nights := int(math.Ceil(days))
	if nights < 1 {
		return 1
	}
	return nights
}
