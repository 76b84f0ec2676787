package request

import (
	"encoding/json"
	"errors"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/usecase/commands"
)

// SaveDraftRequest carries the selection-stage payload. Dates are calendar
// dates (2006-01-02), not timestamps.
type SaveDraftRequest struct {
	TripType string          `json:"trip_type" binding:"required"`
	Item     json.RawMessage `json:"item" binding:"required"`
	CheckIn  *string         `json:"check_in,omitempty"`
	CheckOut *string         `json:"check_out,omitempty"`
	Guests   int             `json:"guests" binding:"omitempty,min=1,max=20"`
	Rooms    int             `json:"rooms" binding:"omitempty,min=1,max=10"`
}

func (r SaveDraftRequest) ToParams() (commands.SaveDraftParams, error) {
	tripType := booking.TripType(r.TripType)
	if !tripType.IsValid() {
		return commands.SaveDraftParams{}, errors.New("unknown trip type")
	}

	params := commands.SaveDraftParams{
		TripType: tripType,
		Item:     r.Item,
		Guests:   r.Guests,
		Rooms:    r.Rooms,
	}

	checkIn, err := parseDate(r.CheckIn)
	if err != nil {
		return commands.SaveDraftParams{}, errors.New("invalid check_in date")
	}
	checkOut, err := parseDate(r.CheckOut)
	if err != nil {
		return commands.SaveDraftParams{}, errors.New("invalid check_out date")
	}
	params.CheckIn = checkIn
	params.CheckOut = checkOut

	return params, nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type ConfirmBookingRequest struct {
	Method string `json:"method" binding:"required,oneof=card upi netbanking"`
}
