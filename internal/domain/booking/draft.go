package booking

import (
	"errors"
	"time"
)

var (
	ErrItemRequired = errors.New("item is required")
	ErrStayRequired = errors.New("stay period is required for hotel drafts")
	ErrInvalidCount = errors.New("guests and rooms must be positive")
)

// Draft is the in-progress, unconfirmed selection held in the single-slot
// store between checkout steps. Saving a new draft overwrites any prior
// unconsumed one.
type Draft struct {
	item      Item
	stay      StayPeriod
	guests    int
	rooms     int
	createdAt time.Time
}

func NewDraft(item Item, stay *StayPeriod, guests, rooms int, now time.Time) (*Draft, error) {
	if item == nil {
		return nil, ErrItemRequired
	}

	if guests == 0 {
		guests = 1
	}
	if rooms == 0 {
		rooms = 1
	}
	if guests < 0 || rooms < 0 {
		return nil, ErrInvalidCount
	}

	d := &Draft{
		item:      item,
		guests:    guests,
		rooms:     rooms,
		createdAt: now,
	}

	if item.TripType() == TripHotel {
		if stay == nil {
			return nil, ErrStayRequired
		}
		d.stay = *stay
	}

	return d, nil
}

// ReconstructDraft rebuilds a stored draft without re-running construction
// validation.
func ReconstructDraft(item Item, stay StayPeriod, guests, rooms int, createdAt time.Time) *Draft {
	return &Draft{
		item:      item,
		stay:      stay,
		guests:    guests,
		rooms:     rooms,
		createdAt: createdAt,
	}
}

func (d *Draft) TripType() TripType   { return d.item.TripType() }
func (d *Draft) Item() Item           { return d.item }
func (d *Draft) Stay() StayPeriod     { return d.stay }
func (d *Draft) Guests() int          { return d.guests }
func (d *Draft) Rooms() int           { return d.rooms }
func (d *Draft) CreatedAt() time.Time { return d.createdAt }
