package booking

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownTripType = errors.New("unknown trip type")

// Item is the catalog entity a draft is built around. Each variant carries
// its own rate field; BaseRate reports ok=false when the variant has no
// usable rate so callers surface an unpriceable error instead of charging
// zero.
type Item interface {
	TripType() TripType
	ItemID() string
	Label() string
	BaseRate() (Money, bool)
}

type Hotel struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	CheapestPriceCents int64  `json:"cheapest_price_cents"`
}

func (h Hotel) TripType() TripType { return TripHotel }
func (h Hotel) ItemID() string     { return h.ID }
func (h Hotel) Label() string      { return h.Name }

func (h Hotel) BaseRate() (Money, bool) {
	if h.CheapestPriceCents <= 0 {
		return Money{}, false
	}
	return NewMoney(h.CheapestPriceCents), true
}

type Fare struct {
	BasePriceCents int64 `json:"base_price_cents"`
}

type Flight struct {
	ID      string `json:"id"`
	Airline string `json:"airline"`
	From    string `json:"from"`
	To      string `json:"to"`
	Pricing struct {
		Economy Fare `json:"economy"`
	} `json:"pricing"`
}

func (f Flight) TripType() TripType { return TripFlight }
func (f Flight) ItemID() string     { return f.ID }

func (f Flight) Label() string {
	return fmt.Sprintf("%s %s-%s", f.Airline, f.From, f.To)
}

func (f Flight) BaseRate() (Money, bool) {
	if f.Pricing.Economy.BasePriceCents <= 0 {
		return Money{}, false
	}
	return NewMoney(f.Pricing.Economy.BasePriceCents), true
}

type Train struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	From    string `json:"from"`
	To      string `json:"to"`
	Pricing struct {
		Sleeper Fare `json:"sleeper"`
	} `json:"pricing"`
}

func (t Train) TripType() TripType { return TripTrain }
func (t Train) ItemID() string     { return t.ID }

func (t Train) Label() string {
	return fmt.Sprintf("%s %s-%s", t.Name, t.From, t.To)
}

func (t Train) BaseRate() (Money, bool) {
	if t.Pricing.Sleeper.BasePriceCents <= 0 {
		return Money{}, false
	}
	return NewMoney(t.Pricing.Sleeper.BasePriceCents), true
}

type Bus struct {
	ID       string `json:"id"`
	Operator string `json:"operator"`
	From     string `json:"from"`
	To       string `json:"to"`
	Pricing  struct {
		Seater Fare `json:"seater"`
	} `json:"pricing"`
}

func (b Bus) TripType() TripType { return TripBus }
func (b Bus) ItemID() string     { return b.ID }

func (b Bus) Label() string {
	return fmt.Sprintf("%s %s-%s", b.Operator, b.From, b.To)
}

func (b Bus) BaseRate() (Money, bool) {
	if b.Pricing.Seater.BasePriceCents <= 0 {
		return Money{}, false
	}
	return NewMoney(b.Pricing.Seater.BasePriceCents), true
}

type Package struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DurationDays   int    `json:"duration_days"`
	BasePriceCents int64  `json:"base_price_cents"`
	PriceCents     int64  `json:"price_cents"`
}

func (p Package) TripType() TripType { return TripPackage }
func (p Package) ItemID() string     { return p.ID }
func (p Package) Label() string      { return p.Name }

// Packages arrive from the catalog with either field populated depending on
// the endpoint; base_price_cents wins when both are set.
func (p Package) BaseRate() (Money, bool) {
	if p.BasePriceCents > 0 {
		return NewMoney(p.BasePriceCents), true
	}
	if p.PriceCents > 0 {
		return NewMoney(p.PriceCents), true
	}
	return Money{}, false
}

// DecodeItem validates an item payload at the boundary so the rest of the
// flow never inspects duck-typed shapes.
func DecodeItem(tripType TripType, data []byte) (Item, error) {
	if len(data) == 0 {
		return nil, errors.New("item payload is empty")
	}

	var item Item
	var err error
	switch tripType {
	case TripHotel:
		var h Hotel
		err = json.Unmarshal(data, &h)
		item = h
	case TripFlight:
		var f Flight
		err = json.Unmarshal(data, &f)
		item = f
	case TripTrain:
		var t Train
		err = json.Unmarshal(data, &t)
		item = t
	case TripBus:
		var b Bus
		err = json.Unmarshal(data, &b)
		item = b
	case TripPackage:
		var p Package
		err = json.Unmarshal(data, &p)
		item = p
	default:
		return nil, ErrUnknownTripType
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s item: %w", tripType, err)
	}
	if item.ItemID() == "" {
		return nil, fmt.Errorf("%s item missing id", tripType)
	}
	return item, nil
}

// EncodeItem serializes an item for storage alongside its discriminant.
func EncodeItem(item Item) (json.RawMessage, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encode %s item: %w", item.TripType(), err)
	}
	return data, nil
}
