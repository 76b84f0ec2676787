package booking

import "errors"

var (
	ErrUnpriceable   = errors.New("item has no usable base rate")
	ErrNoPricingRule = errors.New("no pricing rule for trip type")
)

type Quote struct {
	BaseRate Money
	Nights   int
	Rooms    int
	Total    Money
}

// PriceCalculator derives the amount to charge for a draft. Each trip type
// has its own explicit rule so rate differences stay a visible configuration
// choice instead of duplicated arithmetic at call sites.
type PriceCalculator interface {
	Quote(d *Draft) (Quote, error)
}

type pricingRule interface {
	quote(d *Draft, base Money) Quote
}

// nightlyRule charges base rate per night per room.
type nightlyRule struct{}

func (nightlyRule) quote(d *Draft, base Money) Quote {
	nights := d.Stay().Nights()
	rooms := d.Rooms()
	if rooms < 1 {
		rooms = 1
	}
	return Quote{
		BaseRate: base,
		Nights:   nights,
		Rooms:    rooms,
		Total:    base.Multiply(int64(nights)).Multiply(int64(rooms)),
	}
}

// flatRule charges the base rate once. Passenger count is intentionally not
// applied; see the fare notes in DESIGN.md.
type flatRule struct{}

func (flatRule) quote(_ *Draft, base Money) Quote {
	return Quote{BaseRate: base, Total: base}
}

type StandardPriceCalculator struct {
	rules map[TripType]pricingRule
}

func NewStandardPriceCalculator() *StandardPriceCalculator {
	return &StandardPriceCalculator{
		rules: map[TripType]pricingRule{
			TripHotel:   nightlyRule{},
			TripFlight:  flatRule{},
			TripTrain:   flatRule{},
			TripBus:     flatRule{},
			TripPackage: flatRule{},
		},
	}
}

func (c *StandardPriceCalculator) Quote(d *Draft) (Quote, error) {
	rule, ok := c.rules[d.TripType()]
	if !ok {
		return Quote{}, ErrNoPricingRule
	}

	base, ok := d.Item().BaseRate()
	if !ok {
		return Quote{}, ErrUnpriceable
	}

	return rule.quote(d, base), nil
}
