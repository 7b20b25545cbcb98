package travel

import "strings"

const businessClass = "business"

// Strategy computes the cost of a trip for one mode of transport.
type Strategy interface {
	Name() string
	Calculate(distance float64, passengers int, class string, discount bool) float64
}

// tariff is the fixed price sheet of one transport mode.
type tariff struct {
	name     string
	rate     float64 // per unit of distance
	business float64
	discount float64
}

func (t tariff) Name() string { return t.name }

// Calculate applies the business and discount multipliers to the per-unit
// cost before scaling by passengers. Inputs are not range checked.
func (t tariff) Calculate(distance float64, passengers int, class string, discount bool) float64 {
	cost := distance * t.rate
	if strings.EqualFold(class, businessClass) {
		cost *= t.business
	}
	if discount {
		cost *= t.discount
	}
	return cost * float64(passengers)
}

var (
	Plane Strategy = tariff{name: "plane", rate: 0.5, business: 2.0, discount: 0.8}
	Train Strategy = tariff{name: "train", rate: 0.2, business: 1.5, discount: 0.9}
	Bus   Strategy = tariff{name: "bus", rate: 0.1, business: 1.2, discount: 0.95}
)

// Select maps the menu choice to a strategy. Anything other than "1" or "2"
// falls back to Bus.
func Select(choice string) Strategy {
	switch choice {
	case "1":
		return Plane
	case "2":
		return Train
	default:
		return Bus
	}
}

// Context holds the strategy currently used for pricing.
type Context struct {
	strategy Strategy
}

func NewContext(s Strategy) *Context {
	return &Context{strategy: s}
}

func (c *Context) SetStrategy(s Strategy) { c.strategy = s }

func (c *Context) Strategy() Strategy { return c.strategy }

func (c *Context) Calculate(distance float64, passengers int, class string, discount bool) float64 {
	return c.strategy.Calculate(distance, passengers, class, discount)
}
