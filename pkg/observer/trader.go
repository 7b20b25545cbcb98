// Package observer holds the traders that react to exchange price updates.
package observer

import (
	"fmt"
	"io"

	"github.com/okilairistaeva05-svg/practic6/pkg/exchange"
	"github.com/okilairistaeva05-svg/practic6/pkg/models"
)

var (
	_ exchange.Observer = (*Trader)(nil)
	_ exchange.Observer = (*AutoTrader)(nil)
)

// Trader only reports the updates it receives.
type Trader struct {
	name string
	out  io.Writer
}

func NewTrader(name string, out io.Writer) *Trader {
	return &Trader{name: name, out: out}
}

func (t *Trader) Name() string { return t.name }

func (t *Trader) Update(ticker string, price float64) {
	fmt.Fprintf(t.out, "%s received: %s = %s\n", t.name, ticker, models.FormatPrice(price))
}

// Decision is what an AutoTrader does with a quote.
type Decision string

const (
	Buy  Decision = "buy"
	Sell Decision = "sell"
)

// AutoTrader sells above its threshold and buys otherwise.
type AutoTrader struct {
	name      string
	threshold float64
	out       io.Writer
}

func NewAutoTrader(name string, threshold float64, out io.Writer) *AutoTrader {
	return &AutoTrader{name: name, threshold: threshold, out: out}
}

func (a *AutoTrader) Name() string { return a.name }

func (a *AutoTrader) Threshold() float64 { return a.threshold }

// Decide is Sell only when price is strictly above the threshold.
func (a *AutoTrader) Decide(price float64) Decision {
	if price > a.threshold {
		return Sell
	}
	return Buy
}

func (a *AutoTrader) Update(ticker string, price float64) {
	fmt.Fprintf(a.out, "%s is checking %s: %s\n", a.name, ticker, models.FormatPrice(price))

	switch a.Decide(price) {
	case Sell:
		fmt.Fprintf(a.out, "%s sells %s\n", a.name, ticker)
	default:
		fmt.Fprintf(a.out, "%s buys %s\n", a.name, ticker)
	}
}
