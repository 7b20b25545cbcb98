package demo

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/okilairistaeva05-svg/practic6/cmd/demo/internal/console"
	"github.com/okilairistaeva05-svg/practic6/pkg/config"
	"github.com/okilairistaeva05-svg/practic6/pkg/exchange"
	"github.com/okilairistaeva05-svg/practic6/pkg/models"
	"github.com/okilairistaeva05-svg/practic6/pkg/observer"
	"github.com/okilairistaeva05-svg/practic6/pkg/travel"
)

// Tick is one scripted price change.
type Tick struct {
	Ticker string
	Price  float64
}

// Script is the fixed sequence of price changes driven through the exchange.
var Script = []Tick{
	{"AAPL", 120},
	{"GOOG", 90},
	{"AAPL", 80},
}

// Demo runs the travel pricing step followed by the stock notification step.
type Demo struct {
	traders config.TradersConfig
	out     io.Writer
	logger  *zap.Logger
	relays  []exchange.Observer
}

func New(traders config.TradersConfig, out io.Writer, logger *zap.Logger, relays ...exchange.Observer) *Demo {
	return &Demo{
		traders: traders,
		out:     out,
		logger:  logger,
		relays:  relays,
	}
}

// Run reads a quote from in, prints its cost and then plays Script.
func (d *Demo) Run(in io.Reader) error {
	cost, err := d.Price(console.NewReader(in))
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Trip cost: %s\n", models.FormatCost(cost))

	d.Trade()
	return nil
}

// Price asks for a quote and prices it with the chosen strategy.
func (d *Demo) Price(r *console.Reader) (float64, error) {
	q, err := console.ReadQuote(r, d.out)
	if err != nil {
		return 0, err
	}

	ctx := travel.NewContext(travel.Select(q.Choice))
	cost := ctx.Calculate(q.Distance, q.Passengers, q.Class, q.Discount)

	d.logger.Debug("Priced trip",
		zap.String("strategy", ctx.Strategy().Name()),
		zap.Float64("distance", q.Distance),
		zap.Int("passengers", q.Passengers),
		zap.String("class", q.Class),
		zap.Bool("discount", q.Discount),
		zap.Float64("cost", cost))
	return cost, nil
}

// Trade wires the two traders into a fresh exchange and plays Script.
func (d *Demo) Trade() *exchange.Exchange {
	ex := exchange.New()
	trader := observer.NewTrader(d.traders.TraderName, d.out)
	auto := observer.NewAutoTrader(d.traders.AutoTraderName, d.traders.AutoTraderThreshold, d.out)

	ex.Register("AAPL", trader)
	ex.Register("AAPL", auto)
	ex.Register("GOOG", auto)
	d.logger.Debug("Traders registered",
		zap.String("trader", trader.Name()),
		zap.String("auto_trader", auto.Name()),
		zap.Float64("threshold", auto.Threshold()))

	for _, r := range d.relays {
		ex.Register("AAPL", r)
		ex.Register("GOOG", r)
	}

	for _, tick := range Script {
		d.logger.Debug("Setting price", zap.String("symbol", tick.Ticker), zap.Float64("price", tick.Price))
		ex.SetPrice(tick.Ticker, tick.Price)
	}
	return ex
}
