package console

import (
	"fmt"
	"io"
)

const (
	PromptTransport  = "Choose transport: 1 - Plane, 2 - Train, 3 - Bus"
	PromptDistance   = "Distance:"
	PromptPassengers = "Passengers:"
	PromptClass      = "Class (economy/business):"
	PromptDiscount   = "Discount (true/false):"
)

// Quote is the answer set collected for one travel price calculation.
type Quote struct {
	Choice     string
	Distance   float64
	Passengers int
	Class      string
	Discount   bool
}

// ReadQuote prompts on out and reads the answers from r in a fixed order:
// transport line, distance, passengers, class line, discount flag.
func ReadQuote(r *Reader, out io.Writer) (Quote, error) {
	var (
		q   Quote
		err error
	)

	fmt.Fprintln(out, PromptTransport)
	if q.Choice, err = r.Line(); err != nil {
		return Quote{}, fmt.Errorf("read transport: %w", err)
	}

	fmt.Fprintln(out, PromptDistance)
	if q.Distance, err = r.Float("distance"); err != nil {
		return Quote{}, err
	}

	fmt.Fprintln(out, PromptPassengers)
	if q.Passengers, err = r.Int("passengers"); err != nil {
		return Quote{}, err
	}
	if err = r.SkipLine(); err != nil {
		return Quote{}, fmt.Errorf("read passengers: %w", err)
	}

	fmt.Fprintln(out, PromptClass)
	if q.Class, err = r.Line(); err != nil {
		return Quote{}, fmt.Errorf("read class: %w", err)
	}

	fmt.Fprintln(out, PromptDiscount)
	if q.Discount, err = r.Bool("discount"); err != nil {
		return Quote{}, err
	}

	return q, nil
}
