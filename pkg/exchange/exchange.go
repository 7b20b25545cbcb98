package exchange

import "sync"

// Observer receives every price set for a ticker it is registered on.
type Observer interface {
	Update(ticker string, price float64)
}

// Subject is the registration and fan-out side of the exchange.
type Subject interface {
	Register(ticker string, o Observer)
	Remove(ticker string, o Observer)
	Notify(ticker string)
}

// Compile-time check to ensure Exchange implements Subject
var _ Subject = (*Exchange)(nil)

// Exchange records the latest price per ticker and fans each change out to
// the ticker's observers, synchronously and in registration order.
//
// The lock is held for the whole of SetPrice and Notify, so observers must
// not call back into the exchange from Update.
type Exchange struct {
	prices    map[string]float64
	observers map[string][]Observer
	mu        sync.Mutex
}

func New() *Exchange {
	return &Exchange{
		prices:    make(map[string]float64),
		observers: make(map[string][]Observer),
	}
}

// SetPrice stores price for ticker and notifies its observers.
func (e *Exchange) SetPrice(ticker string, price float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.prices[ticker] = price
	e.notifyLocked(ticker)
}

// Register appends o to the ticker's observers. Registering the same
// observer twice makes it receive every update twice.
func (e *Exchange) Register(ticker string, o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.observers[ticker] = append(e.observers[ticker], o)
}

// Remove drops the first registration of o for ticker, if any.
func (e *Exchange) Remove(ticker string, o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	list := e.observers[ticker]
	for i, cur := range list {
		if cur == o {
			e.observers[ticker] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Notify pushes the current price of ticker to its observers. It does
// nothing when the ticker has no price yet.
func (e *Exchange) Notify(ticker string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.notifyLocked(ticker)
}

func (e *Exchange) notifyLocked(ticker string) {
	price, ok := e.prices[ticker]
	if !ok {
		return
	}
	for _, o := range e.observers[ticker] {
		o.Update(ticker, price)
	}
}

// Price returns the last price set for ticker.
func (e *Exchange) Price(ticker string) (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.prices[ticker]
	return p, ok
}

// Observers reports how many registrations ticker currently has.
func (e *Exchange) Observers(ticker string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.observers[ticker])
}
