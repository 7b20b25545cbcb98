package relay

import (
	"encoding/json"
	"sync"

	"github.com/okilairistaeva05-svg/practic6/pkg/models"
)

// encoder turns exchange notifications into StockUpdate payloads, numbering
// them per symbol the same way the price generator does.
type encoder struct {
	clock       Clock
	mu          sync.Mutex
	seqCounters map[string]int64
}

func newEncoder(clock Clock) *encoder {
	return &encoder{clock: clock, seqCounters: make(map[string]int64)}
}

func (e *encoder) encode(ticker string, price float64) (models.StockUpdate, []byte, error) {
	e.mu.Lock()
	e.seqCounters[ticker]++
	seq := e.seqCounters[ticker]
	e.mu.Unlock()

	update := models.StockUpdate{
		Symbol:    ticker,
		Price:     price,
		Timestamp: e.clock.Now().UnixMicro(),
		SeqID:     seq,
	}
	payload, err := json.Marshal(update)
	return update, payload, err
}
