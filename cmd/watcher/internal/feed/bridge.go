package feed

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/okilairistaeva05-svg/practic6/cmd/watcher/internal/repository"
	"github.com/okilairistaeva05-svg/practic6/pkg/exchange"
	"github.com/okilairistaeva05-svg/practic6/pkg/models"
)

// Bridge feeds ticks from an upstream store into a local exchange. The
// upstream channel of a symbol is subscribed while at least one observer
// watches it.
type Bridge struct {
	ex     *exchange.Exchange
	store  repository.FeedStore
	logger *zap.Logger

	mu       sync.Mutex
	refCount map[string]int
	lastSeq  map[string]int64
}

func NewBridge(ex *exchange.Exchange, store repository.FeedStore, logger *zap.Logger) *Bridge {
	return &Bridge{
		ex:       ex,
		store:    store,
		logger:   logger,
		refCount: make(map[string]int),
		lastSeq:  make(map[string]int64),
	}
}

// Watch registers o for symbol and subscribes upstream on the first watcher.
func (b *Bridge) Watch(ctx context.Context, symbol string, o exchange.Observer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.refCount[symbol] == 0 {
		if err := b.store.SubscribeToFeed(ctx, symbol); err != nil {
			b.logger.Error("Failed to subscribe upstream", zap.String("symbol", symbol), zap.Error(err))
			return err
		}
	}
	b.refCount[symbol]++
	b.ex.Register(symbol, o)
	return nil
}

// Unwatch removes one registration of o and drops the upstream
// subscription after the last one. Unknown pairs are ignored.
func (b *Bridge) Unwatch(ctx context.Context, symbol string, o exchange.Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	before := b.ex.Observers(symbol)
	b.ex.Remove(symbol, o)
	if b.ex.Observers(symbol) == before {
		return
	}

	b.refCount[symbol]--
	if b.refCount[symbol] <= 0 {
		if err := b.store.UnsubscribeFromFeed(ctx, symbol); err != nil {
			b.logger.Error("Failed to unsubscribe upstream", zap.String("symbol", symbol), zap.Error(err))
		}
		delete(b.refCount, symbol)
	}
}

// Handle decodes one upstream payload and sets the price on the exchange.
// Replayed or out of order ticks (SeqID not above the last seen) are dropped.
func (b *Bridge) Handle(symbol string, payload string) {
	var update models.StockUpdate
	if err := json.Unmarshal([]byte(payload), &update); err != nil {
		b.logger.Error("JSON Unmarshal Error", zap.Error(err), zap.String("symbol", symbol))
		return
	}
	if update.Symbol != "" && update.Symbol != symbol {
		b.logger.Warn("Symbol mismatch", zap.String("channel_symbol", symbol), zap.String("payload_symbol", update.Symbol))
		return
	}

	b.mu.Lock()
	if update.SeqID != 0 && update.SeqID <= b.lastSeq[symbol] {
		b.mu.Unlock()
		b.logger.Debug("Skipping duplicate update", zap.String("symbol", symbol), zap.Int64("seq_id", update.SeqID))
		return
	}
	if update.SeqID != 0 {
		b.lastSeq[symbol] = update.SeqID
	}
	b.mu.Unlock()

	b.ex.SetPrice(symbol, update.Price)
}

// Run pumps the upstream feed into the exchange until ctx is done.
func (b *Bridge) Run(ctx context.Context) {
	b.store.RunPubSub(ctx, b.Handle)
}
