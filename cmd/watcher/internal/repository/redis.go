package repository

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/okilairistaeva05-svg/practic6/pkg/models"
)

// Compile-time check to ensure RedisStore implements FeedStore
var _ FeedStore = (*RedisStore)(nil)

type RedisStore struct {
	client *redis.Client
	pubsub *redis.PubSub
	mu     sync.Mutex // Protects subscribe/unsubscribe on the shared pubsub
}

func NewRedisStore(client *redis.Client) *RedisStore {
	ps := client.Subscribe(context.Background())
	return &RedisStore{
		client: client,
		pubsub: ps,
	}
}

// SubscribeToFeed tells Redis we want to listen to the symbol's price channel
func (r *RedisStore) SubscribeToFeed(ctx context.Context, symbol string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pubsub.Subscribe(ctx, models.PriceChannel(symbol))
}

// UnsubscribeFromFeed tells Redis to stop sending messages for the symbol
func (r *RedisStore) UnsubscribeFromFeed(ctx context.Context, symbol string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pubsub.Unsubscribe(ctx, models.PriceChannel(symbol))
}

// RunPubSub blocks, handing every price message to onMessage, until ctx is
// done or the store is closed.
func (r *RedisStore) RunPubSub(ctx context.Context, onMessage func(symbol string, payload string)) {
	ch := r.pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			symbol, ok := models.SymbolFromChannel(msg.Channel)
			if !ok {
				continue
			}
			onMessage(symbol, msg.Payload)
		}
	}
}

func (r *RedisStore) Close() error {
	if err := r.pubsub.Close(); err != nil {
		return err
	}
	return r.client.Close()
}
