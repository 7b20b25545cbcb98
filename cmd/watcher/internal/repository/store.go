package repository

import (
	"context"
)

// FeedStore is the upstream price feed the watcher listens to.
type FeedStore interface {
	SubscribeToFeed(ctx context.Context, symbol string) error
	UnsubscribeFromFeed(ctx context.Context, symbol string) error
	RunPubSub(ctx context.Context, onMessage func(symbol string, payload string))
	Close() error
}
