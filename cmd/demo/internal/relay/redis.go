package relay

import (
	"context"

	"go.uber.org/zap"

	"github.com/okilairistaeva05-svg/practic6/pkg/exchange"
	"github.com/okilairistaeva05-svg/practic6/pkg/models"
)

var _ exchange.Observer = (*RedisRelay)(nil)

// RedisRelay publishes each update on the symbol's price channel. Nothing is
// stored; subscribers only see updates published while they listen.
type RedisRelay struct {
	ctx    context.Context
	client Publisher
	logger *zap.Logger
	enc    *encoder
}

func NewRedisRelay(ctx context.Context, client Publisher, logger *zap.Logger, clock Clock) *RedisRelay {
	return &RedisRelay{
		ctx:    ctx,
		client: client,
		logger: logger,
		enc:    newEncoder(clock),
	}
}

func (r *RedisRelay) Update(ticker string, price float64) {
	update, payload, err := r.enc.encode(ticker, price)
	if err != nil {
		r.logger.Error("JSON Marshal Error", zap.Error(err), zap.String("symbol", ticker))
		return
	}

	channel := models.PriceChannel(ticker)
	if err := r.client.Publish(r.ctx, channel, payload).Err(); err != nil {
		r.logger.Error("Redis Publish Error", zap.Error(err), zap.String("channel", channel))
		return
	}
	r.logger.Debug("Relayed", zap.String("channel", channel), zap.Int64("seq_id", update.SeqID))
}
