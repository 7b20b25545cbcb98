package relay

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/okilairistaeva05-svg/practic6/pkg/exchange"
)

var _ exchange.Observer = (*KafkaRelay)(nil)

// KafkaRelay writes each update to the ticks topic, keyed by symbol so one
// symbol always lands on one partition.
type KafkaRelay struct {
	ctx    context.Context
	writer KafkaWriter
	logger *zap.Logger
	enc    *encoder
}

func NewKafkaRelay(ctx context.Context, writer KafkaWriter, logger *zap.Logger, clock Clock) *KafkaRelay {
	return &KafkaRelay{
		ctx:    ctx,
		writer: writer,
		logger: logger,
		enc:    newEncoder(clock),
	}
}

// NewKafkaWriter builds a synchronous writer, so every update is acknowledged
// before the exchange moves on to the next observer. Batches hold a single
// tick so a write never waits out the batch timeout.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func (k *KafkaRelay) Update(ticker string, price float64) {
	update, payload, err := k.enc.encode(ticker, price)
	if err != nil {
		k.logger.Error("JSON Marshal Error", zap.Error(err), zap.String("symbol", ticker))
		return
	}

	err = k.writer.WriteMessages(k.ctx, kafka.Message{
		Key:   []byte(ticker),
		Value: payload,
	})
	if err != nil {
		k.logger.Error("Kafka Write Error", zap.Error(err), zap.String("symbol", ticker))
		return
	}
	k.logger.Debug("Relayed", zap.String("symbol", ticker), zap.Int64("seq_id", update.SeqID))
}

func (k *KafkaRelay) Close() error {
	return k.writer.Close()
}
