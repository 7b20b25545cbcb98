package relay_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/okilairistaeva05-svg/practic6/cmd/demo/internal/relay"
	"github.com/okilairistaeva05-svg/practic6/internal/testutils"
	"github.com/okilairistaeva05-svg/practic6/pkg/models"
)

func TestRedisRelay_Publishes(t *testing.T) {
	pub := testutils.NewMockPublisher()
	clock := &testutils.MockClock{CurrentTime: time.Unix(0, 0)}
	r := relay.NewRedisRelay(context.Background(), pub, zap.NewNop(), clock)

	r.Update("AAPL", 120)
	clock.Advance(time.Second)
	r.Update("AAPL", 80)
	r.Update("GOOG", 90)

	aapl := pub.Published["prices.AAPL"]
	if len(aapl) != 2 {
		t.Fatalf("Expected 2 AAPL payloads, got %d", len(aapl))
	}

	var second models.StockUpdate
	if err := json.Unmarshal([]byte(aapl[1]), &second); err != nil {
		t.Fatalf("Relayed invalid JSON: %v", err)
	}
	if second.Symbol != "AAPL" || second.Price != 80 {
		t.Errorf("Unexpected update %+v", second)
	}
	if second.SeqID != 2 {
		t.Errorf("Expected SeqID 2, got %d", second.SeqID)
	}
	if second.Timestamp != time.Second.Microseconds() {
		t.Errorf("Expected timestamp from clock, got %d", second.Timestamp)
	}

	var goog models.StockUpdate
	json.Unmarshal([]byte(pub.Published["prices.GOOG"][0]), &goog)
	if goog.SeqID != 1 {
		t.Errorf("Sequence should be per symbol, got %d", goog.SeqID)
	}
}

func TestRedisRelay_FailureDoesNotPanic(t *testing.T) {
	pub := testutils.NewMockPublisher()
	pub.ShouldFail = true
	r := relay.NewRedisRelay(context.Background(), pub, zap.NewNop(), relay.RealClock{})

	r.Update("AAPL", 1)

	if len(pub.Published) != 0 {
		t.Error("Nothing should be recorded when publish fails")
	}
}

func TestKafkaRelay_Writes(t *testing.T) {
	w := &testutils.MockKafkaWriter{}
	k := relay.NewKafkaRelay(context.Background(), w, zap.NewNop(), &testutils.MockClock{})

	k.Update("GOOG", 90)
	k.Update("AAPL", 120)

	if len(w.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(w.Messages))
	}
	if string(w.Messages[0].Key) != "GOOG" {
		t.Errorf("Message should be keyed by symbol, got %s", w.Messages[0].Key)
	}

	var update models.StockUpdate
	if err := json.Unmarshal(w.Messages[1].Value, &update); err != nil {
		t.Fatalf("Relayed invalid JSON: %v", err)
	}
	if update.Symbol != "AAPL" || update.Price != 120 || update.SeqID != 1 {
		t.Errorf("Unexpected update %+v", update)
	}

	if err := k.Close(); err != nil || !w.Closed {
		t.Error("Close should close the writer")
	}
}

func TestKafkaRelay_WriteError(t *testing.T) {
	w := &testutils.MockKafkaWriter{ShouldFail: true}
	k := relay.NewKafkaRelay(context.Background(), w, zap.NewNop(), relay.RealClock{})

	k.Update("AAPL", 1)

	if len(w.Messages) != 0 {
		t.Error("Failed writes should not be recorded")
	}
}

func TestNewKafkaWriter(t *testing.T) {
	w := relay.NewKafkaWriter([]string{"localhost:9092"}, "market_ticks")
	if w.Topic != "market_ticks" {
		t.Errorf("Expected topic market_ticks, got %s", w.Topic)
	}
	if w.BatchSize != 1 {
		t.Errorf("Expected one tick per batch, got %d", w.BatchSize)
	}
	if w.BatchTimeout <= 0 || w.BatchTimeout > 10*time.Millisecond {
		t.Errorf("Batch timeout should be small, got %s", w.BatchTimeout)
	}
}
