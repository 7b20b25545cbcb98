package testutils

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Event is one observed notification.
type Event struct {
	Observer string
	Ticker   string
	Price    float64
}

func (e Event) String() string {
	return fmt.Sprintf("%s:%s=%v", e.Observer, e.Ticker, e.Price)
}

// EventLog collects notifications from several observers in arrival order
type EventLog struct {
	Events []Event
	Mu     sync.Mutex
}

func (l *EventLog) add(e Event) {
	l.Mu.Lock()
	defer l.Mu.Unlock()
	l.Events = append(l.Events, e)
}

// Snapshot returns a copy of the recorded events.
func (l *EventLog) Snapshot() []Event {
	l.Mu.Lock()
	defer l.Mu.Unlock()
	return append([]Event(nil), l.Events...)
}

// RecordingObserver appends every update it receives to a shared EventLog
type RecordingObserver struct {
	Name string
	Log  *EventLog
}

func NewRecordingObserver(name string, log *EventLog) *RecordingObserver {
	return &RecordingObserver{Name: name, Log: log}
}

func (r *RecordingObserver) Update(ticker string, price float64) {
	r.Log.add(Event{Observer: r.Name, Ticker: ticker, Price: price})
}

// MockPublisher simulates the Redis PUBLISH side
type MockPublisher struct {
	Published  map[string][]string // channel -> payloads
	ShouldFail bool
	Mu         sync.Mutex
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{Published: make(map[string][]string)}
}

func (m *MockPublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	cmd := redis.NewIntCmd(ctx)
	if m.ShouldFail {
		cmd.SetErr(errors.New("redis down"))
		return cmd
	}

	switch v := message.(type) {
	case []byte:
		m.Published[channel] = append(m.Published[channel], string(v))
	case string:
		m.Published[channel] = append(m.Published[channel], v)
	}
	cmd.SetVal(1)
	return cmd
}

// MockKafkaWriter records written messages
type MockKafkaWriter struct {
	Messages   []kafka.Message
	Closed     bool
	Mu         sync.Mutex
	ShouldFail bool
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if m.ShouldFail {
		return errors.New("kafka error")
	}
	m.Messages = append(m.Messages, msgs...)
	return nil
}

func (m *MockKafkaWriter) Close() error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Closed = true
	return nil
}

// MockClock returns a fixed time that only moves when Advance is called
type MockClock struct {
	CurrentTime time.Time
}

func (m *MockClock) Now() time.Time           { return m.CurrentTime }
func (m *MockClock) Advance(d time.Duration) { m.CurrentTime = m.CurrentTime.Add(d) }

// MockFeedStore simulates the Redis price feed
type MockFeedStore struct {
	SubscribedChannels map[string]int // symbol -> count
	FailSubscribe      bool
	Mu                 sync.Mutex
}

func NewMockFeedStore() *MockFeedStore {
	return &MockFeedStore{SubscribedChannels: make(map[string]int)}
}

func (m *MockFeedStore) SubscribeToFeed(ctx context.Context, symbol string) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if m.FailSubscribe {
		return errors.New("subscribe failed")
	}
	m.SubscribedChannels[symbol]++
	return nil
}

func (m *MockFeedStore) UnsubscribeFromFeed(ctx context.Context, symbol string) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.SubscribedChannels[symbol]--
	if m.SubscribedChannels[symbol] <= 0 {
		delete(m.SubscribedChannels, symbol)
	}
	return nil
}

func (m *MockFeedStore) RunPubSub(ctx context.Context, onMessage func(symbol string, payload string)) {
	// No-op for unit tests
}

func (m *MockFeedStore) Close() error { return nil }
