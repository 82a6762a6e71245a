package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"likelemba/internal/telemetry/domain"
)

type fakeWriter struct {
	msgs     []kafka.Message
	err      error
	closed   bool
	deadline bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

var _ Producer = (*KafkaProducer)(nil)

func TestNewKafkaProducer_Unconfigured(t *testing.T) {
	for _, tc := range []struct {
		name    string
		brokers []string
		topic   string
	}{
		{"no brokers", nil, "auth-events"},
		{"no topic", []string{"localhost:9092"}, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewKafkaProducer(tc.brokers, tc.topic)
			if err != nil || p != nil {
				t.Fatalf("NewKafkaProducer = %v, %v; want nil, nil", p, err)
			}
			if err := p.Emit(context.Background(), &domain.Event{EventType: "x"}); err != nil {
				t.Errorf("nil producer Emit: %v", err)
			}
			if err := p.Close(); err != nil {
				t.Errorf("nil producer Close: %v", err)
			}
		})
	}
}

func TestNewKafkaProducer_Configured(t *testing.T) {
	p, err := NewKafkaProducer([]string{"localhost:9092"}, "auth-events")
	if err != nil {
		t.Fatalf("NewKafkaProducer: %v", err)
	}
	if p == nil || p.topic != "auth-events" {
		t.Fatalf("producer = %+v", p)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestKafkaProducer_Emit(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaProducer{writer: w, topic: "auth-events"}
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ev := &domain.Event{UserID: "u1", EventType: domain.EventLoginSuccess, Source: "auth", CreatedAt: created}

	if err := p.Emit(context.Background(), ev); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "u1" {
		t.Errorf("key = %q, want u1", w.msgs[0].Key)
	}
	if !w.deadline {
		t.Error("write should run under a deadline")
	}
	var got domain.Event
	if err := json.Unmarshal(w.msgs[0].Value, &got); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if got.EventType != domain.EventLoginSuccess || !got.CreatedAt.Equal(created) {
		t.Errorf("payload = %+v", got)
	}

	if err := p.Emit(context.Background(), &domain.Event{EventType: domain.EventOTPSent}); err != nil {
		t.Fatalf("Emit anonymous: %v", err)
	}
	if w.msgs[1].Key != nil {
		t.Errorf("anonymous event key = %q, want nil", w.msgs[1].Key)
	}

	if err := p.Emit(context.Background(), nil); err != nil || len(w.msgs) != 2 {
		t.Error("nil event should be ignored")
	}
	if err := p.Close(); err != nil || !w.closed {
		t.Error("Close should close the writer")
	}
}

func TestKafkaProducer_EmitError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}
	p := &KafkaProducer{writer: w, topic: "auth-events"}
	if err := p.Emit(context.Background(), &domain.Event{EventType: "x"}); err == nil {
		t.Fatal("expected error")
	}
}
