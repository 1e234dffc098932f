package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestProducer_Publish(t *testing.T) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider())
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Run("writes keyed json with trace headers", func(t *testing.T) {
		w := &fakeWriter{}
		p := &Producer{writer: w, topic: "order.status_changed"}

		err := p.Publish(context.Background(), "42", map[string]any{"order_id": 42, "new_status": "Closed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(w.msgs) != 1 {
			t.Fatalf("expected 1 message, got %d", len(w.msgs))
		}
		msg := w.msgs[0]
		if string(msg.Key) != "42" {
			t.Fatalf("expected key 42, got %s", msg.Key)
		}
		var body map[string]any
		if err := json.Unmarshal(msg.Value, &body); err != nil || body["new_status"] != "Closed" {
			t.Fatalf("unexpected body %s err=%v", msg.Value, err)
		}
		if NewMessageCarrier(&msg).Get("traceparent") == "" {
			t.Fatalf("expected traceparent header, got %v", msg.Headers)
		}
	})

	t.Run("writer error", func(t *testing.T) {
		p := &Producer{writer: &fakeWriter{err: errors.New("broker down")}, topic: "t"}
		err := p.Publish(context.Background(), "1", struct{}{})
		if err == nil || err.Error() != "broker down" {
			t.Fatalf("expected broker down, got %v", err)
		}
	})

	t.Run("unencodable event", func(t *testing.T) {
		p := &Producer{writer: &fakeWriter{}, topic: "t"}
		if err := p.Publish(context.Background(), "1", make(chan int)); err == nil {
			t.Fatalf("expected marshal error")
		}
	})
}

func TestMessageCarrier(t *testing.T) {
	msg := kafka.Message{}
	c := NewMessageCarrier(&msg)
	c.Set("a", "1")
	c.Set("a", "2")
	c.Set("b", "3")

	if c.Get("a") != "2" || c.Get("b") != "3" || c.Get("missing") != "" {
		t.Fatalf("unexpected headers: %v", msg.Headers)
	}
	if len(c.Keys()) != 2 {
		t.Fatalf("expected 2 keys, got %v", c.Keys())
	}
}
