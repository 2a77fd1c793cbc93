// Package audit publishes catalog mutation events so operator actions can
// be traced outside the console. When no broker is configured the producer
// degrades to a no-op.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const Topic = "catalog_audit"

type Event struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Actor string `json:"actor,omitempty"`
}

type Producer struct {
	writer *kafka.Writer
}

// NewProducer returns a disabled producer when address is empty.
func NewProducer(address string) *Producer {
	if address == "" {
		return &Producer{}
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(address),
			Topic:                  Topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			WriteTimeout:           5 * time.Second,
		},
	}
}

func (p *Producer) Enabled() bool {
	return p != nil && p.writer != nil
}

func (p *Producer) Publish(ctx context.Context, event Event) error {
	if !p.Enabled() {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("audit: marshal event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.Type),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("audit: write message: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if !p.Enabled() {
		return nil
	}
	return p.writer.Close()
}
