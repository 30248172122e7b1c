package reporter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Goden-Gun/rpcerr-lib/pkg/kafka"
)

// KafkaSink publishes each record as a JSON message keyed by the record id.
type KafkaSink struct {
	publisher *kafka.Publisher
	topic     string
}

// NewKafkaSink publishes to topic, or to the publisher default when empty.
func NewKafkaSink(publisher *kafka.Publisher, topic string) *KafkaSink {
	return &KafkaSink{publisher: publisher, topic: topic}
}

// Name implements Sink.
func (s *KafkaSink) Name() string { return "kafka" }

// Append implements Sink.
func (s *KafkaSink) Append(ctx context.Context, rec Record) error {
	if s == nil || s.publisher == nil {
		return errors.New("kafka sink not configured")
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.publisher.Publish(ctx, s.topic, []byte(rec.ID), payload)
}

// Close closes the publisher.
func (s *KafkaSink) Close() error {
	if s == nil {
		return nil
	}
	return s.publisher.Close()
}
