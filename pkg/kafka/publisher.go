package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/xdg-go/scram"
	"go.opentelemetry.io/otel"

	"github.com/Goden-Gun/rpcerr-lib/pkg/metrics"
)

// Config defines Kafka connection and producer defaults for the unknown-error
// stream.
type Config struct {
	Brokers       []string `yaml:"brokers" mapstructure:"brokers"`
	Topic         string   `yaml:"topic" mapstructure:"topic"`
	ClientID      string   `yaml:"client_id" mapstructure:"client_id"`
	Username      string   `yaml:"username" mapstructure:"username"`
	Password      string   `yaml:"password" mapstructure:"password"`
	SASLMechanism string   `yaml:"sasl_mechanism" mapstructure:"sasl_mechanism"`
	TLSEnabled    bool     `yaml:"tls_enabled" mapstructure:"tls_enabled"`

	// RequiredAcks supports: "none" | "one" | "all" (default: all).
	RequiredAcks string `yaml:"required_acks" mapstructure:"required_acks"`
	// MaxAttempts controls producer retry max attempts (default: 3).
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// PublishObserver is an optional hook to observe publish latency and errors.
type PublishObserver interface {
	ObservePublish(topic string, duration time.Duration, err error)
}

// MetricsObserver records publishes into metrics.PublishLatency.
type MetricsObserver struct{}

// ObservePublish implements PublishObserver.
func (MetricsObserver) ObservePublish(topic string, duration time.Duration, err error) {
	metrics.PublishLatency.WithLabelValues(topic, metrics.Result(err)).Observe(duration.Seconds())
}

// Publisher wraps a shared sarama sync producer.
type Publisher struct {
	cfg      Config
	producer sarama.SyncProducer

	observerMu sync.RWMutex
	observer   PublishObserver

	closeOnce sync.Once
}

// headersCarrier implements propagation.TextMapCarrier for Kafka headers.
type headersCarrier []sarama.RecordHeader

func (c *headersCarrier) Get(key string) string {
	for _, h := range *c {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headersCarrier) Set(key, value string) {
	*c = append(*c, sarama.RecordHeader{
		Key:   []byte(key),
		Value: []byte(value),
	})
}

func (c *headersCarrier) Keys() []string {
	keys := make([]string, 0, len(*c))
	for _, h := range *c {
		keys = append(keys, string(h.Key))
	}
	return keys
}

// NewPublisher dials the brokers and builds a publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers empty")
	}
	producer, err := sarama.NewSyncProducer(cfg.Brokers, ProducerConfig(cfg))
	if err != nil {
		return nil, err
	}
	return NewPublisherWithProducer(cfg, producer), nil
}

// NewPublisherWithProducer builds a publisher around an existing producer.
func NewPublisherWithProducer(cfg Config, producer sarama.SyncProducer) *Publisher {
	return &Publisher{cfg: cfg, producer: producer, observer: MetricsObserver{}}
}

// ProducerConfig translates cfg into a sarama config for a sync producer.
func ProducerConfig(cfg Config) *sarama.Config {
	base := sarama.NewConfig()
	base.Version = sarama.V2_1_0_0
	if cfg.ClientID != "" {
		base.ClientID = cfg.ClientID
	}

	base.Producer.Return.Successes = true
	if cfg.MaxAttempts > 0 {
		base.Producer.Retry.Max = cfg.MaxAttempts
	}
	base.Producer.RequiredAcks = parseRequiredAcks(cfg.RequiredAcks)
	base.Producer.Idempotent = false

	if cfg.TLSEnabled {
		base.Net.TLS.Enable = true
		base.Net.TLS.Config = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	if cfg.Username != "" {
		base.Net.SASL.Enable = true
		base.Net.SASL.User = cfg.Username
		base.Net.SASL.Password = cfg.Password
		switch strings.ToUpper(strings.TrimSpace(cfg.SASLMechanism)) {
		case "SCRAM-SHA-512":
			base.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
			base.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return newSCRAMClient(scram.SHA512)
			}
		case "SCRAM-SHA-256":
			base.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
			base.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return newSCRAMClient(scram.SHA256)
			}
		default:
			base.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		}
	}
	return base
}

// SetObserver installs or replaces the publish observer. A nil observer
// disables observation.
func (p *Publisher) SetObserver(observer PublishObserver) {
	if p == nil {
		return
	}
	p.observerMu.Lock()
	p.observer = observer
	p.observerMu.Unlock()
}

func (p *Publisher) observerSnapshot() PublishObserver {
	p.observerMu.RLock()
	defer p.observerMu.RUnlock()
	return p.observer
}

// Topic returns the default topic.
func (p *Publisher) Topic() string {
	if p == nil {
		return ""
	}
	return p.cfg.Topic
}

// Publish sends a message to the given topic (falls back to cfg.Topic).
// Trace context is injected into the Kafka headers.
func (p *Publisher) Publish(ctx context.Context, topic string, key, value []byte) (err error) {
	if p == nil {
		return errors.New("kafka publisher nil")
	}
	if topic == "" {
		topic = p.cfg.Topic
	}
	if topic == "" {
		return errors.New("kafka topic empty")
	}
	start := time.Now()
	defer func() {
		if observer := p.observerSnapshot(); observer != nil {
			observer.ObservePublish(topic, time.Since(start), err)
		}
	}()

	var headers headersCarrier
	otel.GetTextMapPropagator().Inject(ctx, &headers)

	msg := &sarama.ProducerMessage{Topic: topic, Headers: headers}
	if len(key) > 0 {
		msg.Key = sarama.ByteEncoder(key)
	}
	if len(value) > 0 {
		msg.Value = sarama.ByteEncoder(value)
	}

	if err = ctx.Err(); err != nil {
		return err
	}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

// Close shuts down the producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	var err error
	p.closeOnce.Do(func() {
		if p.producer != nil {
			err = p.producer.Close()
		}
	})
	return err
}

func parseRequiredAcks(v string) sarama.RequiredAcks {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "none":
		return sarama.NoResponse
	case "one":
		return sarama.WaitForLocal
	default:
		return sarama.WaitForAll
	}
}

type scramClient struct {
	*scram.Client
	*scram.ClientConversation
	hash scram.HashGeneratorFcn
}

func newSCRAMClient(hash scram.HashGeneratorFcn) sarama.SCRAMClient {
	return &scramClient{hash: hash}
}

func (c *scramClient) Begin(userName, password, authzID string) error {
	client, err := c.hash.NewClient(userName, password, authzID)
	if err != nil {
		return err
	}
	c.Client = client
	c.ClientConversation = client.NewConversation()
	return nil
}

func (c *scramClient) Step(challenge string) (string, error) {
	return c.ClientConversation.Step(challenge)
}

func (c *scramClient) Done() bool {
	return c.ClientConversation.Done()
}
