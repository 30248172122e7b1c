package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	topics []string
	errs   []error
}

func (o *recordingObserver) ObservePublish(topic string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.topics = append(o.topics, topic)
	o.errs = append(o.errs, err)
}

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != "payload" {
			return errors.New("unexpected payload")
		}
		return nil
	})
	p := NewPublisherWithProducer(Config{Topic: "rpc-unknown-errors"}, producer)
	obs := &recordingObserver{}
	p.SetObserver(obs)

	require.NoError(t, p.Publish(context.Background(), "", []byte("key"), []byte("payload")))
	require.NoError(t, p.Close())

	assert.Equal(t, []string{"rpc-unknown-errors"}, obs.topics)
	assert.Equal(t, []error{nil}, obs.errs)
}

func TestPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	p := NewPublisherWithProducer(Config{Topic: "t"}, producer)

	err := p.Publish(context.Background(), "other", nil, []byte("v"))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestPublisher_Guards(t *testing.T) {
	var nilPub *Publisher
	assert.Error(t, nilPub.Publish(context.Background(), "t", nil, nil))
	assert.NoError(t, nilPub.Close())

	producer := mocks.NewSyncProducer(t, nil)
	p := NewPublisherWithProducer(Config{}, producer)
	assert.EqualError(t, p.Publish(context.Background(), "", nil, nil), "kafka topic empty")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Publish(ctx, "t", nil, nil), context.Canceled)
	require.NoError(t, p.Close())
}

func TestNewPublisher_NoBrokers(t *testing.T) {
	_, err := NewPublisher(Config{})
	assert.EqualError(t, err, "kafka brokers empty")
}

func TestProducerConfig(t *testing.T) {
	cfg := ProducerConfig(Config{
		ClientID:      "rpcerr",
		Username:      "u",
		Password:      "p",
		SASLMechanism: "scram-sha-512",
		TLSEnabled:    true,
		RequiredAcks:  "one",
		MaxAttempts:   5,
	})

	assert.Equal(t, "rpcerr", cfg.ClientID)
	assert.True(t, cfg.Net.TLS.Enable)
	assert.True(t, cfg.Net.SASL.Enable)
	assert.Equal(t, sarama.SASLMechanism(sarama.SASLTypeSCRAMSHA512), cfg.Net.SASL.Mechanism)
	assert.NotNil(t, cfg.Net.SASL.SCRAMClientGeneratorFunc)
	assert.Equal(t, sarama.WaitForLocal, cfg.Producer.RequiredAcks)
	assert.Equal(t, 5, cfg.Producer.Retry.Max)
	assert.True(t, cfg.Producer.Return.Successes)

	plain := ProducerConfig(Config{Username: "u"})
	assert.Equal(t, sarama.SASLMechanism(sarama.SASLTypePlaintext), plain.Net.SASL.Mechanism)
	assert.Equal(t, sarama.WaitForAll, plain.Producer.RequiredAcks)
	assert.Equal(t, 3, plain.Producer.Retry.Max)

	single := ProducerConfig(Config{MaxAttempts: 1})
	assert.Equal(t, 1, single.Producer.Retry.Max)
}
