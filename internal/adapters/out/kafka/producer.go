// Package kafka publishes delivery events and presence changes with a
// synchronous sarama producer. Every message is JSON encoded and keyed, so
// events of one delivery land on one partition in order.
package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

type Producer struct {
	producer sarama.SyncProducer
	logger   *slog.Logger
}

func NewProducer(brokers []string, logger *slog.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return NewProducerFromSarama(producer, logger), nil
}

// NewProducerFromSarama wraps an existing producer, e.g. sarama/mocks in tests.
func NewProducerFromSarama(producer sarama.SyncProducer, logger *slog.Logger) *Producer {
	return &Producer{
		producer: producer,
		logger:   logger.With("component", "kafka_producer"),
	}
}

func (p *Producer) send(ctx context.Context, topic, key string, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to send message", "topic", topic, "key", key, "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "message stored",
		"topic", topic,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
