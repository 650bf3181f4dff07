package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"inventory-client/internal/config"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// KafkaSink publishes notifications so other consoles can mirror them.
type KafkaSink struct {
	producer   sarama.SyncProducer
	topic      string
	logger     *zap.Logger
	maxRetries int
	baseDelay  time.Duration
}

// NewKafkaSink creates a sync producer from the Kafka settings in cfg.
func NewKafkaSink(cfg *config.Config, logger *zap.Logger) (*KafkaSink, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = cfg.KafkaClientID
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Retry.Max = cfg.KafkaRetries

	switch cfg.KafkaAcks {
	case "0":
		saramaConfig.Producer.RequiredAcks = sarama.NoResponse
	case "1":
		saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	default:
		saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	}

	producer, err := sarama.NewSyncProducer(cfg.KafkaBrokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return newKafkaSink(producer, cfg.KafkaTopicNotifications, logger), nil
}

func newKafkaSink(producer sarama.SyncProducer, topic string, logger *zap.Logger) *KafkaSink {
	return &KafkaSink{
		producer:   producer,
		topic:      topic,
		logger:     logger,
		maxRetries: 3,
		baseDelay:  100 * time.Millisecond,
	}
}

// Notify publishes n. Delivery failures are logged, never returned.
func (s *KafkaSink) Notify(ctx context.Context, n Notification) {
	if err := s.Publish(ctx, n); err != nil {
		s.logger.Warn("Failed to publish notification",
			zap.String("operation", n.Operation),
			zap.Error(err),
		)
	}
}

// Publish sends n with retries and exponential backoff.
func (s *KafkaSink) Publish(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: s.topic,
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte("Notification" + string(n.Level))},
			{Key: []byte("event-id"), Value: []byte(uuid.New().String())},
			{Key: []byte("timestamp"), Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}
	if n.Operation != "" {
		message.Key = sarama.StringEncoder(n.Operation)
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		partition, offset, err := s.producer.SendMessage(message)
		if err == nil {
			s.logger.Debug("Notification published to Kafka",
				zap.String("topic", s.topic),
				zap.Int32("partition", partition),
				zap.Int64("offset", offset),
				zap.Int("attempt", attempt+1),
			)
			return nil
		}

		s.logger.Warn("Failed to publish notification to Kafka, retrying",
			zap.String("topic", s.topic),
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", s.maxRetries),
		)

		if attempt < s.maxRetries-1 {
			delay := s.baseDelay * time.Duration(1<<uint(attempt))
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled during backoff: %w", ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("failed to publish notification to Kafka after %d attempts", s.maxRetries)
}

func (s *KafkaSink) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}
