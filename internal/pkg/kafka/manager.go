package kafka

import (
	"Inkwell/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理 Kafka 消费者
type ConsumerManager struct {
	topic         string
	likesConsumer sarama.ConsumerGroup
	likesHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager kafka.enable 为 false 时返回 nil
func NewConsumerManager(cfg *config.Config) (*ConsumerManager, error) {
	if !cfg.Kafka.Enable {
		return nil, nil
	}

	likesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaLikeConsumer.GroupID, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		topic:         cfg.KafkaLikeConsumer.Topic,
		likesConsumer: likesConsumer,
		likesHandler:  NewLikesHandler(),
	}, nil
}

// Start 阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.likesConsumer.Errors() {
			log.Error("likes consumer error", "err", err)
		}
	}()

	go func() {
		log.Info("likes consumer started", "topic", m.topic)
		for {
			if err := m.likesConsumer.Consume(ctx, []string{m.topic}, m.likesHandler); err != nil {
				log.Error("error from likes consumer", "err", err)
				time.Sleep(time.Second)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("kafka manager shutting down")

	if err := m.likesConsumer.Close(); err != nil {
		log.Error("failed to close likes consumer", "err", err)
	}
	return nil
}
