package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — настройки консьюмера событий корзины.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string

	// ProcessTimeout — таймаут обработки одного сообщения.
	ProcessTimeout time.Duration
	// RetryInitial / RetryMax — границы экспоненциального backoff на ошибках чтения.
	RetryInitial time.Duration
	RetryMax     time.Duration
}

// ReaderConfig — конфигурация kafka.Reader: ручной коммит оффсетов,
// StartOffset нормализуется (регистр/пробелы), неизвестное значение → last.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}
