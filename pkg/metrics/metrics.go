package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	// CacheOps — операции сессионного кэша по пространствам имён.
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_cache_operations_total",
			Help: "Session result cache operations",
		},
		[]string{"namespace", "op"}, // hit|miss|put|persist_failed
	)
	// CacheSize — суммарное число записей в сессионном кэше.
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "session_cache_size",
			Help: "Number of entries currently in the session result cache",
		},
	)
)

var (
	// ResolverLookups — исход каждого per-identifier запроса в каталог.
	ResolverLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_catalog_lookups_total",
			Help: "Per-identifier catalog lookups by outcome",
		},
		[]string{"outcome"}, // resolved|dropped
	)
	// ResolverBatches — исход вызова ranking-сервиса целиком.
	ResolverBatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_batches_total",
			Help: "Whole resolution batches by outcome",
		},
		[]string{"endpoint", "outcome"}, // query|item|home × ok|failed
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
			ResolverLookups, ResolverBatches,
		)
	})
}
