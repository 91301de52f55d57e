// Package kafka publishes storefront events for downstream consumers such
// as the order dashboard and analytics jobs.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"

	"github.com/littleforest/storefront/internal/config"
	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/pkg/util"
)

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error
	Close() error
}

type kafkaPublisher struct {
	writer  *kafka.Writer
	metrics *prometheus.HistogramVec
}

func NewPublisher(cfg config.KafkaConfig) (Publisher, error) {
	if !cfg.Enabled {
		return &noopPublisher{}, nil
	}

	metrics, err := util.GetHistogramVec("kafka_messages_published", "status", "topic")
	if err != nil {
		return nil, fmt.Errorf("get histogram vec: %w", err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}

	return &kafkaPublisher{
		writer:  writer,
		metrics: metrics,
	}, nil
}

func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error {
	started := time.Now()

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SessionID),
		Value: value,
	})

	status := "ok"
	if err != nil {
		status = "error"
	}
	p.metrics.WithLabelValues(status, p.writer.Topic).Observe(time.Since(started).Seconds())

	if err != nil {
		return fmt.Errorf("write message: %w", err)
	}

	log.Debugw(ctx, "published order event",
		"topic", p.writer.Topic,
		"session_id", event.SessionID,
		"line_count", event.LineCount,
	)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

func (noopPublisher) PublishOrderPlaced(context.Context, models.OrderPlacedEvent) error {
	return nil
}

func (noopPublisher) Close() error { return nil }
