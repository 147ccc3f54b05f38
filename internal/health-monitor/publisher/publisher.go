package publisher

import (
	"VCS_Registry_Health/internal/health-monitor/model"
	"VCS_Registry_Health/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/publisher/mock_publisher.go -package=mockpublisher

// Publisher streams probe records to downstream consumers once they are persisted.
type Publisher interface {
	PublishProbeRecord(ctx context.Context, record model.ProbeRecord, healthStatus string) error
	Close() error
}

type probeRecordEvent struct {
	ID                   string    `json:"id"`
	ServiceID            string    `json:"service_id"`
	VariantID            *string   `json:"variant_id,omitempty"`
	Status               string    `json:"status"`
	HealthStatus         string    `json:"health_status"`
	StatusCode           *int      `json:"status_code,omitempty"`
	ResponseTime         *float64  `json:"response_time,omitempty"`
	Message              *string   `json:"message,omitempty"`
	ConsecutiveFailures  *int      `json:"consecutive_failures,omitempty"`
	ConsecutiveSuccesses *int      `json:"consecutive_successes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

type kafkaPublisher struct {
	writer infra.KafkaWriter
}

func (k *kafkaPublisher) PublishProbeRecord(ctx context.Context, record model.ProbeRecord, healthStatus string) error {
	b, err := json.Marshal(probeRecordEvent{
		ID:                   record.ID,
		ServiceID:            record.ServiceID,
		VariantID:            record.VariantID,
		Status:               record.Status,
		HealthStatus:         healthStatus,
		StatusCode:           record.StatusCode,
		ResponseTime:         record.ResponseTime,
		Message:              record.Message,
		ConsecutiveFailures:  record.ConsecutiveFailures,
		ConsecutiveSuccesses: record.ConsecutiveSuccesses,
		CreatedAt:            record.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("kafkaPublisher.PublishProbeRecord: %w", err)
	}
	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(record.ServiceID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("kafkaPublisher.PublishProbeRecord: %w", err)
	}
	return nil
}

func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}

func NewKafkaPublisher(writer infra.KafkaWriter) Publisher {
	return &kafkaPublisher{
		writer: writer,
	}
}

type nopPublisher struct{}

func (nopPublisher) PublishProbeRecord(context.Context, model.ProbeRecord, string) error {
	return nil
}

func (nopPublisher) Close() error {
	return nil
}

// NewNopPublisher is used when no kafka brokers are configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}
