package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"regdesk/internal/platform/config"
	"regdesk/internal/registration/models"
)

// SubmittedEvent is the wire shape published for each new submission. Keyed
// by email so consumers see one registrant's events in order.
type SubmittedEvent struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	Type        string    `json:"type,omitempty"`
	ProofRef    string    `json:"proof_ref,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// KafkaPublisher publishes submission events to a Kafka topic so downstream
// consumers (mail relays, dashboards) can react without coupling to this
// service.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

// NewKafkaPublisher connects a franz-go producer to the configured brokers.
func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaPublisher{client: client, topic: cfg.Topic}, nil
}

func (p *KafkaPublisher) RegistrationSubmitted(ctx context.Context, rec *models.Record) error {
	payload, err := json.Marshal(SubmittedEvent{
		ID:          rec.ID.String(),
		Email:       rec.User.Email,
		Status:      string(rec.Status),
		Type:        string(rec.Type),
		ProofRef:    rec.ProofRef,
		SubmittedAt: rec.SubmittedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal submission event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(rec.User.Email),
		Value: payload,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("publish submission event: %w", err)
	}
	return nil
}

// Close flushes and shuts down the producer.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}
