package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const DefaultAuditQueueName = "case_audit_events"

type auditService struct {
	Repository contracts.AuditRepository
	Log        *zap.Logger

	queue    string
	ch       *amqp.Channel
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewAuditService builds the audit sink. conn may be nil when the service
// runs without a broker; events are then only persisted.
func NewAuditService(repository contracts.AuditRepository, conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.AuditService, error) {
	if queueName == "" {
		queueName = DefaultAuditQueueName
	}
	svc := &auditService{
		Repository: repository,
		Log:        log,
		queue:      queueName,
	}
	if conn == nil {
		return svc, nil
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}
	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc.ch = ch
	svc.confirms = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	return svc, nil
}

// Record persists the event and fans it out to the broker. Persistence
// failure is the caller's warning; a publish failure is only logged so a
// broker outage never degrades case operations.
func (s *auditService) Record(ctx context.Context, event *models.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := s.Repository.InsertEvent(ctx, event); err != nil {
		return err
	}

	if err := s.publish(ctx, event); err != nil {
		s.Log.Warn("audit event publish failed",
			zap.String("case_id", event.CaseID),
			zap.String("action", event.Action),
			zap.Error(err),
		)
	}
	return nil
}

func (s *auditService) publish(ctx context.Context, event *models.AuditEvent) error {
	if s.ch == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", s.queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queue)
	}
	return nil
}
