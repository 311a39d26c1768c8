package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type EventType string

const (
	EventRunIssued        EventType = "survey_run.issued"
	EventRunClosed        EventType = "survey_run.closed"
	EventInstanceReissued EventType = "survey_instance.reissued"
)

// Event tells external notifiers that a run or instance changed. The engine
// does not deliver notifications itself.
type Event struct {
	Type       EventType
	RunID      int64
	InstanceID *int64
	Actor      string
	OccurredAt time.Time
	TraceID    *string
}

type Producer interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, event Event) error {
	fields := map[string]any{
		"event_type":  string(event.Type),
		"run_id":      event.RunID,
		"actor":       event.Actor,
		"occurred_at": event.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if event.InstanceID != nil {
		fields["instance_id"] = strconv.FormatInt(*event.InstanceID, 10)
	}
	if event.TraceID != nil && *event.TraceID != "" {
		fields["trace_id"] = *event.TraceID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	p.logger.InfoContext(ctx, "published survey event", "event_type", event.Type, "run_id", event.RunID)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

type noopProducer struct{}

// NewNoopProducer returns a Producer that drops events, used when no Redis is configured.
func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) Publish(context.Context, Event) error { return nil }

func (noopProducer) Close() error { return nil }
