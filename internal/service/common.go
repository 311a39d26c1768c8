package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"basegraph.app/surveys/common/id"
	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/queue"
	"basegraph.app/surveys/internal/store"
)

const (
	entityTemplate = "survey template"
	entityQuestion = "survey question"
	entityRun      = "survey run"
	entityInstance = "survey instance"
)

func requireActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return domain.Validation("actor is required")
	}
	return nil
}

// lookupErr turns a failed read of entity id into a typed failure.
func lookupErr(err error, entity string, id int64) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.NotFound(entity, id)
	}
	return fmt.Errorf("getting %s %d: %w", entity, id, err)
}

// casErr turns a failed compare-and-set status update into a typed failure.
// The row was read earlier in the same transaction, so a mismatch means
// another writer got there first.
func casErr(err error, entity string, id int64) error {
	switch {
	case errors.Is(err, store.ErrStatusMismatch):
		return domain.ConcurrentModification(entity, id)
	case errors.Is(err, store.ErrNotFound):
		return domain.NotFound(entity, id)
	default:
		return fmt.Errorf("updating %s %d status: %w", entity, id, err)
	}
}

// audit writes a change log entry with the caller's transaction-bound stores.
type audit struct {
	ids id.Generator
}

func (a audit) record(ctx context.Context, stores StoreProvider, actor string, parent model.EntityReference, op model.Operation, child *model.EntityKind, format string, args ...any) error {
	entry := &model.ChangeLog{
		ID:        a.ids.Next(),
		Parent:    parent,
		Operation: op,
		ChildKind: child,
		Message:   fmt.Sprintf(format, args...),
		UserID:    actor,
	}
	if err := stores.ChangeLogs().Record(ctx, entry); err != nil {
		return fmt.Errorf("recording %s change log for %s: %w", op, parent, err)
	}
	return nil
}

// publish sends an event after commit. Delivery failures are logged, the
// committed change stands.
func publish(ctx context.Context, events queue.Producer, event queue.Event) {
	if events == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if err := events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "publishing survey event failed",
			"event_type", event.Type,
			"run_id", event.RunID,
			"error", err,
		)
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func kindPtr(k model.EntityKind) *model.EntityKind {
	return &k
}
