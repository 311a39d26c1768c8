package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"basegraph.app/surveys/common/id"
	"basegraph.app/surveys/common/logger"
	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/queue"
	"basegraph.app/surveys/internal/selection"
)

// RecipientGenerator computes the candidate recipients of a run.
type RecipientGenerator interface {
	GenerateRecipients(ctx context.Context, target model.EntityKind, run *model.SurveyRun) ([]domain.CandidateRecipient, error)
}

// RunDraft holds the fields a caller supplies when creating or editing a run.
type RunDraft struct {
	TemplateID         int64
	Name               string
	Description        *string
	SelectionOptions   model.SelectionOptions
	InvolvementKindIDs []int64
	IssuanceKind       model.IssuanceKind
	DueDate            time.Time
	ApprovalDueDate    time.Time
	ContactEmail       *string
}

func (d RunDraft) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return domain.Validation("run name is required")
	}
	if err := d.SelectionOptions.Validate(); err != nil {
		return domain.ValidationErr(err, "invalid selection options")
	}
	if len(d.InvolvementKindIDs) == 0 {
		return domain.Validation("at least one involvement kind is required")
	}
	for _, k := range d.InvolvementKindIDs {
		if k <= 0 {
			return domain.Validation("involvement kind id %d is not valid", k)
		}
	}
	if _, err := model.ParseIssuanceKind(string(d.IssuanceKind)); err != nil {
		return domain.ValidationErr(err, "invalid issuance kind")
	}
	if d.DueDate.IsZero() || d.ApprovalDueDate.IsZero() {
		return domain.Validation("due date and approval due date are required")
	}
	if d.DueDate.After(d.ApprovalDueDate) {
		return domain.Validation("due date %s is after approval due date %s",
			d.DueDate.Format(time.DateOnly), d.ApprovalDueDate.Format(time.DateOnly))
	}
	if d.ContactEmail != nil && *d.ContactEmail != "" {
		if _, err := mail.ParseAddress(*d.ContactEmail); err != nil {
			return domain.ValidationErr(err, "invalid contact email")
		}
	}
	return nil
}

func (d RunDraft) applyTo(run *model.SurveyRun) {
	run.Name = strings.TrimSpace(d.Name)
	run.Description = d.Description
	run.SelectionOptions = d.SelectionOptions
	run.InvolvementKindIDs = uniqueIDs(d.InvolvementKindIDs)
	run.IssuanceKind = d.IssuanceKind
	run.DueDate = d.DueDate
	run.ApprovalDueDate = d.ApprovalDueDate
	run.ContactEmail = d.ContactEmail
}

// RunService manages survey runs: scoped issuances of a template.
type RunService interface {
	Create(ctx context.Context, actor string, draft RunDraft) (*model.SurveyRun, error)
	Update(ctx context.Context, actor string, id int64, draft RunDraft) (*model.SurveyRun, error)
	Issue(ctx context.Context, actor string, id int64) (*model.SurveyRun, error)
	Close(ctx context.Context, actor string, id int64) (*model.SurveyRun, error)
	Get(ctx context.Context, id int64) (*model.SurveyRun, error)
	ListByTemplate(ctx context.Context, templateID int64) ([]model.SurveyRun, error)
	// GenerateRecipients previews the recipients the run would get, without persisting anything.
	GenerateRecipients(ctx context.Context, id int64) ([]domain.CandidateRecipient, error)
	CompletionStats(ctx context.Context, id int64) ([]model.StatusCount, error)
}

type runService struct {
	stores    StoreProvider
	tx        TxRunner
	generator RecipientGenerator
	events    queue.Producer
	ids       id.Generator
	audit     audit
}

func NewRunService(stores StoreProvider, tx TxRunner, generator RecipientGenerator, events queue.Producer, ids id.Generator) RunService {
	return &runService{
		stores:    stores,
		tx:        tx,
		generator: generator,
		events:    events,
		ids:       ids,
		audit:     audit{ids: ids},
	}
}

func (s *runService) withFields(ctx context.Context, actor string, templateID, runID *int64) context.Context {
	fields := logger.LogFields{TemplateID: templateID, RunID: runID, Component: "surveys.service.runs"}
	if actor != "" {
		fields.Actor = logger.Ptr(actor)
	}
	return logger.WithLogFields(ctx, fields)
}

func (s *runService) Create(ctx context.Context, actor string, draft RunDraft) (*model.SurveyRun, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := draft.validate(); err != nil {
		return nil, err
	}

	run := &model.SurveyRun{
		ID:         s.ids.Next(),
		TemplateID: draft.TemplateID,
		OwnerID:    actor,
		Status:     model.RunStatusDraft,
	}
	draft.applyTo(run)
	ctx = s.withFields(ctx, actor, &run.TemplateID, &run.ID)

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		tpl, err := stores.Templates().GetForUpdate(ctx, draft.TemplateID)
		if err != nil {
			return lookupErr(err, entityTemplate, draft.TemplateID)
		}
		if tpl.Status == model.TemplateStatusDeprecated {
			return domain.InvalidState(entityTemplate, "%d is DEPRECATED, no new runs can be created", tpl.ID)
		}
		if err := selection.Supports(tpl.TargetEntityKind, run.SelectionOptions); err != nil {
			return domain.ValidationErr(err, "selection does not fit template")
		}

		if err := stores.Runs().Create(ctx, run); err != nil {
			return fmt.Errorf("creating run: %w", err)
		}
		return s.audit.record(ctx, stores, actor, run.Ref(), model.OperationAdd, nil,
			"Survey run created: %s (template %d)", run.Name, tpl.ID)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey run created",
		"issuance_kind", run.IssuanceKind,
		"selection", run.SelectionOptions.Entity.String(),
		"scope", run.SelectionOptions.Scope,
	)
	return run, nil
}

func (s *runService) Update(ctx context.Context, actor string, id int64, draft RunDraft) (*model.SurveyRun, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := draft.validate(); err != nil {
		return nil, err
	}
	ctx = s.withFields(ctx, actor, nil, &id)

	var run *model.SurveyRun
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		current, err := stores.Runs().GetByID(ctx, id)
		if err != nil {
			return lookupErr(err, entityRun, id)
		}
		if current.Status != model.RunStatusDraft {
			return domain.InvalidState(entityRun, "%d is %s, only DRAFT runs can be edited", id, current.Status)
		}

		tpl, err := stores.Templates().GetByID(ctx, current.TemplateID)
		if err != nil {
			return lookupErr(err, entityTemplate, current.TemplateID)
		}
		if err := selection.Supports(tpl.TargetEntityKind, draft.SelectionOptions); err != nil {
			return domain.ValidationErr(err, "selection does not fit template")
		}

		draft.applyTo(current)
		if err := stores.Runs().Update(ctx, current, model.RunStatusDraft); err != nil {
			return casErr(err, entityRun, id)
		}
		run = current

		return s.audit.record(ctx, stores, actor, run.Ref(), model.OperationUpdate, nil,
			"Survey run updated: %s", run.Name)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey run updated")
	return run, nil
}

func (s *runService) Issue(ctx context.Context, actor string, id int64) (*model.SurveyRun, error) {
	issuedOn := today()
	run, err := s.transition(ctx, actor, id, model.RunStatusIssued, &issuedOn)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.events, queue.Event{Type: queue.EventRunIssued, RunID: run.ID, Actor: actor})
	return run, nil
}

func (s *runService) Close(ctx context.Context, actor string, id int64) (*model.SurveyRun, error) {
	run, err := s.transition(ctx, actor, id, model.RunStatusClosed, nil)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.events, queue.Event{Type: queue.EventRunClosed, RunID: run.ID, Actor: actor})
	return run, nil
}

func (s *runService) transition(ctx context.Context, actor string, id int64, next model.RunStatus, issuedOn *time.Time) (*model.SurveyRun, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	ctx = s.withFields(ctx, actor, nil, &id)

	var run *model.SurveyRun
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		current, err := stores.Runs().GetByID(ctx, id)
		if err != nil {
			return lookupErr(err, entityRun, id)
		}
		if !current.Status.CanTransitionTo(next) {
			return domain.InvalidStateTransition(entityRun, current.Status, next)
		}
		if next == model.RunStatusIssued {
			// Recipients only see instances of ACTIVE templates.
			tpl, err := stores.Templates().GetForUpdate(ctx, current.TemplateID)
			if err != nil {
				return lookupErr(err, entityTemplate, current.TemplateID)
			}
			if tpl.Status != model.TemplateStatusActive {
				return domain.InvalidState(entityTemplate, "%d is %s, runs can only be issued on an ACTIVE template", tpl.ID, tpl.Status)
			}
		}

		run, err = stores.Runs().UpdateStatus(ctx, id, current.Status, next, issuedOn)
		if err != nil {
			return casErr(err, entityRun, id)
		}

		return s.audit.record(ctx, stores, actor, run.Ref(), model.OperationUpdate, nil,
			"Survey run status changed from %s to %s", current.Status, next)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey run status changed", "status", run.Status)
	return run, nil
}

func (s *runService) Get(ctx context.Context, id int64) (*model.SurveyRun, error) {
	run, err := s.stores.Runs().GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityRun, id)
	}
	return run, nil
}

func (s *runService) ListByTemplate(ctx context.Context, templateID int64) ([]model.SurveyRun, error) {
	if _, err := s.stores.Templates().GetByID(ctx, templateID); err != nil {
		return nil, lookupErr(err, entityTemplate, templateID)
	}
	runs, err := s.stores.Runs().ListByTemplate(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("listing runs of template %d: %w", templateID, err)
	}
	return runs, nil
}

func (s *runService) GenerateRecipients(ctx context.Context, id int64) ([]domain.CandidateRecipient, error) {
	ctx = s.withFields(ctx, "", nil, &id)

	run, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tpl, err := s.stores.Templates().GetByID(ctx, run.TemplateID)
	if err != nil {
		return nil, lookupErr(err, entityTemplate, run.TemplateID)
	}
	return s.generator.GenerateRecipients(ctx, tpl.TargetEntityKind, run)
}

func (s *runService) CompletionStats(ctx context.Context, id int64) ([]model.StatusCount, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	counts, err := s.stores.Instances().CountLatestByStatus(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("counting instances of run %d: %w", id, err)
	}
	return counts, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, v := range ids {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
