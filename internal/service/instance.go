package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"basegraph.app/surveys/common/id"
	"basegraph.app/surveys/common/logger"
	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/queue"
	"basegraph.app/surveys/internal/store"
)

// ResponseInput is one answer supplied by a respondent.
type ResponseInput struct {
	QuestionID int64
	Answer     model.Answer
	Comment    *string
}

// InstanceService is the instance lifecycle manager: it materializes runs
// into instances and drives each instance through its status machine.
type InstanceService interface {
	Reconcile(ctx context.Context, actor string, runID int64) (*domain.ReconciliationResult, error)
	SubmitResponse(ctx context.Context, actor string, instanceID int64, answers []ResponseInput, final bool) (*model.SurveyInstance, error)
	Approve(ctx context.Context, actor string, instanceID int64) (*model.SurveyInstance, error)
	Reject(ctx context.Context, actor string, instanceID int64, reason string) (*model.SurveyInstance, error)
	Withdraw(ctx context.Context, actor string, instanceID int64) (*model.SurveyInstance, error)
	Reissue(ctx context.Context, actor string, instanceID int64) (*model.SurveyInstance, error)
	Get(ctx context.Context, id int64) (*model.SurveyInstance, error)
	ListForRun(ctx context.Context, runID int64, latestOnly bool) ([]model.SurveyInstance, error)
	ListForRecipient(ctx context.Context, personID int64) ([]model.SurveyInstance, error)
	Recipients(ctx context.Context, instanceID int64) ([]model.SurveyInstanceRecipient, error)
	Responses(ctx context.Context, instanceID int64) ([]model.SurveyQuestionResponse, error)
}

type instanceService struct {
	stores    StoreProvider
	tx        TxRunner
	generator RecipientGenerator
	events    queue.Producer
	ids       id.Generator
	audit     audit
}

func NewInstanceService(stores StoreProvider, tx TxRunner, generator RecipientGenerator, events queue.Producer, ids id.Generator) InstanceService {
	return &instanceService{
		stores:    stores,
		tx:        tx,
		generator: generator,
		events:    events,
		ids:       ids,
		audit:     audit{ids: ids},
	}
}

func (s *instanceService) withFields(ctx context.Context, actor string, runID, instanceID *int64) context.Context {
	fields := logger.LogFields{RunID: runID, InstanceID: instanceID, Component: "surveys.service.instances"}
	if actor != "" {
		fields.Actor = logger.Ptr(actor)
	}
	return logger.WithLogFields(ctx, fields)
}

func (s *instanceService) SubmitResponse(ctx context.Context, actor string, instanceID int64, answers []ResponseInput, final bool) (*model.SurveyInstance, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if len(answers) == 0 && !final {
		return nil, domain.Validation("no answers supplied")
	}
	seen := make(map[int64]bool, len(answers))
	for _, a := range answers {
		if seen[a.QuestionID] {
			return nil, domain.Validation("question %d answered more than once", a.QuestionID)
		}
		seen[a.QuestionID] = true
	}
	ctx = s.withFields(ctx, actor, nil, &instanceID)

	var inst *model.SurveyInstance
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		current, err := stores.Instances().GetByID(ctx, instanceID)
		if err != nil {
			return lookupErr(err, entityInstance, instanceID)
		}
		if !current.Status.AcceptsResponses() {
			return domain.InvalidState(entityInstance, "%d is %s and no longer accepts responses", instanceID, current.Status)
		}
		if err := requireLatest(ctx, stores, instanceID); err != nil {
			return err
		}

		questions, err := s.questionsOf(ctx, stores, current.RunID)
		if err != nil {
			return err
		}
		if err := checkAnswers(questions, answers); err != nil {
			return err
		}
		if final {
			if err := s.checkMandatory(ctx, stores, instanceID, questions, answers); err != nil {
				return err
			}
		}

		next := model.InstanceStatusInProgress
		var stamp store.InstanceStamp
		if final {
			now := time.Now().UTC()
			next = model.InstanceStatusCompleted
			stamp.SubmittedAt = &now
			stamp.SubmittedBy = &actor
		}
		if next != current.Status && !current.Status.CanTransitionTo(next) {
			return domain.InvalidStateTransition(entityInstance, current.Status, next)
		}

		// Same-status updates still go through compare-and-set so a concurrent
		// withdraw or submit is detected.
		inst, err = stores.Instances().UpdateStatus(ctx, instanceID, current.Status, next, stamp)
		if err != nil {
			return casErr(err, entityInstance, instanceID)
		}

		for _, a := range answers {
			resp := &model.SurveyQuestionResponse{
				InstanceID:    instanceID,
				QuestionID:    a.QuestionID,
				Answer:        a.Answer,
				Comment:       a.Comment,
				LastUpdatedBy: actor,
			}
			if err := stores.Responses().Upsert(ctx, resp); err != nil {
				return fmt.Errorf("saving response to question %d: %w", a.QuestionID, err)
			}
		}

		msg := fmt.Sprintf("Responses saved (%d answers)", len(answers))
		if final {
			msg = fmt.Sprintf("Survey submitted (%d answers)", len(answers))
		}
		return s.audit.record(ctx, stores, actor, inst.Ref(), model.OperationUpdate, nil, "%s", msg)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey responses saved", "answers", len(answers), "final", final, "status", inst.Status)
	return inst, nil
}

func (s *instanceService) questionsOf(ctx context.Context, stores StoreProvider, runID int64) (map[int64]model.SurveyQuestion, error) {
	run, err := stores.Runs().GetByID(ctx, runID)
	if err != nil {
		return nil, lookupErr(err, entityRun, runID)
	}
	questions, err := stores.Questions().ListByTemplate(ctx, run.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("listing questions of template %d: %w", run.TemplateID, err)
	}
	byID := make(map[int64]model.SurveyQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return byID, nil
}

func checkAnswers(questions map[int64]model.SurveyQuestion, answers []ResponseInput) error {
	for _, a := range answers {
		q, ok := questions[a.QuestionID]
		if !ok {
			return domain.Validation("question %d is not part of this survey", a.QuestionID)
		}
		if err := q.CheckAnswer(a.Answer); err != nil {
			return domain.ValidationErr(err, "invalid answer")
		}
		if a.Comment != nil && strings.TrimSpace(*a.Comment) != "" && !q.AllowComment {
			return domain.Validation("question %d does not accept comments", a.QuestionID)
		}
	}
	return nil
}

// checkMandatory verifies every mandatory question has a non-empty answer
// once the new answers are applied over the stored ones.
func (s *instanceService) checkMandatory(ctx context.Context, stores StoreProvider, instanceID int64, questions map[int64]model.SurveyQuestion, answers []ResponseInput) error {
	stored, err := stores.Responses().ListByInstance(ctx, instanceID)
	if err != nil {
		return fmt.Errorf("listing responses of instance %d: %w", instanceID, err)
	}
	answered := make(map[int64]bool, len(stored)+len(answers))
	for _, r := range stored {
		answered[r.QuestionID] = !r.Answer.IsEmpty()
	}
	for _, a := range answers {
		answered[a.QuestionID] = !a.Answer.IsEmpty()
	}

	var missing []int64
	for qid, q := range questions {
		if q.IsMandatory && !answered[qid] {
			missing = append(missing, qid)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return domain.Validation("mandatory questions unanswered: %v", missing)
	}
	return nil
}

func (s *instanceService) Approve(ctx context.Context, actor string, instanceID int64) (*model.SurveyInstance, error) {
	now := time.Now().UTC()
	return s.transition(ctx, actor, instanceID, model.InstanceStatusApproved,
		store.InstanceStamp{ApprovedAt: &now, ApprovedBy: &actor},
		"Survey approved")
}

func (s *instanceService) Reject(ctx context.Context, actor string, instanceID int64, reason string) (*model.SurveyInstance, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.Validation("a reason is required to reject a survey")
	}
	return s.transition(ctx, actor, instanceID, model.InstanceStatusInProgress,
		store.InstanceStamp{},
		"Survey rejected: "+reason)
}

func (s *instanceService) Withdraw(ctx context.Context, actor string, instanceID int64) (*model.SurveyInstance, error) {
	return s.transition(ctx, actor, instanceID, model.InstanceStatusWithdrawn,
		store.InstanceStamp{},
		"Survey withdrawn")
}

// transition moves an instance to next. A move to IN_PROGRESS through this
// path is a rejection, which is legal only from COMPLETED.
func (s *instanceService) transition(ctx context.Context, actor string, instanceID int64, next model.InstanceStatus, stamp store.InstanceStamp, message string) (*model.SurveyInstance, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	ctx = s.withFields(ctx, actor, nil, &instanceID)

	var inst *model.SurveyInstance
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		current, err := stores.Instances().GetByID(ctx, instanceID)
		if err != nil {
			return lookupErr(err, entityInstance, instanceID)
		}
		allowed := current.Status.CanTransitionTo(next)
		if next == model.InstanceStatusInProgress {
			allowed = current.Status == model.InstanceStatusCompleted
		}
		if !allowed {
			return domain.InvalidStateTransition(entityInstance, current.Status, next)
		}
		if err := requireLatest(ctx, stores, instanceID); err != nil {
			return err
		}

		inst, err = stores.Instances().UpdateStatus(ctx, instanceID, current.Status, next, stamp)
		if err != nil {
			return casErr(err, entityInstance, instanceID)
		}

		return s.audit.record(ctx, stores, actor, inst.Ref(), model.OperationUpdate, nil, "%s", message)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey instance status changed", "status", inst.Status)
	return inst, nil
}

// requireLatest refuses writes to an instance that a reissue has replaced.
// The old copy stays readable as history only.
func requireLatest(ctx context.Context, stores StoreProvider, instanceID int64) error {
	superseded, err := stores.Instances().HasSuccessor(ctx, instanceID)
	if err != nil {
		return fmt.Errorf("checking successor of instance %d: %w", instanceID, err)
	}
	if superseded {
		return domain.InvalidState(entityInstance, "%d has been superseded by a reissue", instanceID)
	}
	return nil
}

func (s *instanceService) Reissue(ctx context.Context, actor string, instanceID int64) (*model.SurveyInstance, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	ctx = s.withFields(ctx, actor, nil, &instanceID)

	var next *model.SurveyInstance
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		prev, err := stores.Instances().GetByID(ctx, instanceID)
		if err != nil {
			return lookupErr(err, entityInstance, instanceID)
		}

		superseded, err := stores.Instances().HasSuccessor(ctx, instanceID)
		if err != nil {
			return fmt.Errorf("checking successor of instance %d: %w", instanceID, err)
		}
		if superseded {
			return domain.Conflict(entityInstance, "%d has already been reissued", instanceID)
		}

		run, err := stores.Runs().Lock(ctx, prev.RunID)
		if err != nil {
			return lookupErr(err, entityRun, prev.RunID)
		}
		if run.Status == model.RunStatusClosed {
			return domain.InvalidState(entityRun, "%d is CLOSED, instances cannot be reissued", run.ID)
		}

		recipients, err := stores.Recipients().ListByInstance(ctx, instanceID)
		if err != nil {
			return fmt.Errorf("listing recipients of instance %d: %w", instanceID, err)
		}

		next = &model.SurveyInstance{
			ID:                 s.ids.Next(),
			RunID:              prev.RunID,
			Entity:             prev.Entity,
			Qualifier:          prev.Qualifier,
			Status:             model.InstanceStatusNotStarted,
			DueDate:            run.DueDate,
			ApprovalDueDate:    run.ApprovalDueDate,
			OriginalInstanceID: &prev.ID,
		}
		if err := stores.Instances().Create(ctx, next); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.Conflict(entityInstance, "%d has already been reissued", instanceID)
			}
			return fmt.Errorf("creating reissued instance: %w", err)
		}
		for _, r := range recipients {
			if err := stores.Recipients().Add(ctx, next.ID, r.PersonID); err != nil {
				return fmt.Errorf("copying recipient %d: %w", r.PersonID, err)
			}
		}

		return s.audit.record(ctx, stores, actor, next.Ref(), model.OperationAdd, nil,
			"Survey instance reissued from %d", prev.ID)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey instance reissued", "new_instance_id", next.ID)
	publish(ctx, s.events, queue.Event{
		Type:       queue.EventInstanceReissued,
		RunID:      next.RunID,
		InstanceID: &next.ID,
		Actor:      actor,
	})
	return next, nil
}

func (s *instanceService) Get(ctx context.Context, id int64) (*model.SurveyInstance, error) {
	inst, err := s.stores.Instances().GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityInstance, id)
	}
	return inst, nil
}

func (s *instanceService) ListForRun(ctx context.Context, runID int64, latestOnly bool) ([]model.SurveyInstance, error) {
	if _, err := s.stores.Runs().GetByID(ctx, runID); err != nil {
		return nil, lookupErr(err, entityRun, runID)
	}

	var (
		instances []model.SurveyInstance
		err       error
	)
	if latestOnly {
		instances, err = s.stores.Instances().ListLatestByRun(ctx, runID)
	} else {
		instances, err = s.stores.Instances().ListByRun(ctx, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("listing instances of run %d: %w", runID, err)
	}
	return instances, nil
}

func (s *instanceService) ListForRecipient(ctx context.Context, personID int64) ([]model.SurveyInstance, error) {
	instances, err := s.stores.Instances().ListLatestForRecipient(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("listing instances for person %d: %w", personID, err)
	}
	return instances, nil
}

func (s *instanceService) Recipients(ctx context.Context, instanceID int64) ([]model.SurveyInstanceRecipient, error) {
	if _, err := s.Get(ctx, instanceID); err != nil {
		return nil, err
	}
	recipients, err := s.stores.Recipients().ListByInstance(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("listing recipients of instance %d: %w", instanceID, err)
	}
	return recipients, nil
}

func (s *instanceService) Responses(ctx context.Context, instanceID int64) ([]model.SurveyQuestionResponse, error) {
	if _, err := s.Get(ctx, instanceID); err != nil {
		return nil, err
	}
	responses, err := s.stores.Responses().ListByInstance(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("listing responses of instance %d: %w", instanceID, err)
	}
	return responses, nil
}
