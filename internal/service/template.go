package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"basegraph.app/surveys/common/id"
	"basegraph.app/surveys/common/logger"
	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/store"
)

// TemplateDraft holds the mutable fields of a survey template.
type TemplateDraft struct {
	Name             string
	Description      *string
	ExternalID       *string
	TargetEntityKind model.EntityKind
}

func (d TemplateDraft) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return domain.Validation("template name is required")
	}
	if _, err := model.ParseEntityKind(string(d.TargetEntityKind)); err != nil {
		return domain.ValidationErr(err, "invalid target entity kind")
	}
	if !d.TargetEntityKind.IsSurveyTarget() {
		return domain.Validation("templates cannot target %s entities", d.TargetEntityKind)
	}
	return nil
}

// QuestionDraft holds the fields of a survey question.
type QuestionDraft struct {
	SectionName  *string
	QuestionText string
	HelpText     *string
	FieldType    model.FieldType
	Position     int32
	IsMandatory  bool
	AllowComment bool
}

func (d QuestionDraft) validate() error {
	if strings.TrimSpace(d.QuestionText) == "" {
		return domain.Validation("question text is required")
	}
	if _, err := model.ParseFieldType(string(d.FieldType)); err != nil {
		return domain.ValidationErr(err, "invalid field type")
	}
	if d.Position < 0 {
		return domain.Validation("question position must not be negative")
	}
	return nil
}

func (d QuestionDraft) applyTo(q *model.SurveyQuestion) {
	q.SectionName = d.SectionName
	q.QuestionText = strings.TrimSpace(d.QuestionText)
	q.HelpText = d.HelpText
	q.FieldType = d.FieldType
	q.Position = d.Position
	q.IsMandatory = d.IsMandatory
	q.AllowComment = d.AllowComment
}

// TemplateService owns survey templates and their questions.
type TemplateService interface {
	Create(ctx context.Context, actor string, draft TemplateDraft) (*model.SurveyTemplate, error)
	Update(ctx context.Context, actor string, id int64, draft TemplateDraft) (*model.SurveyTemplate, error)
	UpdateStatus(ctx context.Context, actor string, id int64, next model.TemplateStatus) (*model.SurveyTemplate, error)
	Clone(ctx context.Context, actor string, id int64) (*model.SurveyTemplate, error)
	Delete(ctx context.Context, actor string, id int64) (bool, error)
	Get(ctx context.Context, id int64) (*model.SurveyTemplate, error)
	List(ctx context.Context) ([]model.SurveyTemplate, error)
	Questions(ctx context.Context, templateID int64) ([]model.SurveyQuestion, error)
	AddQuestion(ctx context.Context, actor string, templateID int64, draft QuestionDraft) (*model.SurveyQuestion, error)
	UpdateQuestion(ctx context.Context, actor string, questionID int64, draft QuestionDraft) (*model.SurveyQuestion, error)
	RemoveQuestion(ctx context.Context, actor string, questionID int64) error
}

type templateService struct {
	stores StoreProvider
	tx     TxRunner
	ids    id.Generator
	audit  audit
}

func NewTemplateService(stores StoreProvider, tx TxRunner, ids id.Generator) TemplateService {
	return &templateService{
		stores: stores,
		tx:     tx,
		ids:    ids,
		audit:  audit{ids: ids},
	}
}

func (s *templateService) withFields(ctx context.Context, actor string, templateID *int64) context.Context {
	fields := logger.LogFields{TemplateID: templateID, Component: "surveys.service.templates"}
	if actor != "" {
		fields.Actor = logger.Ptr(actor)
	}
	return logger.WithLogFields(ctx, fields)
}

func (s *templateService) Create(ctx context.Context, actor string, draft TemplateDraft) (*model.SurveyTemplate, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := draft.validate(); err != nil {
		return nil, err
	}

	tpl := &model.SurveyTemplate{
		ID:               s.ids.Next(),
		Name:             strings.TrimSpace(draft.Name),
		Description:      draft.Description,
		ExternalID:       draft.ExternalID,
		TargetEntityKind: draft.TargetEntityKind,
		Status:           model.TemplateStatusDraft,
		OwnerID:          actor,
	}
	ctx = s.withFields(ctx, actor, &tpl.ID)

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Templates().Create(ctx, tpl); err != nil {
			return fmt.Errorf("creating template: %w", err)
		}
		return s.audit.record(ctx, stores, actor, tpl.Ref(), model.OperationAdd, nil,
			"Survey template created: %s", tpl.Name)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey template created", "name", tpl.Name, "target_entity_kind", tpl.TargetEntityKind)
	return tpl, nil
}

func (s *templateService) Update(ctx context.Context, actor string, id int64, draft TemplateDraft) (*model.SurveyTemplate, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := draft.validate(); err != nil {
		return nil, err
	}
	ctx = s.withFields(ctx, actor, &id)

	var tpl *model.SurveyTemplate
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		current, err := stores.Templates().GetForUpdate(ctx, id)
		if err != nil {
			return lookupErr(err, entityTemplate, id)
		}

		current.Name = strings.TrimSpace(draft.Name)
		current.Description = draft.Description
		current.ExternalID = draft.ExternalID
		current.TargetEntityKind = draft.TargetEntityKind
		if err := stores.Templates().Update(ctx, current); err != nil {
			return fmt.Errorf("updating template: %w", err)
		}
		tpl = current

		return s.audit.record(ctx, stores, actor, tpl.Ref(), model.OperationUpdate, nil,
			"Survey template updated: %s", tpl.Name)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey template updated")
	return tpl, nil
}

func (s *templateService) UpdateStatus(ctx context.Context, actor string, id int64, next model.TemplateStatus) (*model.SurveyTemplate, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if _, err := model.ParseTemplateStatus(string(next)); err != nil {
		return nil, domain.ValidationErr(err, "invalid template status")
	}
	ctx = s.withFields(ctx, actor, &id)

	var tpl *model.SurveyTemplate
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		current, err := stores.Templates().GetByID(ctx, id)
		if err != nil {
			return lookupErr(err, entityTemplate, id)
		}
		if !current.Status.CanTransitionTo(next) {
			return domain.InvalidStateTransition(entityTemplate, current.Status, next)
		}

		tpl, err = stores.Templates().UpdateStatus(ctx, id, current.Status, next)
		if err != nil {
			return casErr(err, entityTemplate, id)
		}

		return s.audit.record(ctx, stores, actor, tpl.Ref(), model.OperationUpdate, nil,
			"Survey template status changed from %s to %s", current.Status, next)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey template status changed", "status", tpl.Status)
	return tpl, nil
}

func (s *templateService) Clone(ctx context.Context, actor string, id int64) (*model.SurveyTemplate, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	ctx = s.withFields(ctx, actor, &id)

	var clone *model.SurveyTemplate
	copied := 0
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		src, err := stores.Templates().GetByID(ctx, id)
		if err != nil {
			return lookupErr(err, entityTemplate, id)
		}
		questions, err := stores.Questions().ListByTemplate(ctx, id)
		if err != nil {
			return fmt.Errorf("listing questions of template %d: %w", id, err)
		}

		clone = &model.SurveyTemplate{
			ID:               s.ids.Next(),
			Name:             src.Name + model.CloneSuffix,
			Description:      src.Description,
			ExternalID:       src.ExternalID,
			TargetEntityKind: src.TargetEntityKind,
			Status:           model.TemplateStatusDraft,
			OwnerID:          actor,
		}
		if err := stores.Templates().Create(ctx, clone); err != nil {
			return fmt.Errorf("creating clone: %w", err)
		}

		for _, q := range questions {
			cp := q
			cp.ID = s.ids.Next()
			cp.TemplateID = clone.ID
			if err := stores.Questions().Create(ctx, &cp); err != nil {
				return fmt.Errorf("copying question %d: %w", q.ID, err)
			}
			copied++
		}

		return s.audit.record(ctx, stores, actor, clone.Ref(), model.OperationAdd, nil,
			"Survey template cloned from %d (%s)", src.ID, src.Name)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey template cloned", "clone_id", clone.ID, "questions", copied)
	return clone, nil
}

func (s *templateService) Delete(ctx context.Context, actor string, id int64) (bool, error) {
	if err := requireActor(actor); err != nil {
		return false, err
	}
	ctx = s.withFields(ctx, actor, &id)

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		tpl, err := stores.Templates().GetForUpdate(ctx, id)
		if err != nil {
			return lookupErr(err, entityTemplate, id)
		}

		runs, err := stores.Runs().CountByTemplate(ctx, id)
		if err != nil {
			return fmt.Errorf("counting runs of template %d: %w", id, err)
		}
		if runs > 0 {
			return domain.Conflict(entityTemplate, "%d cannot be deleted, %d runs exist", id, runs)
		}

		if err := stores.Templates().Delete(ctx, id); err != nil {
			if errors.Is(err, store.ErrReferenced) {
				return domain.Conflict(entityTemplate, "%d cannot be deleted, runs exist", id)
			}
			return lookupErr(err, entityTemplate, id)
		}

		return s.audit.record(ctx, stores, actor, tpl.Ref(), model.OperationRemove, nil,
			"Survey template deleted: %s", tpl.Name)
	})
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "survey template deleted")
	return true, nil
}

func (s *templateService) Get(ctx context.Context, id int64) (*model.SurveyTemplate, error) {
	tpl, err := s.stores.Templates().GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, entityTemplate, id)
	}
	return tpl, nil
}

func (s *templateService) List(ctx context.Context) ([]model.SurveyTemplate, error) {
	templates, err := s.stores.Templates().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return templates, nil
}

func (s *templateService) Questions(ctx context.Context, templateID int64) ([]model.SurveyQuestion, error) {
	if _, err := s.Get(ctx, templateID); err != nil {
		return nil, err
	}
	questions, err := s.stores.Questions().ListByTemplate(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("listing questions of template %d: %w", templateID, err)
	}
	return questions, nil
}

func (s *templateService) AddQuestion(ctx context.Context, actor string, templateID int64, draft QuestionDraft) (*model.SurveyQuestion, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := draft.validate(); err != nil {
		return nil, err
	}
	ctx = s.withFields(ctx, actor, &templateID)

	q := &model.SurveyQuestion{ID: s.ids.Next(), TemplateID: templateID}
	draft.applyTo(q)

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		tpl, err := s.editableTemplate(ctx, stores, templateID)
		if err != nil {
			return err
		}
		if err := stores.Questions().Create(ctx, q); err != nil {
			return fmt.Errorf("creating question: %w", err)
		}
		return s.audit.record(ctx, stores, actor, tpl.Ref(), model.OperationAdd, kindPtr(model.EntityKindSurveyQuestion),
			"Question added: %s", q.QuestionText)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey question added", "question_id", q.ID, "field_type", q.FieldType)
	return q, nil
}

func (s *templateService) UpdateQuestion(ctx context.Context, actor string, questionID int64, draft QuestionDraft) (*model.SurveyQuestion, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := draft.validate(); err != nil {
		return nil, err
	}

	var q *model.SurveyQuestion
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		current, err := stores.Questions().GetByID(ctx, questionID)
		if err != nil {
			return lookupErr(err, entityQuestion, questionID)
		}
		ctx = s.withFields(ctx, actor, &current.TemplateID)

		tpl, err := s.editableTemplate(ctx, stores, current.TemplateID)
		if err != nil {
			return err
		}

		draft.applyTo(current)
		if err := stores.Questions().Update(ctx, current); err != nil {
			return fmt.Errorf("updating question: %w", err)
		}
		q = current

		return s.audit.record(ctx, stores, actor, tpl.Ref(), model.OperationUpdate, kindPtr(model.EntityKindSurveyQuestion),
			"Question %d updated: %s", q.ID, q.QuestionText)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey question updated", "question_id", q.ID)
	return q, nil
}

func (s *templateService) RemoveQuestion(ctx context.Context, actor string, questionID int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(stores StoreProvider) error {
		q, err := stores.Questions().GetByID(ctx, questionID)
		if err != nil {
			return lookupErr(err, entityQuestion, questionID)
		}
		ctx = s.withFields(ctx, actor, &q.TemplateID)

		tpl, err := s.editableTemplate(ctx, stores, q.TemplateID)
		if err != nil {
			return err
		}
		if err := stores.Questions().Delete(ctx, questionID); err != nil {
			return lookupErr(err, entityQuestion, questionID)
		}

		slog.InfoContext(ctx, "survey question removed", "question_id", questionID)
		return s.audit.record(ctx, stores, actor, tpl.Ref(), model.OperationRemove, kindPtr(model.EntityKindSurveyQuestion),
			"Question removed: %s", q.QuestionText)
	})
}

// editableTemplate locks the template and checks its questions may still change.
func (s *templateService) editableTemplate(ctx context.Context, stores StoreProvider, templateID int64) (*model.SurveyTemplate, error) {
	tpl, err := stores.Templates().GetForUpdate(ctx, templateID)
	if err != nil {
		return nil, lookupErr(err, entityTemplate, templateID)
	}
	if tpl.Status != model.TemplateStatusDraft {
		return nil, domain.InvalidState(entityTemplate, "%d is %s, questions can only change while DRAFT", tpl.ID, tpl.Status)
	}
	// Removing a question cascades to its responses, so questions freeze once any run exists.
	runs, err := stores.Runs().CountByTemplate(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("counting runs of template %d: %w", templateID, err)
	}
	if runs > 0 {
		return nil, domain.InvalidState(entityTemplate, "%d has %d runs, its questions can no longer change", tpl.ID, runs)
	}
	return tpl, nil
}
