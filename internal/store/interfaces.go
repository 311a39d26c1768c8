package store

import (
	"context"
	"errors"
	"time"

	"basegraph.app/surveys/internal/model"
)

var (
	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrStatusMismatch is returned by compare-and-set status updates when the
	// row exists but is no longer in the expected status.
	ErrStatusMismatch = errors.New("status mismatch")

	// ErrAlreadyExists is returned when a unique constraint rejects a write.
	ErrAlreadyExists = errors.New("already exists")

	// ErrReferenced is returned when a foreign key prevents a delete.
	ErrReferenced = errors.New("still referenced")
)

// TemplateStore defines the contract for survey template data access
type TemplateStore interface {
	Create(ctx context.Context, tpl *model.SurveyTemplate) error
	GetByID(ctx context.Context, id int64) (*model.SurveyTemplate, error)
	// GetForUpdate locks the template row until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*model.SurveyTemplate, error)
	List(ctx context.Context) ([]model.SurveyTemplate, error)
	Update(ctx context.Context, tpl *model.SurveyTemplate) error
	UpdateStatus(ctx context.Context, id int64, expected, next model.TemplateStatus) (*model.SurveyTemplate, error)
	Delete(ctx context.Context, id int64) error
}

// QuestionStore defines the contract for survey question data access
type QuestionStore interface {
	Create(ctx context.Context, q *model.SurveyQuestion) error
	GetByID(ctx context.Context, id int64) (*model.SurveyQuestion, error)
	Update(ctx context.Context, q *model.SurveyQuestion) error
	Delete(ctx context.Context, id int64) error
	ListByTemplate(ctx context.Context, templateID int64) ([]model.SurveyQuestion, error)
}

// RunStore defines the contract for survey run data access
type RunStore interface {
	Create(ctx context.Context, run *model.SurveyRun) error
	GetByID(ctx context.Context, id int64) (*model.SurveyRun, error)
	// Lock reads the run with SELECT ... FOR UPDATE, serialising writers of the same run.
	Lock(ctx context.Context, id int64) (*model.SurveyRun, error)
	// Update rewrites the mutable fields while the run is still in expected status.
	Update(ctx context.Context, run *model.SurveyRun, expected model.RunStatus) error
	UpdateStatus(ctx context.Context, id int64, expected, next model.RunStatus, issuedOn *time.Time) (*model.SurveyRun, error)
	ListByTemplate(ctx context.Context, templateID int64) ([]model.SurveyRun, error)
	CountByTemplate(ctx context.Context, templateID int64) (int64, error)
}

// InstanceStamp carries the submission and approval fields set alongside a
// status change. Nil fields keep their stored value.
type InstanceStamp struct {
	SubmittedAt *time.Time
	SubmittedBy *string
	ApprovedAt  *time.Time
	ApprovedBy  *string
}

// InstanceStore defines the contract for survey instance data access
type InstanceStore interface {
	Create(ctx context.Context, inst *model.SurveyInstance) error
	GetByID(ctx context.Context, id int64) (*model.SurveyInstance, error)
	ListByRun(ctx context.Context, runID int64) ([]model.SurveyInstance, error)
	// ListLatestByRun returns instances that no other instance supersedes.
	ListLatestByRun(ctx context.Context, runID int64) ([]model.SurveyInstance, error)
	ListLatestForRecipient(ctx context.Context, personID int64) ([]model.SurveyInstance, error)
	UpdateStatus(ctx context.Context, id int64, expected, next model.InstanceStatus, stamp InstanceStamp) (*model.SurveyInstance, error)
	HasSuccessor(ctx context.Context, id int64) (bool, error)
	CountLatestByStatus(ctx context.Context, runID int64) ([]model.StatusCount, error)
}

// RecipientStore defines the contract for instance recipient data access
type RecipientStore interface {
	Add(ctx context.Context, instanceID, personID int64) error
	ListByInstance(ctx context.Context, instanceID int64) ([]model.SurveyInstanceRecipient, error)
	// PersonIDsByInstance groups recipient person ids by instance id.
	PersonIDsByInstance(ctx context.Context, instanceIDs []int64) (map[int64][]int64, error)
}

// ResponseStore defines the contract for question response data access
type ResponseStore interface {
	Upsert(ctx context.Context, resp *model.SurveyQuestionResponse) error
	ListByInstance(ctx context.Context, instanceID int64) ([]model.SurveyQuestionResponse, error)
}

// ChangeLogStore is the audit sink. Record must run in the same transaction
// as the change it describes.
type ChangeLogStore interface {
	Record(ctx context.Context, entry *model.ChangeLog) error
	ListByParent(ctx context.Context, parent model.EntityReference, limit int32) ([]model.ChangeLog, error)
}
