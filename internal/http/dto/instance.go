package dto

import (
	"time"

	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/service"
)

type AnswerRequest struct {
	Comment    *string      `json:"comment,omitempty"`
	Answer     model.Answer `json:"answer"`
	QuestionID int64        `json:"question_id,string" binding:"required"`
}

type SubmitResponsesRequest struct {
	Answers []AnswerRequest `json:"answers" binding:"dive"`
	Final   bool            `json:"final"`
}

func (r SubmitResponsesRequest) ToInputs() []service.ResponseInput {
	out := make([]service.ResponseInput, len(r.Answers))
	for i, a := range r.Answers {
		out[i] = service.ResponseInput{QuestionID: a.QuestionID, Answer: a.Answer, Comment: a.Comment}
	}
	return out
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type InstanceResponse struct {
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	Qualifier          *model.EntityReference `json:"qualifier,omitempty"`
	SubmittedAt        *time.Time             `json:"submitted_at,omitempty"`
	SubmittedBy        *string                `json:"submitted_by,omitempty"`
	ApprovedAt         *time.Time             `json:"approved_at,omitempty"`
	ApprovedBy         *string                `json:"approved_by,omitempty"`
	OriginalInstanceID *string                `json:"original_instance_id,omitempty"`
	Entity             model.EntityReference  `json:"entity"`
	Status             model.InstanceStatus   `json:"status"`
	DueDate            string                 `json:"due_date"`
	ApprovalDueDate    string                 `json:"approval_due_date"`
	ID                 int64                  `json:"id,string"`
	RunID              int64                  `json:"run_id,string"`
}

func ToInstanceResponse(i *model.SurveyInstance) *InstanceResponse {
	resp := &InstanceResponse{
		ID:              i.ID,
		RunID:           i.RunID,
		Entity:          i.Entity,
		Qualifier:       i.Qualifier,
		Status:          i.Status,
		DueDate:         i.DueDate.Format(time.DateOnly),
		ApprovalDueDate: i.ApprovalDueDate.Format(time.DateOnly),
		SubmittedAt:     i.SubmittedAt,
		SubmittedBy:     i.SubmittedBy,
		ApprovedAt:      i.ApprovedAt,
		ApprovedBy:      i.ApprovedBy,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
	if i.OriginalInstanceID != nil {
		orig := formatID(*i.OriginalInstanceID)
		resp.OriginalInstanceID = &orig
	}
	return resp
}

func ToInstanceResponses(instances []model.SurveyInstance) []InstanceResponse {
	out := make([]InstanceResponse, len(instances))
	for i := range instances {
		out[i] = *ToInstanceResponse(&instances[i])
	}
	return out
}

type ReconciliationResponse struct {
	Created        []InstanceResponse `json:"created"`
	Unchanged      []InstanceResponse `json:"unchanged"`
	RemovedOrphans []InstanceResponse `json:"removed_orphans"`
}

func ToReconciliationResponse(r *domain.ReconciliationResult) *ReconciliationResponse {
	return &ReconciliationResponse{
		Created:        ToInstanceResponses(r.Created),
		Unchanged:      ToInstanceResponses(r.Unchanged),
		RemovedOrphans: ToInstanceResponses(r.RemovedOrphans),
	}
}

type RecipientResponse struct {
	CreatedAt  time.Time `json:"created_at"`
	InstanceID int64     `json:"instance_id,string"`
	PersonID   int64     `json:"person_id"`
}

func ToRecipientResponses(recipients []model.SurveyInstanceRecipient) []RecipientResponse {
	out := make([]RecipientResponse, len(recipients))
	for i, r := range recipients {
		out[i] = RecipientResponse{InstanceID: r.InstanceID, PersonID: r.PersonID, CreatedAt: r.CreatedAt}
	}
	return out
}

type ResponseResponse struct {
	LastUpdatedAt time.Time    `json:"last_updated_at"`
	Comment       *string      `json:"comment,omitempty"`
	Answer        model.Answer `json:"answer"`
	LastUpdatedBy string       `json:"last_updated_by"`
	QuestionID    int64        `json:"question_id,string"`
}

func ToResponseResponses(responses []model.SurveyQuestionResponse) []ResponseResponse {
	out := make([]ResponseResponse, len(responses))
	for i, r := range responses {
		out[i] = ResponseResponse{
			QuestionID:    r.QuestionID,
			Answer:        r.Answer,
			Comment:       r.Comment,
			LastUpdatedBy: r.LastUpdatedBy,
			LastUpdatedAt: r.LastUpdatedAt,
		}
	}
	return out
}
