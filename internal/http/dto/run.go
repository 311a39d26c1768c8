package dto

import (
	"fmt"
	"time"

	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/service"
)

type SelectionRequest struct {
	EntityKind model.EntityKind     `json:"entity_kind" binding:"required"`
	EntityID   int64                `json:"entity_id" binding:"required"`
	Scope      model.HierarchyScope `json:"scope" binding:"required"`
}

type RunRequest struct {
	Description        *string            `json:"description,omitempty"`
	ContactEmail       *string            `json:"contact_email,omitempty" binding:"omitempty,email"`
	Name               string             `json:"name" binding:"required,min=1,max=255"`
	IssuanceKind       model.IssuanceKind `json:"issuance_kind" binding:"required"`
	DueDate            string             `json:"due_date" binding:"required,datetime=2006-01-02"`
	ApprovalDueDate    string             `json:"approval_due_date" binding:"required,datetime=2006-01-02"`
	Selection          SelectionRequest   `json:"selection" binding:"required"`
	InvolvementKindIDs []int64            `json:"involvement_kind_ids" binding:"required,min=1"`
	TemplateID         int64              `json:"template_id,string"`
}

func (r RunRequest) ToDraft() (service.RunDraft, error) {
	due, err := time.Parse(time.DateOnly, r.DueDate)
	if err != nil {
		return service.RunDraft{}, fmt.Errorf("due_date: %w", err)
	}
	approvalDue, err := time.Parse(time.DateOnly, r.ApprovalDueDate)
	if err != nil {
		return service.RunDraft{}, fmt.Errorf("approval_due_date: %w", err)
	}
	return service.RunDraft{
		TemplateID:  r.TemplateID,
		Name:        r.Name,
		Description: r.Description,
		SelectionOptions: model.SelectionOptions{
			Entity: model.Ref(r.Selection.EntityKind, r.Selection.EntityID),
			Scope:  r.Selection.Scope,
		},
		InvolvementKindIDs: r.InvolvementKindIDs,
		IssuanceKind:       r.IssuanceKind,
		DueDate:            due,
		ApprovalDueDate:    approvalDue,
		ContactEmail:       r.ContactEmail,
	}, nil
}

type RunResponse struct {
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	Description        *string                `json:"description,omitempty"`
	ContactEmail       *string                `json:"contact_email,omitempty"`
	IssuedOn           *string                `json:"issued_on,omitempty"`
	Selection          model.SelectionOptions `json:"selection"`
	Name               string                 `json:"name"`
	IssuanceKind       model.IssuanceKind     `json:"issuance_kind"`
	DueDate            string                 `json:"due_date"`
	ApprovalDueDate    string                 `json:"approval_due_date"`
	OwnerID            string                 `json:"owner_id"`
	Status             model.RunStatus        `json:"status"`
	InvolvementKindIDs []int64                `json:"involvement_kind_ids"`
	ID                 int64                  `json:"id,string"`
	TemplateID         int64                  `json:"template_id,string"`
}

func ToRunResponse(r *model.SurveyRun) *RunResponse {
	resp := &RunResponse{
		ID:                 r.ID,
		TemplateID:         r.TemplateID,
		Name:               r.Name,
		Description:        r.Description,
		Selection:          r.SelectionOptions,
		InvolvementKindIDs: r.InvolvementKindIDs,
		IssuanceKind:       r.IssuanceKind,
		DueDate:            r.DueDate.Format(time.DateOnly),
		ApprovalDueDate:    r.ApprovalDueDate.Format(time.DateOnly),
		ContactEmail:       r.ContactEmail,
		OwnerID:            r.OwnerID,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.IssuedOn != nil {
		issued := r.IssuedOn.Format(time.DateOnly)
		resp.IssuedOn = &issued
	}
	return resp
}

func ToRunResponses(runs []model.SurveyRun) []RunResponse {
	out := make([]RunResponse, len(runs))
	for i := range runs {
		out[i] = *ToRunResponse(&runs[i])
	}
	return out
}

type CandidateResponse struct {
	Entity    model.EntityReference `json:"entity"`
	PersonIDs []int64               `json:"person_ids"`
}

func ToCandidateResponses(candidates []domain.CandidateRecipient) []CandidateResponse {
	out := make([]CandidateResponse, len(candidates))
	for i, c := range candidates {
		out[i] = CandidateResponse{Entity: c.Entity, PersonIDs: c.PersonIDs}
	}
	return out
}

type CompletionStatsResponse struct {
	Counts map[model.InstanceStatus]int64 `json:"counts"`
	Total  int64                          `json:"total"`
}

func ToCompletionStatsResponse(counts []model.StatusCount) *CompletionStatsResponse {
	resp := &CompletionStatsResponse{Counts: make(map[model.InstanceStatus]int64, len(counts))}
	for _, c := range counts {
		resp.Counts[c.Status] = c.Count
		resp.Total += c.Count
	}
	return resp
}
