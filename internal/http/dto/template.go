package dto

import (
	"time"

	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/service"
)

type TemplateRequest struct {
	Name             string           `json:"name" binding:"required,min=1,max=255"`
	Description      *string          `json:"description,omitempty"`
	ExternalID       *string          `json:"external_id,omitempty" binding:"omitempty,max=200"`
	TargetEntityKind model.EntityKind `json:"target_entity_kind" binding:"required"`
}

func (r TemplateRequest) ToDraft() service.TemplateDraft {
	return service.TemplateDraft{
		Name:             r.Name,
		Description:      r.Description,
		ExternalID:       r.ExternalID,
		TargetEntityKind: r.TargetEntityKind,
	}
}

type TemplateStatusRequest struct {
	Status model.TemplateStatus `json:"status" binding:"required"`
}

type TemplateResponse struct {
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
	Description      *string              `json:"description,omitempty"`
	ExternalID       *string              `json:"external_id,omitempty"`
	Name             string               `json:"name"`
	TargetEntityKind model.EntityKind     `json:"target_entity_kind"`
	Status           model.TemplateStatus `json:"status"`
	OwnerID          string               `json:"owner_id"`
	ID               int64                `json:"id,string"`
}

func ToTemplateResponse(t *model.SurveyTemplate) *TemplateResponse {
	return &TemplateResponse{
		ID:               t.ID,
		Name:             t.Name,
		Description:      t.Description,
		ExternalID:       t.ExternalID,
		TargetEntityKind: t.TargetEntityKind,
		Status:           t.Status,
		OwnerID:          t.OwnerID,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func ToTemplateResponses(templates []model.SurveyTemplate) []TemplateResponse {
	out := make([]TemplateResponse, len(templates))
	for i := range templates {
		out[i] = *ToTemplateResponse(&templates[i])
	}
	return out
}

type QuestionRequest struct {
	SectionName  *string         `json:"section_name,omitempty" binding:"omitempty,max=255"`
	QuestionText string          `json:"question_text" binding:"required"`
	HelpText     *string         `json:"help_text,omitempty"`
	FieldType    model.FieldType `json:"field_type" binding:"required"`
	Position     int32           `json:"position" binding:"gte=0"`
	IsMandatory  bool            `json:"is_mandatory"`
	AllowComment bool            `json:"allow_comment"`
}

func (r QuestionRequest) ToDraft() service.QuestionDraft {
	return service.QuestionDraft{
		SectionName:  r.SectionName,
		QuestionText: r.QuestionText,
		HelpText:     r.HelpText,
		FieldType:    r.FieldType,
		Position:     r.Position,
		IsMandatory:  r.IsMandatory,
		AllowComment: r.AllowComment,
	}
}

type QuestionResponse struct {
	CreatedAt    time.Time       `json:"created_at"`
	SectionName  *string         `json:"section_name,omitempty"`
	HelpText     *string         `json:"help_text,omitempty"`
	QuestionText string          `json:"question_text"`
	FieldType    model.FieldType `json:"field_type"`
	ID           int64           `json:"id,string"`
	TemplateID   int64           `json:"template_id,string"`
	Position     int32           `json:"position"`
	IsMandatory  bool            `json:"is_mandatory"`
	AllowComment bool            `json:"allow_comment"`
}

func ToQuestionResponse(q *model.SurveyQuestion) *QuestionResponse {
	return &QuestionResponse{
		ID:           q.ID,
		TemplateID:   q.TemplateID,
		SectionName:  q.SectionName,
		QuestionText: q.QuestionText,
		HelpText:     q.HelpText,
		FieldType:    q.FieldType,
		Position:     q.Position,
		IsMandatory:  q.IsMandatory,
		AllowComment: q.AllowComment,
		CreatedAt:    q.CreatedAt,
	}
}

func ToQuestionResponses(questions []model.SurveyQuestion) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i := range questions {
		out[i] = *ToQuestionResponse(&questions[i])
	}
	return out
}
