package model

import "time"

type TemplateStatus string

const (
	TemplateStatusDraft      TemplateStatus = "DRAFT"
	TemplateStatusActive     TemplateStatus = "ACTIVE"
	TemplateStatusDeprecated TemplateStatus = "DEPRECATED"
)

var templateStatuses = []TemplateStatus{
	TemplateStatusDraft,
	TemplateStatusActive,
	TemplateStatusDeprecated,
}

var templateTransitions = map[TemplateStatus][]TemplateStatus{
	TemplateStatusDraft:      {TemplateStatusActive},
	TemplateStatusActive:     {TemplateStatusDeprecated},
	TemplateStatusDeprecated: {TemplateStatusActive},
}

func ParseTemplateStatus(s string) (TemplateStatus, error) {
	return parseEnum("template status", s, templateStatuses)
}

func (s TemplateStatus) String() string {
	return string(s)
}

func (s *TemplateStatus) UnmarshalText(b []byte) error {
	v, err := ParseTemplateStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s TemplateStatus) CanTransitionTo(next TemplateStatus) bool {
	return canTransition(templateTransitions, s, next)
}

// CloneSuffix is appended to a template's name when it is cloned.
const CloneSuffix = " (clone)"

type SurveyTemplate struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	Description      *string        `json:"description,omitempty"`
	ExternalID       *string        `json:"external_id,omitempty"`
	TargetEntityKind EntityKind     `json:"target_entity_kind"`
	Status           TemplateStatus `json:"status"`
	OwnerID          string         `json:"owner_id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Ref returns the template as a change log parent.
func (t *SurveyTemplate) Ref() EntityReference {
	return Ref(EntityKindSurveyTemplate, t.ID)
}
