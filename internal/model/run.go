package model

import "time"

type RunStatus string

const (
	RunStatusDraft  RunStatus = "DRAFT"
	RunStatusIssued RunStatus = "ISSUED"
	RunStatusClosed RunStatus = "CLOSED"
)

var runStatuses = []RunStatus{
	RunStatusDraft,
	RunStatusIssued,
	RunStatusClosed,
}

var runTransitions = map[RunStatus][]RunStatus{
	RunStatusDraft:  {RunStatusIssued},
	RunStatusIssued: {RunStatusClosed},
}

func ParseRunStatus(s string) (RunStatus, error) {
	return parseEnum("run status", s, runStatuses)
}

func (s RunStatus) String() string {
	return string(s)
}

func (s *RunStatus) UnmarshalText(b []byte) error {
	v, err := ParseRunStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s RunStatus) CanTransitionTo(next RunStatus) bool {
	return canTransition(runTransitions, s, next)
}

// IssuanceKind controls whether a run creates one instance per person or one per entity.
type IssuanceKind string

const (
	IssuanceKindIndividual IssuanceKind = "INDIVIDUAL"
	IssuanceKindGroup      IssuanceKind = "GROUP"
)

var issuanceKinds = []IssuanceKind{
	IssuanceKindIndividual,
	IssuanceKindGroup,
}

func ParseIssuanceKind(s string) (IssuanceKind, error) {
	return parseEnum("issuance kind", s, issuanceKinds)
}

func (k IssuanceKind) String() string {
	return string(k)
}

func (k *IssuanceKind) UnmarshalText(b []byte) error {
	v, err := ParseIssuanceKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type SurveyRun struct {
	ID                 int64            `json:"id"`
	TemplateID         int64            `json:"template_id"`
	Name               string           `json:"name"`
	Description        *string          `json:"description,omitempty"`
	SelectionOptions   SelectionOptions `json:"selection_options"`
	InvolvementKindIDs []int64          `json:"involvement_kind_ids"`
	IssuanceKind       IssuanceKind     `json:"issuance_kind"`
	DueDate            time.Time        `json:"due_date"`
	ApprovalDueDate    time.Time        `json:"approval_due_date"`
	ContactEmail       *string          `json:"contact_email,omitempty"`
	OwnerID            string           `json:"owner_id"`
	Status             RunStatus        `json:"status"`
	IssuedOn           *time.Time       `json:"issued_on,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func (r *SurveyRun) Ref() EntityReference {
	return Ref(EntityKindSurveyRun, r.ID)
}
