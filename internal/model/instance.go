package model

import "time"

type InstanceStatus string

const (
	InstanceStatusNotStarted InstanceStatus = "NOT_STARTED"
	InstanceStatusInProgress InstanceStatus = "IN_PROGRESS"
	InstanceStatusCompleted  InstanceStatus = "COMPLETED"
	InstanceStatusApproved   InstanceStatus = "APPROVED"
	InstanceStatusRejected   InstanceStatus = "REJECTED"
	InstanceStatusWithdrawn  InstanceStatus = "WITHDRAWN"
)

var instanceStatuses = []InstanceStatus{
	InstanceStatusNotStarted,
	InstanceStatusInProgress,
	InstanceStatusCompleted,
	InstanceStatusApproved,
	InstanceStatusRejected,
	InstanceStatusWithdrawn,
}

// A final submission may go straight from NOT_STARTED to COMPLETED.
var instanceTransitions = map[InstanceStatus][]InstanceStatus{
	InstanceStatusNotStarted: {InstanceStatusInProgress, InstanceStatusCompleted, InstanceStatusWithdrawn},
	InstanceStatusInProgress: {InstanceStatusCompleted, InstanceStatusWithdrawn},
	InstanceStatusCompleted:  {InstanceStatusApproved, InstanceStatusInProgress, InstanceStatusWithdrawn},
	InstanceStatusRejected:   {InstanceStatusInProgress, InstanceStatusCompleted, InstanceStatusWithdrawn},
}

func ParseInstanceStatus(s string) (InstanceStatus, error) {
	return parseEnum("instance status", s, instanceStatuses)
}

func (s InstanceStatus) String() string {
	return string(s)
}

func (s *InstanceStatus) UnmarshalText(b []byte) error {
	v, err := ParseInstanceStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s InstanceStatus) CanTransitionTo(next InstanceStatus) bool {
	return canTransition(instanceTransitions, s, next)
}

// IsTerminal reports whether no further transition is possible.
func (s InstanceStatus) IsTerminal() bool {
	return len(instanceTransitions[s]) == 0
}

// AcceptsResponses reports whether answers may still be written.
func (s InstanceStatus) AcceptsResponses() bool {
	switch s {
	case InstanceStatusNotStarted, InstanceStatusInProgress, InstanceStatusRejected:
		return true
	default:
		return false
	}
}

type SurveyInstance struct {
	ID                 int64            `json:"id"`
	RunID              int64            `json:"run_id"`
	Entity             EntityReference  `json:"entity"`
	Qualifier          *EntityReference `json:"qualifier,omitempty"`
	Status             InstanceStatus   `json:"status"`
	DueDate            time.Time        `json:"due_date"`
	ApprovalDueDate    time.Time        `json:"approval_due_date"`
	SubmittedAt        *time.Time       `json:"submitted_at,omitempty"`
	SubmittedBy        *string          `json:"submitted_by,omitempty"`
	ApprovedAt         *time.Time       `json:"approved_at,omitempty"`
	ApprovedBy         *string          `json:"approved_by,omitempty"`
	OriginalInstanceID *int64           `json:"original_instance_id,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func (i *SurveyInstance) Ref() EntityReference {
	return Ref(EntityKindSurveyInstance, i.ID)
}

type SurveyInstanceRecipient struct {
	InstanceID int64     `json:"instance_id"`
	PersonID   int64     `json:"person_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatusCount is the number of latest instances of a run in one status.
type StatusCount struct {
	Status InstanceStatus `json:"status"`
	Count  int64          `json:"count"`
}
