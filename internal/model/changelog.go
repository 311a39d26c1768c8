package model

import "time"

type Operation string

const (
	OperationAdd    Operation = "ADD"
	OperationUpdate Operation = "UPDATE"
	OperationRemove Operation = "REMOVE"
)

var operations = []Operation{OperationAdd, OperationUpdate, OperationRemove}

func ParseOperation(s string) (Operation, error) {
	return parseEnum("operation", s, operations)
}

func (o Operation) String() string {
	return string(o)
}

// ChangeLog is an immutable audit entry written in the same transaction as the change it records.
type ChangeLog struct {
	ID        int64           `json:"id"`
	Parent    EntityReference `json:"parent"`
	Operation Operation       `json:"operation"`
	ChildKind *EntityKind     `json:"child_kind,omitempty"`
	Message   string          `json:"message"`
	UserID    string          `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}
