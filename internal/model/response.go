package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrAnswerType is returned when an answer does not fit its question's field type.
var ErrAnswerType = errors.New("answer does not match field type")

// Answer holds at most one typed value. The populated field must match the
// question's FieldType.
type Answer struct {
	String  *string          `json:"string,omitempty"`
	Number  *float64         `json:"number,omitempty"`
	Boolean *bool            `json:"boolean,omitempty"`
	Date    *time.Time       `json:"date,omitempty"`
	List    []string         `json:"list,omitempty"`
	Entity  *EntityReference `json:"entity,omitempty"`
}

// IsEmpty reports whether no value has been given. Blank strings count as empty.
func (a Answer) IsEmpty() bool {
	return a.populated() == 0
}

func (a Answer) populated() int {
	n := 0
	if a.String != nil && strings.TrimSpace(*a.String) != "" {
		n++
	}
	if a.Number != nil {
		n++
	}
	if a.Boolean != nil {
		n++
	}
	if a.Date != nil {
		n++
	}
	if len(a.List) > 0 {
		n++
	}
	if a.Entity != nil {
		n++
	}
	return n
}

// CheckAnswer validates a against the question's field type. Empty answers
// are accepted and clear any previous value.
func (q *SurveyQuestion) CheckAnswer(a Answer) error {
	if a.IsEmpty() {
		return nil
	}
	if a.populated() > 1 {
		return fmt.Errorf("%w: question %d has more than one value", ErrAnswerType, q.ID)
	}

	var ok bool
	switch q.FieldType {
	case FieldTypeText, FieldTypeTextArea, FieldTypeDropdownSingle:
		ok = a.String != nil
	case FieldTypeNumber:
		ok = a.Number != nil
	case FieldTypeBoolean:
		ok = a.Boolean != nil
	case FieldTypeDate:
		ok = a.Date != nil
	case FieldTypeDropdownMulti:
		ok = len(a.List) > 0
	case FieldTypeApplication:
		ok = a.Entity != nil && a.Entity.Kind == EntityKindApplication
	case FieldTypePerson:
		ok = a.Entity != nil && a.Entity.Kind == EntityKindPerson
	}
	if !ok {
		return fmt.Errorf("%w: question %d expects %s", ErrAnswerType, q.ID, q.FieldType)
	}
	return nil
}

type SurveyQuestionResponse struct {
	InstanceID    int64     `json:"instance_id"`
	QuestionID    int64     `json:"question_id"`
	Answer        Answer    `json:"answer"`
	Comment       *string   `json:"comment,omitempty"`
	LastUpdatedBy string    `json:"last_updated_by"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}
