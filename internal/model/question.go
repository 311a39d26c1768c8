package model

import "time"

type FieldType string

const (
	FieldTypeText           FieldType = "TEXT"
	FieldTypeTextArea       FieldType = "TEXTAREA"
	FieldTypeNumber         FieldType = "NUMBER"
	FieldTypeBoolean        FieldType = "BOOLEAN"
	FieldTypeDate           FieldType = "DATE"
	FieldTypeDropdownSingle FieldType = "DROPDOWN_SINGLE"
	FieldTypeDropdownMulti  FieldType = "DROPDOWN_MULTI"
	FieldTypeApplication    FieldType = "APPLICATION"
	FieldTypePerson         FieldType = "PERSON"
)

var fieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeTextArea,
	FieldTypeNumber,
	FieldTypeBoolean,
	FieldTypeDate,
	FieldTypeDropdownSingle,
	FieldTypeDropdownMulti,
	FieldTypeApplication,
	FieldTypePerson,
}

func ParseFieldType(s string) (FieldType, error) {
	return parseEnum("field type", s, fieldTypes)
}

func (f FieldType) String() string {
	return string(f)
}

func (f *FieldType) UnmarshalText(b []byte) error {
	v, err := ParseFieldType(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

type SurveyQuestion struct {
	ID           int64     `json:"id"`
	TemplateID   int64     `json:"template_id"`
	SectionName  *string   `json:"section_name,omitempty"`
	QuestionText string    `json:"question_text"`
	HelpText     *string   `json:"help_text,omitempty"`
	FieldType    FieldType `json:"field_type"`
	Position     int32     `json:"position"`
	IsMandatory  bool      `json:"is_mandatory"`
	AllowComment bool      `json:"allow_comment"`
	CreatedAt    time.Time `json:"created_at"`
}
