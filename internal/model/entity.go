package model

import (
	"errors"
	"fmt"
)

// EntityKind names the kind of catalog entity a reference points at.
type EntityKind string

const (
	EntityKindApplication      EntityKind = "APPLICATION"
	EntityKindAppGroup         EntityKind = "APP_GROUP"
	EntityKindOrgUnit          EntityKind = "ORG_UNIT"
	EntityKindChangeInitiative EntityKind = "CHANGE_INITIATIVE"
	EntityKindMeasurable       EntityKind = "MEASURABLE"
	EntityKindPerson           EntityKind = "PERSON"
	EntityKindSurveyTemplate   EntityKind = "SURVEY_TEMPLATE"
	EntityKindSurveyQuestion   EntityKind = "SURVEY_QUESTION"
	EntityKindSurveyRun        EntityKind = "SURVEY_RUN"
	EntityKindSurveyInstance   EntityKind = "SURVEY_INSTANCE"
)

var entityKinds = []EntityKind{
	EntityKindApplication,
	EntityKindAppGroup,
	EntityKindOrgUnit,
	EntityKindChangeInitiative,
	EntityKindMeasurable,
	EntityKindPerson,
	EntityKindSurveyTemplate,
	EntityKindSurveyQuestion,
	EntityKindSurveyRun,
	EntityKindSurveyInstance,
}

func ParseEntityKind(s string) (EntityKind, error) {
	return parseEnum("entity kind", s, entityKinds)
}

func (k EntityKind) String() string {
	return string(k)
}

func (k *EntityKind) UnmarshalText(b []byte) error {
	v, err := ParseEntityKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// IsSurveyTarget reports whether templates may address entities of this kind.
func (k EntityKind) IsSurveyTarget() bool {
	return k == EntityKindApplication || k == EntityKindChangeInitiative
}

// EntityReference identifies one entity of a given kind.
type EntityReference struct {
	Kind EntityKind `json:"kind"`
	ID   int64      `json:"id"`
}

func Ref(kind EntityKind, id int64) EntityReference {
	return EntityReference{Kind: kind, ID: id}
}

func (r EntityReference) String() string {
	return fmt.Sprintf("%s/%d", r.Kind, r.ID)
}

// HierarchyScope selects entities relative to a reference in the organisational hierarchy.
type HierarchyScope string

const (
	HierarchyScopeExact    HierarchyScope = "EXACT"
	HierarchyScopeChildren HierarchyScope = "CHILDREN"
	HierarchyScopeParents  HierarchyScope = "PARENTS"
	HierarchyScopeAll      HierarchyScope = "ALL"
)

var hierarchyScopes = []HierarchyScope{
	HierarchyScopeExact,
	HierarchyScopeChildren,
	HierarchyScopeParents,
	HierarchyScopeAll,
}

func ParseHierarchyScope(s string) (HierarchyScope, error) {
	return parseEnum("hierarchy scope", s, hierarchyScopes)
}

func (s HierarchyScope) String() string {
	return string(s)
}

func (s *HierarchyScope) UnmarshalText(b []byte) error {
	v, err := ParseHierarchyScope(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SelectionOptions is the single, typed input to the selection resolver.
type SelectionOptions struct {
	Entity EntityReference `json:"entity"`
	Scope  HierarchyScope  `json:"scope"`
}

func (o SelectionOptions) Validate() error {
	if _, err := ParseEntityKind(string(o.Entity.Kind)); err != nil {
		return err
	}
	if _, err := ParseHierarchyScope(string(o.Scope)); err != nil {
		return err
	}
	if o.Entity.ID <= 0 {
		return errors.New("selection entity id must be positive")
	}
	return nil
}
