// Package selection resolves a run's selection options into target entity ids
// and finds the people involved with each target.
package selection

import (
	"context"
	"errors"
	"fmt"

	"basegraph.app/surveys/internal/model"
)

// ErrUnsupportedScope is returned when a selection cannot produce entities of the target kind.
var ErrUnsupportedScope = errors.New("unsupported selection scope")

// Resolver turns selection options into ids of entities of the target kind.
type Resolver interface {
	Resolve(ctx context.Context, target model.EntityKind, opts model.SelectionOptions) ([]int64, error)
}

// InvolvementLookup finds people holding any of the given involvement kinds on an entity.
type InvolvementLookup interface {
	FindPeople(ctx context.Context, entity model.EntityReference, involvementKindIDs []int64) ([]int64, error)
}

// Supports checks whether opts can be resolved into entities of kind target.
//
//	target              selector            scopes
//	APPLICATION         APPLICATION         EXACT
//	APPLICATION         APP_GROUP           EXACT
//	APPLICATION         ORG_UNIT            any
//	CHANGE_INITIATIVE   CHANGE_INITIATIVE   any
func Supports(target model.EntityKind, opts model.SelectionOptions) error {
	ok := false
	switch target {
	case model.EntityKindApplication:
		switch opts.Entity.Kind {
		case model.EntityKindApplication, model.EntityKindAppGroup:
			ok = opts.Scope == model.HierarchyScopeExact
		case model.EntityKindOrgUnit:
			ok = true
		}
	case model.EntityKindChangeInitiative:
		ok = opts.Entity.Kind == model.EntityKindChangeInitiative
	}
	if !ok {
		return fmt.Errorf("%w: %s with scope %s cannot select %s entities",
			ErrUnsupportedScope, opts.Entity.Kind, opts.Scope, target)
	}
	return nil
}
