package selection

import (
	"context"
	"fmt"
	"slices"

	"basegraph.app/surveys/core/db/sqlc"
	"basegraph.app/surveys/internal/model"
)

// Queries is the subset of the generated query layer the adapters read from.
type Queries interface {
	ListHierarchySelf(ctx context.Context, arg sqlc.ListHierarchySelfParams) ([]int64, error)
	ListHierarchyChildren(ctx context.Context, arg sqlc.ListHierarchyChildrenParams) ([]int64, error)
	ListHierarchyDescendants(ctx context.Context, arg sqlc.ListHierarchyDescendantsParams) ([]int64, error)
	ListHierarchyAncestors(ctx context.Context, arg sqlc.ListHierarchyAncestorsParams) ([]int64, error)
	ListApplicationGroupMembers(ctx context.Context, groupID int64) ([]int64, error)
	ListActiveApplicationsByIDs(ctx context.Context, ids []int64) ([]int64, error)
	ListApplicationsByOrgUnits(ctx context.Context, orgUnitIds []int64) ([]int64, error)
	ListInvolvedPeople(ctx context.Context, arg sqlc.ListInvolvedPeopleParams) ([]int64, error)
}

type pgResolver struct {
	queries Queries
}

// NewResolver returns a Resolver reading the entity hierarchy closure table
// and application catalog.
func NewResolver(queries Queries) Resolver {
	return &pgResolver{queries: queries}
}

func (r *pgResolver) Resolve(ctx context.Context, target model.EntityKind, opts model.SelectionOptions) ([]int64, error) {
	if err := Supports(target, opts); err != nil {
		return nil, err
	}

	var (
		ids []int64
		err error
	)
	switch opts.Entity.Kind {
	case model.EntityKindApplication:
		ids, err = r.queries.ListActiveApplicationsByIDs(ctx, []int64{opts.Entity.ID})
	case model.EntityKindAppGroup:
		ids, err = r.queries.ListApplicationGroupMembers(ctx, opts.Entity.ID)
	case model.EntityKindOrgUnit:
		var units []int64
		units, err = r.hierarchy(ctx, opts)
		if err == nil && len(units) > 0 {
			ids, err = r.queries.ListApplicationsByOrgUnits(ctx, units)
		}
	case model.EntityKindChangeInitiative:
		ids, err = r.hierarchy(ctx, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving %s %s: %w", opts.Scope, opts.Entity, err)
	}

	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// hierarchy walks the closure table. Every scope includes the entity itself.
func (r *pgResolver) hierarchy(ctx context.Context, opts model.SelectionOptions) ([]int64, error) {
	kind := string(opts.Entity.Kind)
	id := opts.Entity.ID

	switch opts.Scope {
	case model.HierarchyScopeExact:
		return r.queries.ListHierarchySelf(ctx, sqlc.ListHierarchySelfParams{Kind: kind, ID: id})
	case model.HierarchyScopeChildren:
		return r.queries.ListHierarchyChildren(ctx, sqlc.ListHierarchyChildrenParams{Kind: kind, AncestorID: id})
	case model.HierarchyScopeAll:
		return r.queries.ListHierarchyDescendants(ctx, sqlc.ListHierarchyDescendantsParams{Kind: kind, AncestorID: id})
	case model.HierarchyScopeParents:
		return r.queries.ListHierarchyAncestors(ctx, sqlc.ListHierarchyAncestorsParams{Kind: kind, ID: id})
	default:
		return nil, fmt.Errorf("%w: scope %q", ErrUnsupportedScope, opts.Scope)
	}
}

type pgInvolvementLookup struct {
	queries Queries
}

// NewInvolvementLookup returns an InvolvementLookup over the involvement table.
func NewInvolvementLookup(queries Queries) InvolvementLookup {
	return &pgInvolvementLookup{queries: queries}
}

func (l *pgInvolvementLookup) FindPeople(ctx context.Context, entity model.EntityReference, involvementKindIDs []int64) ([]int64, error) {
	if len(involvementKindIDs) == 0 {
		return nil, nil
	}
	people, err := l.queries.ListInvolvedPeople(ctx, sqlc.ListInvolvedPeopleParams{
		EntityKind: string(entity.Kind),
		EntityID:   entity.ID,
		KindIds:    involvementKindIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("finding people involved with %s: %w", entity, err)
	}
	return people, nil
}
