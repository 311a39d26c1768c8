package materializer_test

import (
	"context"

	"basegraph.app/surveys/internal/model"
)

type mockResolver struct {
	resolveFn func(ctx context.Context, target model.EntityKind, opts model.SelectionOptions) ([]int64, error)
}

func (m *mockResolver) Resolve(ctx context.Context, target model.EntityKind, opts model.SelectionOptions) ([]int64, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, target, opts)
	}
	return nil, nil
}

type mockLookup struct {
	people   map[int64][]int64
	findFn   func(ctx context.Context, entity model.EntityReference, kinds []int64) ([]int64, error)
	requests []model.EntityReference
}

func (m *mockLookup) FindPeople(ctx context.Context, entity model.EntityReference, kinds []int64) ([]int64, error) {
	m.requests = append(m.requests, entity)
	if m.findFn != nil {
		return m.findFn(ctx, entity, kinds)
	}
	return m.people[entity.ID], nil
}

func fixedResolver(ids ...int64) *mockResolver {
	return &mockResolver{
		resolveFn: func(context.Context, model.EntityKind, model.SelectionOptions) ([]int64, error) {
			return ids, nil
		},
	}
}

func sampleRun(kind model.IssuanceKind) *model.SurveyRun {
	return &model.SurveyRun{
		ID:         20,
		TemplateID: 10,
		SelectionOptions: model.SelectionOptions{
			Entity: model.Ref(model.EntityKindAppGroup, 5),
			Scope:  model.HierarchyScopeExact,
		},
		InvolvementKindIDs: []int64{1},
		IssuanceKind:       kind,
	}
}
