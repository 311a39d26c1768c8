package store

import (
	"context"
	"time"

	"basegraph.app/surveys/core/db/sqlc"
	"basegraph.app/surveys/internal/model"
)

type runStore struct {
	queries *sqlc.Queries
}

func newRunStore(queries *sqlc.Queries) RunStore {
	return &runStore{queries: queries}
}

func (s *runStore) Create(ctx context.Context, run *model.SurveyRun) error {
	row, err := s.queries.CreateSurveyRun(ctx, sqlc.CreateSurveyRunParams{
		ID:                     run.ID,
		SurveyTemplateID:       run.TemplateID,
		Name:                   run.Name,
		Description:            run.Description,
		SelectorEntityKind:     string(run.SelectionOptions.Entity.Kind),
		SelectorEntityID:       run.SelectionOptions.Entity.ID,
		SelectorHierarchyScope: string(run.SelectionOptions.Scope),
		InvolvementKindIds:     run.InvolvementKindIDs,
		IssuanceKind:           string(run.IssuanceKind),
		DueDate:                toPgDate(run.DueDate),
		ApprovalDueDate:        toPgDate(run.ApprovalDueDate),
		ContactEmail:           run.ContactEmail,
		OwnerID:                run.OwnerID,
		Status:                 string(run.Status),
	})
	if err != nil {
		return mapErr(err)
	}
	*run = *toRunModel(row)
	return nil
}

func (s *runStore) GetByID(ctx context.Context, id int64) (*model.SurveyRun, error) {
	row, err := s.queries.GetSurveyRun(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toRunModel(row), nil
}

func (s *runStore) Lock(ctx context.Context, id int64) (*model.SurveyRun, error) {
	row, err := s.queries.LockSurveyRun(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toRunModel(row), nil
}

func (s *runStore) Update(ctx context.Context, run *model.SurveyRun, expected model.RunStatus) error {
	row, err := s.queries.UpdateSurveyRun(ctx, sqlc.UpdateSurveyRunParams{
		Name:                   run.Name,
		Description:            run.Description,
		SelectorEntityKind:     string(run.SelectionOptions.Entity.Kind),
		SelectorEntityID:       run.SelectionOptions.Entity.ID,
		SelectorHierarchyScope: string(run.SelectionOptions.Scope),
		InvolvementKindIds:     run.InvolvementKindIDs,
		IssuanceKind:           string(run.IssuanceKind),
		DueDate:                toPgDate(run.DueDate),
		ApprovalDueDate:        toPgDate(run.ApprovalDueDate),
		ContactEmail:           run.ContactEmail,
		ID:                     run.ID,
		ExpectedStatus:         string(expected),
	})
	if err != nil {
		return casErr(err)
	}
	*run = *toRunModel(row)
	return nil
}

func (s *runStore) UpdateStatus(ctx context.Context, id int64, expected, next model.RunStatus, issuedOn *time.Time) (*model.SurveyRun, error) {
	row, err := s.queries.UpdateSurveyRunStatus(ctx, sqlc.UpdateSurveyRunStatusParams{
		NextStatus:     string(next),
		IssuedOn:       toPgDatePtr(issuedOn),
		ID:             id,
		ExpectedStatus: string(expected),
	})
	if err != nil {
		return nil, casErr(err)
	}
	return toRunModel(row), nil
}

func (s *runStore) ListByTemplate(ctx context.Context, templateID int64) ([]model.SurveyRun, error) {
	rows, err := s.queries.ListSurveyRunsByTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	result := make([]model.SurveyRun, len(rows))
	for i, row := range rows {
		result[i] = *toRunModel(row)
	}
	return result, nil
}

func (s *runStore) CountByTemplate(ctx context.Context, templateID int64) (int64, error) {
	return s.queries.CountSurveyRunsByTemplate(ctx, templateID)
}

func toRunModel(row sqlc.SurveyRun) *model.SurveyRun {
	return &model.SurveyRun{
		ID:          row.ID,
		TemplateID:  row.SurveyTemplateID,
		Name:        row.Name,
		Description: row.Description,
		SelectionOptions: model.SelectionOptions{
			Entity: model.Ref(model.EntityKind(row.SelectorEntityKind), row.SelectorEntityID),
			Scope:  model.HierarchyScope(row.SelectorHierarchyScope),
		},
		InvolvementKindIDs: row.InvolvementKindIds,
		IssuanceKind:       model.IssuanceKind(row.IssuanceKind),
		DueDate:            row.DueDate.Time,
		ApprovalDueDate:    row.ApprovalDueDate.Time,
		ContactEmail:       row.ContactEmail,
		OwnerID:            row.OwnerID,
		Status:             model.RunStatus(row.Status),
		IssuedOn:           fromPgDatePtr(row.IssuedOn),
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}
