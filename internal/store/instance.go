package store

import (
	"context"

	"basegraph.app/surveys/core/db/sqlc"
	"basegraph.app/surveys/internal/model"
)

type instanceStore struct {
	queries *sqlc.Queries
}

func newInstanceStore(queries *sqlc.Queries) InstanceStore {
	return &instanceStore{queries: queries}
}

func (s *instanceStore) Create(ctx context.Context, inst *model.SurveyInstance) error {
	params := sqlc.CreateSurveyInstanceParams{
		ID:                 inst.ID,
		SurveyRunID:        inst.RunID,
		EntityKind:         string(inst.Entity.Kind),
		EntityID:           inst.Entity.ID,
		Status:             string(inst.Status),
		DueDate:            toPgDate(inst.DueDate),
		ApprovalDueDate:    toPgDate(inst.ApprovalDueDate),
		OriginalInstanceID: inst.OriginalInstanceID,
	}
	if inst.Qualifier != nil {
		kind := string(inst.Qualifier.Kind)
		params.EntityQualifierKind = &kind
		params.EntityQualifierID = &inst.Qualifier.ID
	}

	row, err := s.queries.CreateSurveyInstance(ctx, params)
	if err != nil {
		return mapErr(err)
	}
	*inst = toInstanceModel(row)
	return nil
}

func (s *instanceStore) GetByID(ctx context.Context, id int64) (*model.SurveyInstance, error) {
	row, err := s.queries.GetSurveyInstance(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	inst := toInstanceModel(row)
	return &inst, nil
}

func (s *instanceStore) ListByRun(ctx context.Context, runID int64) ([]model.SurveyInstance, error) {
	rows, err := s.queries.ListSurveyInstancesByRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	return toInstanceModels(rows), nil
}

func (s *instanceStore) ListLatestByRun(ctx context.Context, runID int64) ([]model.SurveyInstance, error) {
	rows, err := s.queries.ListLatestSurveyInstancesByRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	return toInstanceModels(rows), nil
}

func (s *instanceStore) ListLatestForRecipient(ctx context.Context, personID int64) ([]model.SurveyInstance, error) {
	rows, err := s.queries.ListLatestSurveyInstancesForRecipient(ctx, personID)
	if err != nil {
		return nil, err
	}
	return toInstanceModels(rows), nil
}

func (s *instanceStore) UpdateStatus(ctx context.Context, id int64, expected, next model.InstanceStatus, stamp InstanceStamp) (*model.SurveyInstance, error) {
	row, err := s.queries.UpdateSurveyInstanceStatus(ctx, sqlc.UpdateSurveyInstanceStatusParams{
		NextStatus:     string(next),
		SubmittedAt:    toPgTimestamptzPtr(stamp.SubmittedAt),
		SubmittedBy:    stamp.SubmittedBy,
		ApprovedAt:     toPgTimestamptzPtr(stamp.ApprovedAt),
		ApprovedBy:     stamp.ApprovedBy,
		ID:             id,
		ExpectedStatus: string(expected),
	})
	if err != nil {
		return nil, casErr(err)
	}
	inst := toInstanceModel(row)
	return &inst, nil
}

func (s *instanceStore) HasSuccessor(ctx context.Context, id int64) (bool, error) {
	return s.queries.SurveyInstanceHasSuccessor(ctx, &id)
}

func (s *instanceStore) CountLatestByStatus(ctx context.Context, runID int64) ([]model.StatusCount, error) {
	rows, err := s.queries.CountLatestSurveyInstancesByStatus(ctx, runID)
	if err != nil {
		return nil, err
	}
	result := make([]model.StatusCount, len(rows))
	for i, row := range rows {
		result[i] = model.StatusCount{
			Status: model.InstanceStatus(row.Status),
			Count:  row.Count,
		}
	}
	return result, nil
}

func toInstanceModel(row sqlc.SurveyInstance) model.SurveyInstance {
	inst := model.SurveyInstance{
		ID:                 row.ID,
		RunID:              row.SurveyRunID,
		Entity:             model.Ref(model.EntityKind(row.EntityKind), row.EntityID),
		Status:             model.InstanceStatus(row.Status),
		DueDate:            row.DueDate.Time,
		ApprovalDueDate:    row.ApprovalDueDate.Time,
		SubmittedAt:        fromPgTimestamptzPtr(row.SubmittedAt),
		SubmittedBy:        row.SubmittedBy,
		ApprovedAt:         fromPgTimestamptzPtr(row.ApprovedAt),
		ApprovedBy:         row.ApprovedBy,
		OriginalInstanceID: row.OriginalInstanceID,
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
	if row.EntityQualifierKind != nil && row.EntityQualifierID != nil {
		q := model.Ref(model.EntityKind(*row.EntityQualifierKind), *row.EntityQualifierID)
		inst.Qualifier = &q
	}
	return inst
}

func toInstanceModels(rows []sqlc.SurveyInstance) []model.SurveyInstance {
	result := make([]model.SurveyInstance, len(rows))
	for i, row := range rows {
		result[i] = toInstanceModel(row)
	}
	return result
}
