package store

import (
	"context"

	"basegraph.app/surveys/core/db/sqlc"
	"basegraph.app/surveys/internal/model"
)

type templateStore struct {
	queries *sqlc.Queries
}

func newTemplateStore(queries *sqlc.Queries) TemplateStore {
	return &templateStore{queries: queries}
}

func (s *templateStore) Create(ctx context.Context, tpl *model.SurveyTemplate) error {
	row, err := s.queries.CreateSurveyTemplate(ctx, sqlc.CreateSurveyTemplateParams{
		ID:               tpl.ID,
		Name:             tpl.Name,
		Description:      tpl.Description,
		ExternalID:       tpl.ExternalID,
		TargetEntityKind: string(tpl.TargetEntityKind),
		Status:           string(tpl.Status),
		OwnerID:          tpl.OwnerID,
	})
	if err != nil {
		return mapErr(err)
	}
	*tpl = *toTemplateModel(row)
	return nil
}

func (s *templateStore) GetByID(ctx context.Context, id int64) (*model.SurveyTemplate, error) {
	row, err := s.queries.GetSurveyTemplate(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toTemplateModel(row), nil
}

func (s *templateStore) GetForUpdate(ctx context.Context, id int64) (*model.SurveyTemplate, error) {
	row, err := s.queries.GetSurveyTemplateForUpdate(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toTemplateModel(row), nil
}

func (s *templateStore) List(ctx context.Context) ([]model.SurveyTemplate, error) {
	rows, err := s.queries.ListSurveyTemplates(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.SurveyTemplate, len(rows))
	for i, row := range rows {
		result[i] = *toTemplateModel(row)
	}
	return result, nil
}

func (s *templateStore) Update(ctx context.Context, tpl *model.SurveyTemplate) error {
	row, err := s.queries.UpdateSurveyTemplate(ctx, sqlc.UpdateSurveyTemplateParams{
		ID:               tpl.ID,
		Name:             tpl.Name,
		Description:      tpl.Description,
		ExternalID:       tpl.ExternalID,
		TargetEntityKind: string(tpl.TargetEntityKind),
	})
	if err != nil {
		return mapErr(err)
	}
	*tpl = *toTemplateModel(row)
	return nil
}

func (s *templateStore) UpdateStatus(ctx context.Context, id int64, expected, next model.TemplateStatus) (*model.SurveyTemplate, error) {
	row, err := s.queries.UpdateSurveyTemplateStatus(ctx, sqlc.UpdateSurveyTemplateStatusParams{
		NextStatus:     string(next),
		ID:             id,
		ExpectedStatus: string(expected),
	})
	if err != nil {
		return nil, casErr(err)
	}
	return toTemplateModel(row), nil
}

func (s *templateStore) Delete(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteSurveyTemplate(ctx, id)
	if err != nil {
		return mapErr(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toTemplateModel(row sqlc.SurveyTemplate) *model.SurveyTemplate {
	return &model.SurveyTemplate{
		ID:               row.ID,
		Name:             row.Name,
		Description:      row.Description,
		ExternalID:       row.ExternalID,
		TargetEntityKind: model.EntityKind(row.TargetEntityKind),
		Status:           model.TemplateStatus(row.Status),
		OwnerID:          row.OwnerID,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}
