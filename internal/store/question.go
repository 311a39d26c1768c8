package store

import (
	"context"

	"basegraph.app/surveys/core/db/sqlc"
	"basegraph.app/surveys/internal/model"
)

type questionStore struct {
	queries *sqlc.Queries
}

func newQuestionStore(queries *sqlc.Queries) QuestionStore {
	return &questionStore{queries: queries}
}

func (s *questionStore) Create(ctx context.Context, q *model.SurveyQuestion) error {
	row, err := s.queries.CreateSurveyQuestion(ctx, sqlc.CreateSurveyQuestionParams{
		ID:               q.ID,
		SurveyTemplateID: q.TemplateID,
		SectionName:      q.SectionName,
		QuestionText:     q.QuestionText,
		HelpText:         q.HelpText,
		FieldType:        string(q.FieldType),
		Position:         q.Position,
		IsMandatory:      q.IsMandatory,
		AllowComment:     q.AllowComment,
	})
	if err != nil {
		return mapErr(err)
	}
	*q = toQuestionModel(row)
	return nil
}

func (s *questionStore) GetByID(ctx context.Context, id int64) (*model.SurveyQuestion, error) {
	row, err := s.queries.GetSurveyQuestion(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	q := toQuestionModel(row)
	return &q, nil
}

func (s *questionStore) Update(ctx context.Context, q *model.SurveyQuestion) error {
	row, err := s.queries.UpdateSurveyQuestion(ctx, sqlc.UpdateSurveyQuestionParams{
		ID:           q.ID,
		SectionName:  q.SectionName,
		QuestionText: q.QuestionText,
		HelpText:     q.HelpText,
		FieldType:    string(q.FieldType),
		Position:     q.Position,
		IsMandatory:  q.IsMandatory,
		AllowComment: q.AllowComment,
	})
	if err != nil {
		return mapErr(err)
	}
	*q = toQuestionModel(row)
	return nil
}

func (s *questionStore) Delete(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteSurveyQuestion(ctx, id)
	if err != nil {
		return mapErr(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *questionStore) ListByTemplate(ctx context.Context, templateID int64) ([]model.SurveyQuestion, error) {
	rows, err := s.queries.ListSurveyQuestionsByTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	result := make([]model.SurveyQuestion, len(rows))
	for i, row := range rows {
		result[i] = toQuestionModel(row)
	}
	return result, nil
}

func toQuestionModel(row sqlc.SurveyQuestion) model.SurveyQuestion {
	return model.SurveyQuestion{
		ID:           row.ID,
		TemplateID:   row.SurveyTemplateID,
		SectionName:  row.SectionName,
		QuestionText: row.QuestionText,
		HelpText:     row.HelpText,
		FieldType:    model.FieldType(row.FieldType),
		Position:     row.Position,
		IsMandatory:  row.IsMandatory,
		AllowComment: row.AllowComment,
		CreatedAt:    row.CreatedAt.Time,
	}
}
