package store

import (
	"context"

	"basegraph.app/surveys/core/db/sqlc"
	"basegraph.app/surveys/internal/model"
)

type responseStore struct {
	queries *sqlc.Queries
}

func newResponseStore(queries *sqlc.Queries) ResponseStore {
	return &responseStore{queries: queries}
}

func (s *responseStore) Upsert(ctx context.Context, resp *model.SurveyQuestionResponse) error {
	params := sqlc.UpsertSurveyQuestionResponseParams{
		SurveyInstanceID: resp.InstanceID,
		QuestionID:       resp.QuestionID,
		StringResponse:   resp.Answer.String,
		NumberResponse:   resp.Answer.Number,
		BooleanResponse:  resp.Answer.Boolean,
		DateResponse:     toPgDatePtr(resp.Answer.Date),
		ListResponse:     resp.Answer.List,
		Comment:          resp.Comment,
		LastUpdatedBy:    resp.LastUpdatedBy,
	}
	if e := resp.Answer.Entity; e != nil {
		kind := string(e.Kind)
		params.EntityResponseKind = &kind
		params.EntityResponseID = &e.ID
	}

	row, err := s.queries.UpsertSurveyQuestionResponse(ctx, params)
	if err != nil {
		return mapErr(err)
	}
	*resp = toResponseModel(row)
	return nil
}

func (s *responseStore) ListByInstance(ctx context.Context, instanceID int64) ([]model.SurveyQuestionResponse, error) {
	rows, err := s.queries.ListSurveyQuestionResponses(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	result := make([]model.SurveyQuestionResponse, len(rows))
	for i, row := range rows {
		result[i] = toResponseModel(row)
	}
	return result, nil
}

func toResponseModel(row sqlc.SurveyQuestionResponse) model.SurveyQuestionResponse {
	answer := model.Answer{
		String:  row.StringResponse,
		Number:  row.NumberResponse,
		Boolean: row.BooleanResponse,
		Date:    fromPgDatePtr(row.DateResponse),
		List:    row.ListResponse,
	}
	if row.EntityResponseKind != nil && row.EntityResponseID != nil {
		ref := model.Ref(model.EntityKind(*row.EntityResponseKind), *row.EntityResponseID)
		answer.Entity = &ref
	}
	return model.SurveyQuestionResponse{
		InstanceID:    row.SurveyInstanceID,
		QuestionID:    row.QuestionID,
		Answer:        answer,
		Comment:       row.Comment,
		LastUpdatedBy: row.LastUpdatedBy,
		LastUpdatedAt: row.LastUpdatedAt.Time,
	}
}
