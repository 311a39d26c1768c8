package store

import (
	"context"

	"basegraph.app/surveys/core/db/sqlc"
	"basegraph.app/surveys/internal/model"
)

type recipientStore struct {
	queries *sqlc.Queries
}

func newRecipientStore(queries *sqlc.Queries) RecipientStore {
	return &recipientStore{queries: queries}
}

func (s *recipientStore) Add(ctx context.Context, instanceID, personID int64) error {
	err := s.queries.AddSurveyInstanceRecipient(ctx, sqlc.AddSurveyInstanceRecipientParams{
		SurveyInstanceID: instanceID,
		PersonID:         personID,
	})
	return mapErr(err)
}

func (s *recipientStore) ListByInstance(ctx context.Context, instanceID int64) ([]model.SurveyInstanceRecipient, error) {
	rows, err := s.queries.ListSurveyInstanceRecipients(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	result := make([]model.SurveyInstanceRecipient, len(rows))
	for i, row := range rows {
		result[i] = model.SurveyInstanceRecipient{
			InstanceID: row.SurveyInstanceID,
			PersonID:   row.PersonID,
			CreatedAt:  row.CreatedAt.Time,
		}
	}
	return result, nil
}

func (s *recipientStore) PersonIDsByInstance(ctx context.Context, instanceIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(instanceIDs))
	if len(instanceIDs) == 0 {
		return result, nil
	}
	rows, err := s.queries.ListSurveyInstanceRecipientsByInstances(ctx, instanceIDs)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.SurveyInstanceID] = append(result[row.SurveyInstanceID], row.PersonID)
	}
	return result, nil
}
