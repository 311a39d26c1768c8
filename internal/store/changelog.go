package store

import (
	"context"

	"basegraph.app/surveys/core/db/sqlc"
	"basegraph.app/surveys/internal/model"
)

type changeLogStore struct {
	queries *sqlc.Queries
}

func newChangeLogStore(queries *sqlc.Queries) ChangeLogStore {
	return &changeLogStore{queries: queries}
}

func (s *changeLogStore) Record(ctx context.Context, entry *model.ChangeLog) error {
	var childKind *string
	if entry.ChildKind != nil {
		k := string(*entry.ChildKind)
		childKind = &k
	}
	row, err := s.queries.CreateChangeLog(ctx, sqlc.CreateChangeLogParams{
		ID:         entry.ID,
		ParentKind: string(entry.Parent.Kind),
		ParentID:   entry.Parent.ID,
		Operation:  string(entry.Operation),
		ChildKind:  childKind,
		Message:    entry.Message,
		UserID:     entry.UserID,
	})
	if err != nil {
		return mapErr(err)
	}
	*entry = toChangeLogModel(row)
	return nil
}

func (s *changeLogStore) ListByParent(ctx context.Context, parent model.EntityReference, limit int32) ([]model.ChangeLog, error) {
	rows, err := s.queries.ListChangeLogsByParent(ctx, sqlc.ListChangeLogsByParentParams{
		ParentKind: string(parent.Kind),
		ParentID:   parent.ID,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.ChangeLog, len(rows))
	for i, row := range rows {
		result[i] = toChangeLogModel(row)
	}
	return result, nil
}

func toChangeLogModel(row sqlc.ChangeLog) model.ChangeLog {
	entry := model.ChangeLog{
		ID:        row.ID,
		Parent:    model.Ref(model.EntityKind(row.ParentKind), row.ParentID),
		Operation: model.Operation(row.Operation),
		Message:   row.Message,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt.Time,
	}
	if row.ChildKind != nil {
		k := model.EntityKind(*row.ChildKind)
		entry.ChildKind = &k
	}
	return entry
}
