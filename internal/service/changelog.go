package service

import (
	"context"
	"fmt"

	"basegraph.app/surveys/internal/model"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// ChangeLogService reads the audit trail written by the other services.
type ChangeLogService interface {
	History(ctx context.Context, parent model.EntityReference, limit int32) ([]model.ChangeLog, error)
}

type changeLogService struct {
	stores StoreProvider
}

func NewChangeLogService(stores StoreProvider) ChangeLogService {
	return &changeLogService{stores: stores}
}

// History returns the newest entries first. A non-positive limit means the default.
func (s *changeLogService) History(ctx context.Context, parent model.EntityReference, limit int32) ([]model.ChangeLog, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	entries, err := s.stores.ChangeLogs().ListByParent(ctx, parent, limit)
	if err != nil {
		return nil, fmt.Errorf("listing change log of %s: %w", parent, err)
	}
	return entries, nil
}
