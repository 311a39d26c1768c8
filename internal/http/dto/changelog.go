package dto

import (
	"strconv"
	"time"

	"basegraph.app/surveys/internal/model"
)

type ChangeLogResponse struct {
	CreatedAt time.Time             `json:"created_at"`
	ChildKind *model.EntityKind     `json:"child_kind,omitempty"`
	Parent    model.EntityReference `json:"parent"`
	Operation model.Operation       `json:"operation"`
	Message   string                `json:"message"`
	UserID    string                `json:"user_id"`
	ID        int64                 `json:"id,string"`
}

func ToChangeLogResponses(entries []model.ChangeLog) []ChangeLogResponse {
	out := make([]ChangeLogResponse, len(entries))
	for i, e := range entries {
		out[i] = ChangeLogResponse{
			ID:        e.ID,
			Parent:    e.Parent,
			Operation: e.Operation,
			ChildKind: e.ChildKind,
			Message:   e.Message,
			UserID:    e.UserID,
			CreatedAt: e.CreatedAt,
		}
	}
	return out
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
