package store

import (
	"basegraph.app/surveys/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Templates() TemplateStore {
	return newTemplateStore(s.queries)
}

func (s *Stores) Questions() QuestionStore {
	return newQuestionStore(s.queries)
}

func (s *Stores) Runs() RunStore {
	return newRunStore(s.queries)
}

func (s *Stores) Instances() InstanceStore {
	return newInstanceStore(s.queries)
}

func (s *Stores) Recipients() RecipientStore {
	return newRecipientStore(s.queries)
}

func (s *Stores) Responses() ResponseStore {
	return newResponseStore(s.queries)
}

func (s *Stores) ChangeLogs() ChangeLogStore {
	return newChangeLogStore(s.queries)
}
