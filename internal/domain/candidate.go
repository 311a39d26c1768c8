package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"basegraph.app/surveys/internal/model"
)

// CandidateRecipient is one instance a run should have: a target entity and
// the people who must answer it. PersonIDs is sorted and free of duplicates.
type CandidateRecipient struct {
	Entity    model.EntityReference `json:"entity"`
	PersonIDs []int64               `json:"person_ids"`
}

// Key identifies the candidate by target and unordered recipient set.
func (c CandidateRecipient) Key() string {
	return RecipientKey(c.Entity, c.PersonIDs)
}

// RecipientKey builds the match key used when reconciling candidates with
// existing instances. Person order does not affect the key.
func RecipientKey(entity model.EntityReference, personIDs []int64) string {
	ids := slices.Clone(personIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("%s|%s", entity, strings.Join(parts, ","))
}

// ReconciliationResult reports what reconcile did for one run.
type ReconciliationResult struct {
	Created        []model.SurveyInstance `json:"created"`
	Unchanged      []model.SurveyInstance `json:"unchanged"`
	RemovedOrphans []model.SurveyInstance `json:"removed_orphans"`
}
