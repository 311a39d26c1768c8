package materializer

import (
	"cmp"
	"slices"

	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
)

// ExistingInstance is a latest instance of a run together with its recipients.
type ExistingInstance struct {
	Instance  model.SurveyInstance
	PersonIDs []int64
}

// Plan is the diff between what a run has and what it should have.
type Plan struct {
	Create    []domain.CandidateRecipient
	Unchanged []model.SurveyInstance
	// Orphans are live instances no candidate matches any more. They are
	// reported, never removed.
	Orphans []model.SurveyInstance
}

// Diff matches candidates to existing instances by target entity and
// recipient set.
//
// An existing instance in any status satisfies a candidate, terminal ones
// (APPROVED, WITHDRAWN) included. Matching only live instances would issue a
// fresh copy to every entity whose survey was already approved or withdrawn
// on each reconcile, so repeated calls would keep creating instances.
// Replacing a finished instance is what Reissue is for. Only live instances
// can be orphans.
func Diff(existing []ExistingInstance, candidates []domain.CandidateRecipient) Plan {
	byKey := make(map[string][]model.SurveyInstance, len(existing))
	for _, e := range existing {
		key := domain.RecipientKey(e.Instance.Entity, e.PersonIDs)
		byKey[key] = append(byKey[key], e.Instance)
	}

	var plan Plan
	matched := make(map[int64]bool, len(existing))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		key := c.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		instances, ok := byKey[key]
		if !ok {
			plan.Create = append(plan.Create, c)
			continue
		}
		for _, inst := range instances {
			matched[inst.ID] = true
			plan.Unchanged = append(plan.Unchanged, inst)
		}
	}

	for _, e := range existing {
		if !matched[e.Instance.ID] && !e.Instance.Status.IsTerminal() {
			plan.Orphans = append(plan.Orphans, e.Instance)
		}
	}

	slices.SortFunc(plan.Create, compareCandidates)
	slices.SortFunc(plan.Unchanged, compareInstances)
	slices.SortFunc(plan.Orphans, compareInstances)
	return plan
}

func compareInstances(a, b model.SurveyInstance) int {
	return cmp.Compare(a.ID, b.ID)
}
