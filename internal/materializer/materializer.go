// Package materializer computes the recipients a survey run should have
// without touching persisted state.
package materializer

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/selection"
)

type Materializer struct {
	resolver selection.Resolver
	lookup   selection.InvolvementLookup
}

func New(resolver selection.Resolver, lookup selection.InvolvementLookup) *Materializer {
	return &Materializer{resolver: resolver, lookup: lookup}
}

// GenerateRecipients resolves the run's selection against entities of kind
// target and pairs each entity with the people holding one of the run's
// involvement kinds. Entities nobody is involved with are dropped. The
// result is sorted and free of duplicates, so equal inputs give equal output.
func (m *Materializer) GenerateRecipients(ctx context.Context, target model.EntityKind, run *model.SurveyRun) ([]domain.CandidateRecipient, error) {
	ids, err := m.resolver.Resolve(ctx, target, run.SelectionOptions)
	if err != nil {
		return nil, domain.UpstreamResolution(err, "resolving selection for run %d", run.ID)
	}
	ids = uniqueSorted(ids)

	var candidates []domain.CandidateRecipient
	dropped := 0
	for _, entityID := range ids {
		if err := ctx.Err(); err != nil {
			return nil, domain.UpstreamResolution(err, "generating recipients for run %d interrupted", run.ID)
		}

		entity := model.Ref(target, entityID)
		people, err := m.lookup.FindPeople(ctx, entity, run.InvolvementKindIDs)
		if err != nil {
			return nil, domain.UpstreamResolution(err, "looking up involvement for %s", entity)
		}
		people = uniqueSorted(people)

		if len(people) == 0 {
			dropped++
			continue
		}

		switch run.IssuanceKind {
		case model.IssuanceKindGroup:
			candidates = append(candidates, domain.CandidateRecipient{Entity: entity, PersonIDs: people})
		default:
			for _, p := range people {
				candidates = append(candidates, domain.CandidateRecipient{Entity: entity, PersonIDs: []int64{p}})
			}
		}
	}

	slices.SortFunc(candidates, compareCandidates)

	slog.DebugContext(ctx, "recipients generated",
		"run_id", run.ID,
		"resolved_entities", len(ids),
		"dropped_entities", dropped,
		"candidates", len(candidates),
	)

	return candidates, nil
}

func compareCandidates(a, b domain.CandidateRecipient) int {
	return cmp.Or(
		cmp.Compare(a.Entity.Kind, b.Entity.Kind),
		cmp.Compare(a.Entity.ID, b.Entity.ID),
		slices.Compare(a.PersonIDs, b.PersonIDs),
	)
}

func uniqueSorted(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
