package service

import (
	"context"
	"fmt"
	"log/slog"

	"basegraph.app/surveys/common/logger"
	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/materializer"
	"basegraph.app/surveys/internal/model"
	"go.opentelemetry.io/otel/attribute"
)

// Reconcile brings a run's instances in line with its current recipients.
// Candidates are computed before the transaction; the diff and all writes
// happen under a lock on the run row, so concurrent reconciles of the same
// run cannot create duplicates and a failure leaves nothing behind.
func (s *instanceService) Reconcile(ctx context.Context, actor string, runID int64) (*domain.ReconciliationResult, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	ctx = s.withFields(ctx, actor, &runID, nil)

	sc := logger.StartSpan(ctx, "surveys.reconcile")
	defer sc.End()
	ctx = sc.Context()

	result, err := s.reconcile(ctx, actor, runID)
	if err != nil {
		sc.RecordError(err)
		return nil, err
	}

	sc.Span().SetAttributes(
		attribute.Int64("run_id", runID),
		attribute.Int("created", len(result.Created)),
		attribute.Int("orphans", len(result.RemovedOrphans)),
	)
	slog.InfoContext(ctx, "survey run reconciled",
		"created", len(result.Created),
		"unchanged", len(result.Unchanged),
		"orphans", len(result.RemovedOrphans),
	)
	return result, nil
}

func (s *instanceService) reconcile(ctx context.Context, actor string, runID int64) (*domain.ReconciliationResult, error) {
	run, err := s.stores.Runs().GetByID(ctx, runID)
	if err != nil {
		return nil, lookupErr(err, entityRun, runID)
	}
	if run.Status == model.RunStatusClosed {
		return nil, domain.InvalidState(entityRun, "%d is CLOSED and cannot be reconciled", runID)
	}
	tpl, err := s.stores.Templates().GetByID(ctx, run.TemplateID)
	if err != nil {
		return nil, lookupErr(err, entityTemplate, run.TemplateID)
	}

	candidates, err := s.generator.GenerateRecipients(ctx, tpl.TargetEntityKind, run)
	if err != nil {
		return nil, err
	}

	result := &domain.ReconciliationResult{}
	err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
		locked, err := stores.Runs().Lock(ctx, runID)
		if err != nil {
			return lookupErr(err, entityRun, runID)
		}
		if locked.Status == model.RunStatusClosed {
			return domain.InvalidState(entityRun, "%d is CLOSED and cannot be reconciled", runID)
		}

		existing, err := s.existingInstances(ctx, stores, runID)
		if err != nil {
			return err
		}
		plan := materializer.Diff(existing, candidates)

		for _, c := range plan.Create {
			inst, err := s.createInstance(ctx, stores, actor, locked, c)
			if err != nil {
				return err
			}
			result.Created = append(result.Created, *inst)
		}
		result.Unchanged = plan.Unchanged
		result.RemovedOrphans = plan.Orphans

		return s.audit.record(ctx, stores, actor, locked.Ref(), model.OperationUpdate, kindPtr(model.EntityKindSurveyInstance),
			"Recipients reconciled: %d created, %d unchanged, %d orphaned",
			len(result.Created), len(result.Unchanged), len(result.RemovedOrphans))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *instanceService) existingInstances(ctx context.Context, stores StoreProvider, runID int64) ([]materializer.ExistingInstance, error) {
	latest, err := stores.Instances().ListLatestByRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("listing instances of run %d: %w", runID, err)
	}
	ids := make([]int64, len(latest))
	for i, inst := range latest {
		ids[i] = inst.ID
	}
	people, err := stores.Recipients().PersonIDsByInstance(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing recipients of run %d: %w", runID, err)
	}

	existing := make([]materializer.ExistingInstance, len(latest))
	for i, inst := range latest {
		existing[i] = materializer.ExistingInstance{Instance: inst, PersonIDs: people[inst.ID]}
	}
	return existing, nil
}

func (s *instanceService) createInstance(ctx context.Context, stores StoreProvider, actor string, run *model.SurveyRun, c domain.CandidateRecipient) (*model.SurveyInstance, error) {
	inst := &model.SurveyInstance{
		ID:              s.ids.Next(),
		RunID:           run.ID,
		Entity:          c.Entity,
		Status:          model.InstanceStatusNotStarted,
		DueDate:         run.DueDate,
		ApprovalDueDate: run.ApprovalDueDate,
	}
	if err := stores.Instances().Create(ctx, inst); err != nil {
		return nil, fmt.Errorf("creating instance for %s: %w", c.Entity, err)
	}
	for _, p := range c.PersonIDs {
		if err := stores.Recipients().Add(ctx, inst.ID, p); err != nil {
			return nil, fmt.Errorf("adding recipient %d to instance %d: %w", p, inst.ID, err)
		}
	}
	if err := s.audit.record(ctx, stores, actor, inst.Ref(), model.OperationAdd, nil,
		"Survey instance created for %s", c.Entity); err != nil {
		return nil, err
	}
	return inst, nil
}
