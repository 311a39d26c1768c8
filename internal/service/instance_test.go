package service_test

import (
	"context"
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/queue"
	"basegraph.app/surveys/internal/service"
	"basegraph.app/surveys/internal/store"
)

const (
	testTemplateID int64 = 10
	testRunID      int64 = 20
	mandatoryQ     int64 = 31
	numberQ        int64 = 32
	commentQ       int64 = 33
)

func seedIssuedRun(db *memDB) {
	db.putTemplate(model.SurveyTemplate{
		ID:               testTemplateID,
		Name:             "Resilience",
		TargetEntityKind: model.EntityKindApplication,
		Status:           model.TemplateStatusActive,
	})
	db.putQuestion(model.SurveyQuestion{ID: mandatoryQ, TemplateID: testTemplateID, QuestionText: "Owner?", FieldType: model.FieldTypeText, IsMandatory: true, Position: 1})
	db.putQuestion(model.SurveyQuestion{ID: numberQ, TemplateID: testTemplateID, QuestionText: "RTO hours?", FieldType: model.FieldTypeNumber, Position: 2})
	db.putQuestion(model.SurveyQuestion{ID: commentQ, TemplateID: testTemplateID, QuestionText: "Tested?", FieldType: model.FieldTypeBoolean, AllowComment: true, Position: 3})
	db.putRun(model.SurveyRun{
		ID:         testRunID,
		TemplateID: testTemplateID,
		Name:       "Q3",
		SelectionOptions: model.SelectionOptions{
			Entity: model.Ref(model.EntityKindAppGroup, 7),
			Scope:  model.HierarchyScopeExact,
		},
		InvolvementKindIDs: []int64{3},
		IssuanceKind:       model.IssuanceKindIndividual,
		DueDate:            date(2026, 11, 1),
		ApprovalDueDate:    date(2026, 11, 15),
		Status:             model.RunStatusIssued,
	})
}

func text(s string) service.ResponseInput {
	return service.ResponseInput{QuestionID: mandatoryQ, Answer: model.Answer{String: &s}}
}

var _ = Describe("InstanceService", func() {
	var (
		ctx    context.Context
		db     *memDB
		events *mockProducer
		svc    service.InstanceService
		instID int64
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		events = &mockProducer{}
		svc = service.NewInstanceService(db, db, &mockRecipientGenerator{}, events, newSeqIDs(5000))

		seedIssuedRun(db)
		instID = 40
		db.putInstance(model.SurveyInstance{
			ID:              instID,
			RunID:           testRunID,
			Entity:          model.Ref(model.EntityKindApplication, 1),
			Qualifier:       &model.EntityReference{Kind: model.EntityKindMeasurable, ID: 77},
			Status:          model.InstanceStatusNotStarted,
			DueDate:         date(2026, 10, 1),
			ApprovalDueDate: date(2026, 10, 15),
		}, 9, 8)
	})

	complete := func() {
		_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{text("Team A")}, true)
		Expect(err).NotTo(HaveOccurred())
	}

	Describe("SubmitResponse", func() {
		It("saves a draft and moves NOT_STARTED to IN_PROGRESS", func() {
			inst, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{text("Team A")}, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Status).To(Equal(model.InstanceStatusInProgress))
			Expect(inst.SubmittedAt).To(BeNil())

			responses, err := svc.Responses(ctx, instID)
			Expect(err).NotTo(HaveOccurred())
			Expect(responses).To(HaveLen(1))
			Expect(*responses[0].Answer.String).To(Equal("Team A"))
			Expect(responses[0].LastUpdatedBy).To(Equal("carol"))
		})

		It("completes when all mandatory questions are answered and stamps the submitter", func() {
			_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{text("Team A")}, false)
			Expect(err).NotTo(HaveOccurred())

			inst, err := svc.SubmitResponse(ctx, "carol", instID, nil, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Status).To(Equal(model.InstanceStatusCompleted))
			Expect(inst.SubmittedBy).To(HaveValue(Equal("carol")))
			Expect(inst.SubmittedAt).NotTo(BeNil())
		})

		It("refuses a final submission with unanswered mandatory questions", func() {
			num := 4.0
			_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{
				{QuestionID: numberQ, Answer: model.Answer{Number: &num}},
			}, true)
			Expect(domain.IsKind(err, domain.KindValidation)).To(BeTrue())

			inst, err := svc.Get(ctx, instID)
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Status).To(Equal(model.InstanceStatusNotStarted))
			responses, err := svc.Responses(ctx, instID)
			Expect(err).NotTo(HaveOccurred())
			Expect(responses).To(BeEmpty())
		})

		It("treats a blank answer as unanswered", func() {
			_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{text("   ")}, true)
			Expect(domain.IsKind(err, domain.KindValidation)).To(BeTrue())
		})

		It("rejects answers of the wrong type", func() {
			_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{
				{QuestionID: numberQ, Answer: model.Answer{String: strPtr("four")}},
			}, false)
			Expect(domain.IsKind(err, domain.KindValidation)).To(BeTrue())
			Expect(errors.Is(err, model.ErrAnswerType)).To(BeTrue())
		})

		It("rejects questions from another template", func() {
			_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{
				{QuestionID: 999, Answer: model.Answer{String: strPtr("x")}},
			}, false)
			Expect(domain.IsKind(err, domain.KindValidation)).To(BeTrue())
		})

		It("accepts comments only where the question allows them", func() {
			yes := true
			_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{
				{QuestionID: commentQ, Answer: model.Answer{Boolean: &yes}, Comment: strPtr("failover drill in May")},
			}, false)
			Expect(err).NotTo(HaveOccurred())

			num := 2.0
			_, err = svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{
				{QuestionID: numberQ, Answer: model.Answer{Number: &num}, Comment: strPtr("roughly")},
			}, false)
			Expect(domain.IsKind(err, domain.KindValidation)).To(BeTrue())
		})

		It("rejects the same question twice in one submission", func() {
			_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{text("a"), text("b")}, false)
			Expect(domain.IsKind(err, domain.KindValidation)).To(BeTrue())
		})

		It("refuses responses once the instance is COMPLETED", func() {
			complete()
			_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{text("late")}, false)
			Expect(domain.IsKind(err, domain.KindInvalidState)).To(BeTrue())
		})

		It("rolls back the status change when a response fails to save", func() {
			db.failOn("responses.upsert", errors.New("constraint"))
			_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{text("Team A")}, true)
			Expect(err).To(HaveOccurred())

			inst, err := svc.Get(ctx, instID)
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Status).To(Equal(model.InstanceStatusNotStarted))
			Expect(db.logsFor(inst.Ref())).To(BeEmpty())
		})
	})

	It("reports a lost compare-and-set as a concurrent modification", func() {
		db.failOn("instances.update_status", store.ErrStatusMismatch)
		_, err := svc.Withdraw(ctx, "alice", instID)
		Expect(domain.IsKind(err, domain.KindConcurrentModification)).To(BeTrue())
	})

	Describe("approval", func() {
		It("approves a COMPLETED instance", func() {
			complete()
			inst, err := svc.Approve(ctx, "dave", instID)
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Status).To(Equal(model.InstanceStatusApproved))
			Expect(inst.ApprovedBy).To(HaveValue(Equal("dave")))
			Expect(inst.ApprovedAt).NotTo(BeNil())
		})

		It("cannot approve before completion", func() {
			_, err := svc.Approve(ctx, "dave", instID)
			Expect(domain.IsKind(err, domain.KindInvalidStateTransition)).To(BeTrue())
		})

		It("rejects back to IN_PROGRESS and records the reason", func() {
			complete()
			inst, err := svc.Reject(ctx, "dave", instID, "  missing RTO ")
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Status).To(Equal(model.InstanceStatusInProgress))

			logs := db.logsFor(inst.Ref())
			Expect(logs[len(logs)-1].Message).To(Equal("Survey rejected: missing RTO"))
		})

		It("requires a reason to reject", func() {
			complete()
			_, err := svc.Reject(ctx, "dave", instID, " ")
			Expect(domain.IsKind(err, domain.KindValidation)).To(BeTrue())
		})

		It("only rejects COMPLETED instances", func() {
			_, err := svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{text("Team A")}, false)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Reject(ctx, "dave", instID, "no")
			Expect(domain.IsKind(err, domain.KindInvalidStateTransition)).To(BeTrue())
		})

		It("lets exactly one of two racing reviewers win", func() {
			complete()

			var wg sync.WaitGroup
			errs := make([]error, 2)
			wg.Add(2)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				_, errs[0] = svc.Approve(ctx, "dave", instID)
			}()
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				_, errs[1] = svc.Reject(ctx, "erin", instID, "incomplete")
			}()
			wg.Wait()

			failed := 0
			for _, err := range errs {
				if err != nil {
					failed++
					Expect(domain.IsKind(err, domain.KindInvalidStateTransition)).To(BeTrue())
				}
			}
			Expect(failed).To(Equal(1))
		})
	})

	Describe("Withdraw", func() {
		It("withdraws from NOT_STARTED and then accepts nothing further", func() {
			inst, err := svc.Withdraw(ctx, "alice", instID)
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Status).To(Equal(model.InstanceStatusWithdrawn))

			_, err = svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{text("x")}, false)
			Expect(domain.IsKind(err, domain.KindInvalidState)).To(BeTrue())

			_, err = svc.Withdraw(ctx, "alice", instID)
			Expect(domain.IsKind(err, domain.KindInvalidStateTransition)).To(BeTrue())
		})

		It("cannot withdraw an APPROVED instance", func() {
			complete()
			_, err := svc.Approve(ctx, "dave", instID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Withdraw(ctx, "alice", instID)
			Expect(domain.IsKind(err, domain.KindInvalidStateTransition)).To(BeTrue())
		})
	})

	Describe("Reissue", func() {
		It("creates a superseding copy with the same target, qualifier and recipients", func() {
			complete()

			next, err := svc.Reissue(ctx, "alice", instID)
			Expect(err).NotTo(HaveOccurred())
			Expect(next.ID).NotTo(Equal(instID))
			Expect(next.OriginalInstanceID).To(HaveValue(Equal(instID)))
			Expect(next.Status).To(Equal(model.InstanceStatusNotStarted))
			Expect(next.Entity).To(Equal(model.Ref(model.EntityKindApplication, 1)))
			Expect(next.Qualifier).To(HaveValue(Equal(model.EntityReference{Kind: model.EntityKindMeasurable, ID: 77})))
			Expect(next.DueDate).To(Equal(date(2026, 11, 1)))

			recipients, err := svc.Recipients(ctx, next.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(recipients).To(HaveLen(2))

			latest, err := svc.ListForRun(ctx, testRunID, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).To(HaveLen(1))
			Expect(latest[0].ID).To(Equal(next.ID))

			all, err := svc.ListForRun(ctx, testRunID, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))

			Expect(events.published()).To(ConsistOf(HaveField("Type", queue.EventInstanceReissued)))
		})

		It("refuses to reissue an instance twice", func() {
			_, err := svc.Reissue(ctx, "alice", instID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Reissue(ctx, "alice", instID)
			Expect(domain.IsKind(err, domain.KindConflict)).To(BeTrue())
		})

		It("freezes the superseded instance", func() {
			next, err := svc.Reissue(ctx, "alice", instID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.SubmitResponse(ctx, "carol", instID, []service.ResponseInput{text("Team A")}, true)
			Expect(domain.IsKind(err, domain.KindInvalidState)).To(BeTrue())
			_, err = svc.Withdraw(ctx, "alice", instID)
			Expect(domain.IsKind(err, domain.KindInvalidState)).To(BeTrue())

			old, err := svc.Get(ctx, instID)
			Expect(err).NotTo(HaveOccurred())
			Expect(old.Status).To(Equal(model.InstanceStatusNotStarted))
			responses, err := svc.Responses(ctx, instID)
			Expect(err).NotTo(HaveOccurred())
			Expect(responses).To(BeEmpty())

			_, err = svc.SubmitResponse(ctx, "carol", next.ID, []service.ResponseInput{text("Team A")}, true)
			Expect(err).NotTo(HaveOccurred())
		})

		It("refuses to approve a completed instance once it has been reissued", func() {
			complete()
			_, err := svc.Reissue(ctx, "alice", instID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Approve(ctx, "dave", instID)
			Expect(domain.IsKind(err, domain.KindInvalidState)).To(BeTrue())
			_, err = svc.Reject(ctx, "dave", instID, "needs detail")
			Expect(domain.IsKind(err, domain.KindInvalidState)).To(BeTrue())
		})

		It("refuses when the run is CLOSED", func() {
			db.putRun(model.SurveyRun{ID: testRunID, TemplateID: testTemplateID, Status: model.RunStatusClosed})
			_, err := svc.Reissue(ctx, "alice", instID)
			Expect(domain.IsKind(err, domain.KindInvalidState)).To(BeTrue())
		})
	})

	Describe("ListForRecipient", func() {
		It("returns the latest instances addressed to the person", func() {
			_, err := svc.Reissue(ctx, "alice", instID)
			Expect(err).NotTo(HaveOccurred())

			mine, err := svc.ListForRecipient(ctx, 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(HaveLen(1))
			Expect(mine[0].OriginalInstanceID).To(HaveValue(Equal(instID)))

			none, err := svc.ListForRecipient(ctx, 12345)
			Expect(err).NotTo(HaveOccurred())
			Expect(none).To(BeEmpty())
		})
	})
})
