package handler_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/service"
)

var _ = Describe("InstanceHandler", func() {
	var api *testAPI

	BeforeEach(func() {
		api = newTestAPI()
	})

	instance := func(id int64, status model.InstanceStatus) *model.SurveyInstance {
		return &model.SurveyInstance{
			ID:     id,
			RunID:  20,
			Entity: model.Ref(model.EntityKindApplication, 1),
			Status: status,
		}
	}

	Describe("SubmitResponses", func() {
		It("forwards typed answers and the final flag", func() {
			var (
				gotAnswers []service.ResponseInput
				gotFinal   bool
			)
			api.instances.submitResponseFn = func(_ context.Context, _ string, id int64, answers []service.ResponseInput, final bool) (*model.SurveyInstance, error) {
				gotAnswers, gotFinal = answers, final
				return instance(id, model.InstanceStatusCompleted), nil
			}

			w := api.do(http.MethodPut, "/instances/40/responses", map[string]any{
				"final": true,
				"answers": []map[string]any{
					{"question_id": "31", "answer": map[string]any{"string": "yes"}},
					{"question_id": "33", "answer": map[string]any{"boolean": true}, "comment": "checked"},
				},
			})

			Expect(w.Code).To(Equal(http.StatusOK), w.Body.String())
			Expect(gotFinal).To(BeTrue())
			Expect(gotAnswers).To(HaveLen(2))
			Expect(gotAnswers[0].QuestionID).To(BeEquivalentTo(31))
			Expect(*gotAnswers[0].Answer.String).To(Equal("yes"))
			Expect(*gotAnswers[1].Answer.Boolean).To(BeTrue())
			Expect(*gotAnswers[1].Comment).To(Equal("checked"))
			Expect(decode(w)["status"]).To(Equal("COMPLETED"))
		})

		It("returns 400 for missing mandatory answers", func() {
			api.instances.submitResponseFn = func(context.Context, string, int64, []service.ResponseInput, bool) (*model.SurveyInstance, error) {
				return nil, domain.Validation("mandatory questions unanswered: [31]")
			}

			w := api.do(http.MethodPut, "/instances/40/responses", map[string]any{"final": true})
			resp := expectError(w, http.StatusBadRequest, "validation")
			Expect(resp["error"]).To(ContainSubstring("31"))
		})

		It("returns 422 for terminal instances", func() {
			api.instances.submitResponseFn = func(context.Context, string, int64, []service.ResponseInput, bool) (*model.SurveyInstance, error) {
				return nil, domain.InvalidState("survey instance", "instance 40 is APPROVED")
			}

			w := api.do(http.MethodPut, "/instances/40/responses", map[string]any{"answers": []any{}})
			expectError(w, http.StatusUnprocessableEntity, "invalid_state")
		})

		It("returns 400 for malformed JSON", func() {
			w := api.do(http.MethodPut, "/instances/40/responses", `{"answers": [`)
			expectError(w, http.StatusBadRequest, "validation")
		})
	})

	Describe("Approve", func() {
		It("returns the approved instance", func() {
			api.instances.approveFn = func(_ context.Context, actor string, id int64) (*model.SurveyInstance, error) {
				inst := instance(id, model.InstanceStatusApproved)
				inst.ApprovedBy = &actor
				return inst, nil
			}

			w := api.do(http.MethodPost, "/instances/40/approve", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["status"]).To(Equal("APPROVED"))
			Expect(resp["approved_by"]).To(Equal("alice"))
		})

		It("returns 409 when another reviewer got there first", func() {
			api.instances.approveFn = func(_ context.Context, _ string, id int64) (*model.SurveyInstance, error) {
				return nil, domain.ConcurrentModification("survey instance", id)
			}

			w := api.do(http.MethodPost, "/instances/40/approve", nil)
			expectError(w, http.StatusConflict, "concurrent_modification")
		})
	})

	Describe("Reject", func() {
		It("requires a reason", func() {
			w := api.do(http.MethodPost, "/instances/40/reject", map[string]any{})
			expectError(w, http.StatusBadRequest, "validation")
		})

		It("forwards the reason", func() {
			var gotReason string
			api.instances.rejectFn = func(_ context.Context, _ string, id int64, reason string) (*model.SurveyInstance, error) {
				gotReason = reason
				return instance(id, model.InstanceStatusInProgress), nil
			}

			w := api.do(http.MethodPost, "/instances/40/reject", map[string]any{"reason": "missing owner"})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotReason).To(Equal("missing owner"))
		})
	})

	Describe("Reissue", func() {
		It("returns 201 with the successor linked to the original", func() {
			api.instances.reissueFn = func(_ context.Context, _ string, id int64) (*model.SurveyInstance, error) {
				next := instance(id+1, model.InstanceStatusNotStarted)
				next.OriginalInstanceID = &id
				return next, nil
			}

			w := api.do(http.MethodPost, "/instances/40/reissue", nil)
			Expect(w.Code).To(Equal(http.StatusCreated))
			resp := decode(w)
			Expect(resp["id"]).To(Equal("41"))
			Expect(resp["original_instance_id"]).To(Equal("40"))
		})

		It("returns 409 when the instance was already reissued", func() {
			api.instances.reissueFn = func(context.Context, string, int64) (*model.SurveyInstance, error) {
				return nil, domain.Conflict("survey instance", "instance 40 already reissued")
			}

			w := api.do(http.MethodPost, "/instances/40/reissue", nil)
			expectError(w, http.StatusConflict, "conflict")
		})
	})

	It("withdraws an instance", func() {
		api.instances.withdrawFn = func(_ context.Context, _ string, id int64) (*model.SurveyInstance, error) {
			return instance(id, model.InstanceStatusWithdrawn), nil
		}

		w := api.do(http.MethodPost, "/instances/40/withdraw", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["status"]).To(Equal("WITHDRAWN"))
	})

	It("lists a person's instances", func() {
		var gotPerson int64
		api.instances.listForRecipientFn = func(_ context.Context, personID int64) ([]model.SurveyInstance, error) {
			gotPerson = personID
			return []model.SurveyInstance{*instance(40, model.InstanceStatusInProgress)}, nil
		}

		w := api.do(http.MethodGet, "/people/7/instances", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotPerson).To(BeEquivalentTo(7))
		Expect(decode(w)["instances"]).To(HaveLen(1))
	})

	It("lists recipients and responses", func() {
		api.instances.recipientsFn = func(_ context.Context, id int64) ([]model.SurveyInstanceRecipient, error) {
			return []model.SurveyInstanceRecipient{{InstanceID: id, PersonID: 7}}, nil
		}
		answer := "yes"
		api.instances.responsesFn = func(_ context.Context, id int64) ([]model.SurveyQuestionResponse, error) {
			return []model.SurveyQuestionResponse{{InstanceID: id, QuestionID: 31, Answer: model.Answer{String: &answer}}}, nil
		}

		w := api.do(http.MethodGet, "/instances/40/recipients", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["recipients"]).To(HaveLen(1))

		w = api.do(http.MethodGet, "/instances/40/responses", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["responses"]).To(HaveLen(1))
	})
})

var _ = Describe("ChangeLogHandler", func() {
	var api *testAPI

	BeforeEach(func() {
		api = newTestAPI()
	})

	It("loads history for the parent in the path", func() {
		var (
			gotParent model.EntityReference
			gotLimit  int32
		)
		api.changeLogs.historyFn = func(_ context.Context, parent model.EntityReference, limit int32) ([]model.ChangeLog, error) {
			gotParent, gotLimit = parent, limit
			return []model.ChangeLog{{ID: 1, Parent: parent, Operation: model.OperationAdd, Message: "Survey template created", UserID: "alice"}}, nil
		}

		w := api.do(http.MethodGet, "/change-log/SURVEY_TEMPLATE/10?limit=5", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotParent).To(Equal(model.Ref(model.EntityKindSurveyTemplate, 10)))
		Expect(gotLimit).To(BeEquivalentTo(5))

		entries := decode(w)["entries"].([]any)
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].(map[string]any)["operation"]).To(Equal("ADD"))
	})

	It("returns 400 for an unknown entity kind", func() {
		w := api.do(http.MethodGet, "/change-log/WIDGET/10", nil)
		expectError(w, http.StatusBadRequest, "validation")
	})

	It("returns 400 for a malformed limit", func() {
		w := api.do(http.MethodGet, "/change-log/SURVEY_RUN/10?limit=lots", nil)
		expectError(w, http.StatusBadRequest, "validation")
	})
})
