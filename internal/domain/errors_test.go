package domain_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
)

var _ = Describe("Error", func() {
	It("reports its kind through wrapping", func() {
		err := fmt.Errorf("approving: %w", domain.NotFound("survey instance", 4))

		Expect(domain.KindOf(err)).To(Equal(domain.KindNotFound))
		Expect(domain.IsKind(err, domain.KindNotFound)).To(BeTrue())
		Expect(err.Error()).To(Equal("approving: survey instance: 4 not found"))
	})

	It("classifies foreign errors as internal", func() {
		Expect(domain.KindOf(errors.New("boom"))).To(Equal(domain.KindInternal))
		Expect(domain.IsKind(nil, domain.KindInternal)).To(BeFalse())
	})

	It("unwraps to its cause", func() {
		cause := errors.New("connection refused")
		err := domain.UpstreamResolution(cause, "resolving selection for run %d", 3)

		Expect(errors.Is(err, cause)).To(BeTrue())
		Expect(err.Error()).To(Equal("resolving selection for run 3: connection refused"))
		Expect(err.Summary()).To(Equal("resolving selection for run 3"))
		Expect(domain.NotFound("survey run", 8).Summary()).To(Equal("survey run: 8 not found"))
	})

	It("matches by kind and optional entity with errors.Is", func() {
		err := domain.Conflict("survey template", "template %d has runs", 1)

		Expect(errors.Is(err, &domain.Error{Kind: domain.KindConflict})).To(BeTrue())
		Expect(errors.Is(err, &domain.Error{Kind: domain.KindConflict, Entity: "survey template"})).To(BeTrue())
		Expect(errors.Is(err, &domain.Error{Kind: domain.KindConflict, Entity: "survey run"})).To(BeFalse())
		Expect(errors.Is(err, &domain.Error{Kind: domain.KindValidation})).To(BeFalse())
	})

	It("names both ends of a rejected transition", func() {
		err := domain.InvalidStateTransition("survey run", model.RunStatusClosed, model.RunStatusIssued)
		Expect(err.Error()).To(Equal("survey run: cannot transition from CLOSED to ISSUED"))
	})

	It("renders codes in lower snake case", func() {
		Expect(domain.KindConcurrentModification.Code()).To(Equal("concurrent_modification"))
		Expect(domain.KindUpstreamResolution.Code()).To(Equal("upstream_resolution"))
	})
})

var _ = Describe("CandidateRecipient", func() {
	It("keys on entity and the unordered recipient set", func() {
		entity := model.Ref(model.EntityKindApplication, 9)
		a := domain.CandidateRecipient{Entity: entity, PersonIDs: []int64{3, 1, 2}}
		b := domain.CandidateRecipient{Entity: entity, PersonIDs: []int64{1, 2, 3, 3}}

		Expect(a.Key()).To(Equal(b.Key()))
		Expect(a.Key()).To(Equal("APPLICATION/9|1,2,3"))
		Expect(a.PersonIDs).To(Equal([]int64{3, 1, 2}))
	})

	It("distinguishes targets and recipient sets", func() {
		one := domain.RecipientKey(model.Ref(model.EntityKindApplication, 9), []int64{1})
		Expect(one).NotTo(Equal(domain.RecipientKey(model.Ref(model.EntityKindApplication, 10), []int64{1})))
		Expect(one).NotTo(Equal(domain.RecipientKey(model.Ref(model.EntityKindChangeInitiative, 9), []int64{1})))
		Expect(one).NotTo(Equal(domain.RecipientKey(model.Ref(model.EntityKindApplication, 9), []int64{1, 2})))
	})
})
