package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/service"
)

var _ = Describe("ChangeLogService", func() {
	var (
		ctx       context.Context
		db        *memDB
		templates service.TemplateService
		history   service.ChangeLogService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		templates = service.NewTemplateService(db, db, newSeqIDs(1))
		history = service.NewChangeLogService(db)
	})

	It("returns a parent's entries newest first", func() {
		tpl, err := templates.Create(ctx, "alice", service.TemplateDraft{Name: "x", TargetEntityKind: model.EntityKindApplication})
		Expect(err).NotTo(HaveOccurred())
		_, err = templates.UpdateStatus(ctx, "bob", tpl.ID, model.TemplateStatusActive)
		Expect(err).NotTo(HaveOccurred())

		entries, err := history.History(ctx, tpl.Ref(), 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].UserID).To(Equal("bob"))
		Expect(entries[1].Operation).To(Equal(model.OperationAdd))

		limited, err := history.History(ctx, tpl.Ref(), 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(limited).To(HaveLen(1))
	})
})
