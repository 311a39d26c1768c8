package service_test

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"basegraph.app/surveys/internal/domain"
	"basegraph.app/surveys/internal/model"
	"basegraph.app/surveys/internal/queue"
	"basegraph.app/surveys/internal/service"
	"basegraph.app/surveys/internal/store"
)

// memDB is an in-memory stand-in for the survey tables. Writes made inside
// WithTx are rolled back when the callback fails.
type memDB struct {
	txMu sync.Mutex
	mu   sync.Mutex

	templates  map[int64]model.SurveyTemplate
	questions  map[int64]model.SurveyQuestion
	runs       map[int64]model.SurveyRun
	instances  map[int64]model.SurveyInstance
	recipients map[int64][]int64
	responses  map[int64]map[int64]model.SurveyQuestionResponse
	changeLogs []model.ChangeLog

	// failures makes the named operation return the error once.
	failures map[string]error
}

func newMemDB() *memDB {
	return &memDB{
		templates:  map[int64]model.SurveyTemplate{},
		questions:  map[int64]model.SurveyQuestion{},
		runs:       map[int64]model.SurveyRun{},
		instances:  map[int64]model.SurveyInstance{},
		recipients: map[int64][]int64{},
		responses:  map[int64]map[int64]model.SurveyQuestionResponse{},
		failures:   map[string]error{},
	}
}

type memSnapshot struct {
	templates  map[int64]model.SurveyTemplate
	questions  map[int64]model.SurveyQuestion
	runs       map[int64]model.SurveyRun
	instances  map[int64]model.SurveyInstance
	recipients map[int64][]int64
	responses  map[int64]map[int64]model.SurveyQuestionResponse
	changeLogs []model.ChangeLog
}

func (db *memDB) snapshot() memSnapshot {
	db.mu.Lock()
	defer db.mu.Unlock()
	s := memSnapshot{
		templates:  maps.Clone(db.templates),
		questions:  maps.Clone(db.questions),
		runs:       maps.Clone(db.runs),
		instances:  maps.Clone(db.instances),
		recipients: make(map[int64][]int64, len(db.recipients)),
		responses:  make(map[int64]map[int64]model.SurveyQuestionResponse, len(db.responses)),
		changeLogs: slices.Clone(db.changeLogs),
	}
	for k, v := range db.recipients {
		s.recipients[k] = slices.Clone(v)
	}
	for k, v := range db.responses {
		s.responses[k] = maps.Clone(v)
	}
	return s
}

func (db *memDB) restore(s memSnapshot) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.templates = s.templates
	db.questions = s.questions
	db.runs = s.runs
	db.instances = s.instances
	db.recipients = s.recipients
	db.responses = s.responses
	db.changeLogs = s.changeLogs
}

func (db *memDB) failOn(op string, err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.failures[op] = err
}

// fail must be called with mu held.
func (db *memDB) fail(op string) error {
	if err, ok := db.failures[op]; ok {
		delete(db.failures, op)
		return err
	}
	return nil
}

func (db *memDB) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	db.txMu.Lock()
	defer db.txMu.Unlock()

	snap := db.snapshot()
	if err := fn(db); err != nil {
		db.restore(snap)
		return err
	}
	return nil
}

func (db *memDB) Templates() store.TemplateStore { return memTemplates{db} }
func (db *memDB) Questions() store.QuestionStore { return memQuestions{db} }
func (db *memDB) Runs() store.RunStore { return memRuns{db} }
func (db *memDB) Instances() store.InstanceStore { return memInstances{db} }
func (db *memDB) Recipients() store.RecipientStore { return memRecipients{db} }
func (db *memDB) Responses() store.ResponseStore { return memResponses{db} }
func (db *memDB) ChangeLogs() store.ChangeLogStore { return memChangeLogs{db} }

// helpers used by specs

func (db *memDB) logsFor(ref model.EntityReference) []model.ChangeLog {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []model.ChangeLog
	for _, l := range db.changeLogs {
		if l.Parent == ref {
			out = append(out, l)
		}
	}
	return out
}

func (db *memDB) instanceCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.instances)
}

func (db *memDB) putTemplate(t model.SurveyTemplate) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.templates[t.ID] = t
}

func (db *memDB) putQuestion(q model.SurveyQuestion) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.questions[q.ID] = q
}

func (db *memDB) putRun(r model.SurveyRun) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.runs[r.ID] = r
}

func (db *memDB) putInstance(i model.SurveyInstance, people ...int64) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.instances[i.ID] = i
	db.recipients[i.ID] = slices.Clone(people)
}

type memTemplates struct{ db *memDB }

func (s memTemplates) Create(_ context.Context, tpl *model.SurveyTemplate) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.fail("templates.create"); err != nil {
		return err
	}
	if _, ok := s.db.templates[tpl.ID]; ok {
		return store.ErrAlreadyExists
	}
	now := time.Now()
	tpl.CreatedAt, tpl.UpdatedAt = now, now
	s.db.templates[tpl.ID] = *tpl
	return nil
}

func (s memTemplates) GetByID(_ context.Context, id int64) (*model.SurveyTemplate, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	t, ok := s.db.templates[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (s memTemplates) GetForUpdate(ctx context.Context, id int64) (*model.SurveyTemplate, error) {
	return s.GetByID(ctx, id)
}

func (s memTemplates) List(_ context.Context) ([]model.SurveyTemplate, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := slices.Collect(maps.Values(s.db.templates))
	slices.SortFunc(out, func(a, b model.SurveyTemplate) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (s memTemplates) Update(_ context.Context, tpl *model.SurveyTemplate) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.templates[tpl.ID]; !ok {
		return store.ErrNotFound
	}
	tpl.UpdatedAt = time.Now()
	s.db.templates[tpl.ID] = *tpl
	return nil
}

func (s memTemplates) UpdateStatus(_ context.Context, id int64, expected, next model.TemplateStatus) (*model.SurveyTemplate, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	t, ok := s.db.templates[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if t.Status != expected {
		return nil, store.ErrStatusMismatch
	}
	t.Status = next
	s.db.templates[id] = t
	return &t, nil
}

func (s memTemplates) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.templates[id]; !ok {
		return store.ErrNotFound
	}
	for _, r := range s.db.runs {
		if r.TemplateID == id {
			return store.ErrReferenced
		}
	}
	delete(s.db.templates, id)
	for qid, q := range s.db.questions {
		if q.TemplateID == id {
			delete(s.db.questions, qid)
		}
	}
	return nil
}

type memQuestions struct{ db *memDB }

func (s memQuestions) Create(_ context.Context, q *model.SurveyQuestion) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.fail("questions.create"); err != nil {
		return err
	}
	q.CreatedAt = time.Now()
	s.db.questions[q.ID] = *q
	return nil
}

func (s memQuestions) GetByID(_ context.Context, id int64) (*model.SurveyQuestion, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	q, ok := s.db.questions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &q, nil
}

func (s memQuestions) Update(_ context.Context, q *model.SurveyQuestion) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.questions[q.ID]; !ok {
		return store.ErrNotFound
	}
	s.db.questions[q.ID] = *q
	return nil
}

func (s memQuestions) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.questions[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.questions, id)
	return nil
}

func (s memQuestions) ListByTemplate(_ context.Context, templateID int64) ([]model.SurveyQuestion, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var out []model.SurveyQuestion
	for _, q := range s.db.questions {
		if q.TemplateID == templateID {
			out = append(out, q)
		}
	}
	slices.SortFunc(out, func(a, b model.SurveyQuestion) int {
		return cmp.Or(cmp.Compare(a.Position, b.Position), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

type memRuns struct{ db *memDB }

func (s memRuns) Create(_ context.Context, run *model.SurveyRun) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.templates[run.TemplateID]; !ok {
		return store.ErrReferenced
	}
	now := time.Now()
	run.CreatedAt, run.UpdatedAt = now, now
	s.db.runs[run.ID] = *run
	return nil
}

func (s memRuns) GetByID(_ context.Context, id int64) (*model.SurveyRun, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	r, ok := s.db.runs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &r, nil
}

func (s memRuns) Lock(ctx context.Context, id int64) (*model.SurveyRun, error) {
	return s.GetByID(ctx, id)
}

func (s memRuns) Update(_ context.Context, run *model.SurveyRun, expected model.RunStatus) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	current, ok := s.db.runs[run.ID]
	if !ok {
		return store.ErrNotFound
	}
	if current.Status != expected {
		return store.ErrStatusMismatch
	}
	run.UpdatedAt = time.Now()
	s.db.runs[run.ID] = *run
	return nil
}

func (s memRuns) UpdateStatus(_ context.Context, id int64, expected, next model.RunStatus, issuedOn *time.Time) (*model.SurveyRun, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	r, ok := s.db.runs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if r.Status != expected {
		return nil, store.ErrStatusMismatch
	}
	r.Status = next
	if issuedOn != nil {
		r.IssuedOn = issuedOn
	}
	s.db.runs[id] = r
	return &r, nil
}

func (s memRuns) ListByTemplate(_ context.Context, templateID int64) ([]model.SurveyRun, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var out []model.SurveyRun
	for _, r := range s.db.runs {
		if r.TemplateID == templateID {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b model.SurveyRun) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (s memRuns) CountByTemplate(ctx context.Context, templateID int64) (int64, error) {
	runs, err := s.ListByTemplate(ctx, templateID)
	return int64(len(runs)), err
}

type memInstances struct{ db *memDB }

func (s memInstances) Create(_ context.Context, inst *model.SurveyInstance) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.fail("instances.create"); err != nil {
		return err
	}
	if inst.OriginalInstanceID != nil {
		for _, other := range s.db.instances {
			if other.OriginalInstanceID != nil && *other.OriginalInstanceID == *inst.OriginalInstanceID {
				return store.ErrAlreadyExists
			}
		}
	}
	now := time.Now()
	inst.CreatedAt, inst.UpdatedAt = now, now
	s.db.instances[inst.ID] = *inst
	return nil
}

func (s memInstances) GetByID(_ context.Context, id int64) (*model.SurveyInstance, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	i, ok := s.db.instances[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &i, nil
}

func (s memInstances) list(keep func(model.SurveyInstance) bool) []model.SurveyInstance {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var out []model.SurveyInstance
	for _, i := range s.db.instances {
		if keep(i) {
			out = append(out, i)
		}
	}
	slices.SortFunc(out, func(a, b model.SurveyInstance) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// superseded must be called with mu held.
func (s memInstances) superseded(id int64) bool {
	for _, other := range s.db.instances {
		if other.OriginalInstanceID != nil && *other.OriginalInstanceID == id {
			return true
		}
	}
	return false
}

func (s memInstances) ListByRun(_ context.Context, runID int64) ([]model.SurveyInstance, error) {
	return s.list(func(i model.SurveyInstance) bool { return i.RunID == runID }), nil
}

func (s memInstances) ListLatestByRun(_ context.Context, runID int64) ([]model.SurveyInstance, error) {
	return s.list(func(i model.SurveyInstance) bool { return i.RunID == runID && !s.superseded(i.ID) }), nil
}

func (s memInstances) ListLatestForRecipient(_ context.Context, personID int64) ([]model.SurveyInstance, error) {
	return s.list(func(i model.SurveyInstance) bool {
		return slices.Contains(s.db.recipients[i.ID], personID) && !s.superseded(i.ID)
	}), nil
}

func (s memInstances) UpdateStatus(_ context.Context, id int64, expected, next model.InstanceStatus, stamp store.InstanceStamp) (*model.SurveyInstance, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.fail("instances.update_status"); err != nil {
		return nil, err
	}
	i, ok := s.db.instances[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if i.Status != expected {
		return nil, store.ErrStatusMismatch
	}
	i.Status = next
	if stamp.SubmittedAt != nil {
		i.SubmittedAt = stamp.SubmittedAt
	}
	if stamp.SubmittedBy != nil {
		i.SubmittedBy = stamp.SubmittedBy
	}
	if stamp.ApprovedAt != nil {
		i.ApprovedAt = stamp.ApprovedAt
	}
	if stamp.ApprovedBy != nil {
		i.ApprovedBy = stamp.ApprovedBy
	}
	i.UpdatedAt = time.Now()
	s.db.instances[id] = i
	return &i, nil
}

func (s memInstances) HasSuccessor(_ context.Context, id int64) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.superseded(id), nil
}

func (s memInstances) CountLatestByStatus(ctx context.Context, runID int64) ([]model.StatusCount, error) {
	latest, _ := s.ListLatestByRun(ctx, runID)
	counts := map[model.InstanceStatus]int64{}
	for _, i := range latest {
		counts[i.Status]++
	}
	var out []model.StatusCount
	for status, n := range counts {
		out = append(out, model.StatusCount{Status: status, Count: n})
	}
	slices.SortFunc(out, func(a, b model.StatusCount) int { return cmp.Compare(a.Status, b.Status) })
	return out, nil
}

type memRecipients struct{ db *memDB }

func (s memRecipients) Add(_ context.Context, instanceID, personID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.fail("recipients.add"); err != nil {
		return err
	}
	if slices.Contains(s.db.recipients[instanceID], personID) {
		return store.ErrAlreadyExists
	}
	s.db.recipients[instanceID] = append(s.db.recipients[instanceID], personID)
	return nil
}

func (s memRecipients) ListByInstance(_ context.Context, instanceID int64) ([]model.SurveyInstanceRecipient, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	people := slices.Sorted(slices.Values(s.db.recipients[instanceID]))
	out := make([]model.SurveyInstanceRecipient, len(people))
	for i, p := range people {
		out[i] = model.SurveyInstanceRecipient{InstanceID: instanceID, PersonID: p}
	}
	return out, nil
}

func (s memRecipients) PersonIDsByInstance(_ context.Context, instanceIDs []int64) (map[int64][]int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := make(map[int64][]int64, len(instanceIDs))
	for _, id := range instanceIDs {
		if people, ok := s.db.recipients[id]; ok {
			out[id] = slices.Sorted(slices.Values(people))
		}
	}
	return out, nil
}

type memResponses struct{ db *memDB }

func (s memResponses) Upsert(_ context.Context, resp *model.SurveyQuestionResponse) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.fail("responses.upsert"); err != nil {
		return err
	}
	if s.db.responses[resp.InstanceID] == nil {
		s.db.responses[resp.InstanceID] = map[int64]model.SurveyQuestionResponse{}
	}
	resp.LastUpdatedAt = time.Now()
	s.db.responses[resp.InstanceID][resp.QuestionID] = *resp
	return nil
}

func (s memResponses) ListByInstance(_ context.Context, instanceID int64) ([]model.SurveyQuestionResponse, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := slices.Collect(maps.Values(s.db.responses[instanceID]))
	slices.SortFunc(out, func(a, b model.SurveyQuestionResponse) int { return cmp.Compare(a.QuestionID, b.QuestionID) })
	return out, nil
}

type memChangeLogs struct{ db *memDB }

func (s memChangeLogs) Record(_ context.Context, entry *model.ChangeLog) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.fail("changelogs.record"); err != nil {
		return err
	}
	entry.CreatedAt = time.Now()
	s.db.changeLogs = append(s.db.changeLogs, *entry)
	return nil
}

func (s memChangeLogs) ListByParent(_ context.Context, parent model.EntityReference, limit int32) ([]model.ChangeLog, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var out []model.ChangeLog
	for i := len(s.db.changeLogs) - 1; i >= 0 && len(out) < int(limit); i-- {
		if s.db.changeLogs[i].Parent == parent {
			out = append(out, s.db.changeLogs[i])
		}
	}
	return out, nil
}

type seqIDs struct {
	last atomic.Int64
}

func newSeqIDs(start int64) *seqIDs {
	ids := &seqIDs{}
	ids.last.Store(start)
	return ids
}

func (s *seqIDs) Next() int64 {
	return s.last.Add(1)
}

type mockRecipientGenerator struct {
	generateFn func(ctx context.Context, target model.EntityKind, run *model.SurveyRun) ([]domain.CandidateRecipient, error)
	calls      atomic.Int32
}

func (m *mockRecipientGenerator) GenerateRecipients(ctx context.Context, target model.EntityKind, run *model.SurveyRun) ([]domain.CandidateRecipient, error) {
	m.calls.Add(1)
	if m.generateFn != nil {
		return m.generateFn(ctx, target, run)
	}
	return nil, nil
}

type mockProducer struct {
	mu        sync.Mutex
	events    []queue.Event
	publishFn func(ctx context.Context, event queue.Event) error
}

func (m *mockProducer) Publish(ctx context.Context, event queue.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.publishFn != nil {
		if err := m.publishFn(ctx, event); err != nil {
			return err
		}
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}

func (m *mockProducer) published() []queue.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.events)
}

func strPtr(s string) *string {
	return &s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
