package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scopeforge/internal/model"
)

// In-memory fakes standing in for Mongo and Redis.

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
	saves    int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.Session)}
}

func (r *fakeSessionRepo) Save(ctx context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	copied.Answers = s.Answers.Clone()
	r.sessions[s.ID] = &copied
	r.saves++
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	copied.Answers = s.Answers.Clone()
	return &copied, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

type fakeSchemaRepo struct{}

func (fakeSchemaRepo) Create(ctx context.Context, s *model.Schema) (string, error) { return "", nil }
func (fakeSchemaRepo) GetByID(ctx context.Context, id string) (*model.Schema, error) {
	return nil, nil
}
func (fakeSchemaRepo) GetByHostID(ctx context.Context, hostID string) ([]*model.Schema, error) {
	return nil, nil
}
func (fakeSchemaRepo) Update(ctx context.Context, s *model.Schema) error { return nil }
func (fakeSchemaRepo) Delete(ctx context.Context, id string) error       { return nil }

type fakeSessionCache struct {
	mu      sync.Mutex
	entries map[string]*model.Session
	sets    int
	deletes int
	failSet bool
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{entries: make(map[string]*model.Session)}
}

func (c *fakeSessionCache) Set(ctx context.Context, s *model.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failSet {
		return errors.New("connection refused")
	}
	copied := *s
	copied.Answers = s.Answers.Clone()
	c.entries[s.ID] = &copied
	c.sets++
	return nil
}

func (c *fakeSessionCache) Get(ctx context.Context, id string) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	copied.Answers = s.Answers.Clone()
	return &copied, nil
}

func (c *fakeSessionCache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	c.deletes++
	return nil
}

type broadcastCall struct {
	sessionID string
	msgType   string
}

type fakeBroadcaster struct {
	mu          sync.Mutex
	calls       []broadcastCall
	participant []broadcastCall
}

func (b *fakeBroadcaster) BroadcastToWatchers(sessionID, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, broadcastCall{sessionID, msgType})
}

func (b *fakeBroadcaster) BroadcastToParticipant(sessionID, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.participant = append(b.participant, broadcastCall{sessionID, msgType})
}

func (b *fakeBroadcaster) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.calls))
	for i, c := range b.calls {
		out[i] = c.msgType
	}
	return out
}

func (b *fakeBroadcaster) participantTypes() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.participant))
	for i, c := range b.participant {
		out[i] = c.msgType
	}
	return out
}

func newTestService() (*SessionService, *fakeSessionRepo, *fakeSessionCache, *fakeBroadcaster) {
	repo := newFakeSessionRepo()
	cch := newFakeSessionCache()
	bcast := &fakeBroadcaster{}
	svc := NewSessionService(repo, NewSchemaService(fakeSchemaRepo{}), cch, bcast)
	return svc, repo, cch, bcast
}

func TestStartCreatesBlueprintSession(t *testing.T) {
	svc, repo, cch, _ := newTestService()
	ctx := context.Background()

	view, err := svc.Start(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, "blueprint", view.SchemaID)
	assert.Equal(t, 0, view.CurrentStepIndex)
	assert.True(t, view.IsFirstStep)
	assert.Equal(t, 0, view.Progress)
	require.NotNil(t, view.CurrentStep)
	assert.NotEmpty(t, view.CurrentStep.Questions)

	// Persisted to both stores.
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, 1, cch.sets)
}

func TestStartUnknownSchema(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Start(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}

func TestGetUnknownSession(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSetAnswerPersistsAndBroadcasts(t *testing.T) {
	svc, repo, cch, bcast := newTestService()
	ctx := context.Background()

	view, err := svc.Start(ctx, "")
	require.NoError(t, err)
	id := view.SessionID

	view, err = svc.SetAnswer(ctx, id, "app_name", model.StringValue("Acme"))
	require.NoError(t, err)
	assert.Equal(t, model.StringValue("Acme"), view.Answers.Get("app_name"))
	assert.Greater(t, view.Progress, 0)

	assert.Equal(t, []string{EventAnswerSaved}, bcast.types())
	assert.Equal(t, []string{EventProgressUpdate}, bcast.participantTypes())
	assert.Equal(t, 2, repo.saves, "every mutation rewrites the blob")
	assert.Equal(t, 2, cch.sets)

	_, err = svc.SetAnswer(ctx, id, "no_such_question", model.BoolValue(true))
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestSetAnswerSurvivesCacheEviction(t *testing.T) {
	svc, _, cch, _ := newTestService()
	ctx := context.Background()

	view, err := svc.Start(ctx, "")
	require.NoError(t, err)
	id := view.SessionID

	_, err = svc.SetAnswer(ctx, id, "app_name", model.StringValue("Acme"))
	require.NoError(t, err)

	// Simulate TTL expiry; the next read falls back to the repo and
	// repopulates the cache.
	require.NoError(t, cch.Delete(ctx, id))
	view, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StringValue("Acme"), view.Answers.Get("app_name"))

	cached, err := cch.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, cached)
}

func TestSetAnswerToleratesCacheOutage(t *testing.T) {
	svc, repo, cch, _ := newTestService()
	ctx := context.Background()

	view, err := svc.Start(ctx, "")
	require.NoError(t, err)
	id := view.SessionID

	// A dead cache must not fail mutations once the blob is in the repo.
	cch.mu.Lock()
	cch.failSet = true
	cch.mu.Unlock()

	view, err = svc.SetAnswer(ctx, id, "app_name", model.StringValue("Acme"))
	require.NoError(t, err)
	assert.Equal(t, model.StringValue("Acme"), view.Answers.Get("app_name"))
	assert.Equal(t, 2, repo.saves)

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StringValue("Acme"), stored.Answers.Get("app_name"))
}

func TestNavigationFlow(t *testing.T) {
	svc, _, _, bcast := newTestService()
	ctx := context.Background()

	view, err := svc.Start(ctx, "")
	require.NoError(t, err)
	id := view.SessionID

	// First blueprint step has required questions: Next is gated.
	view, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, view.CurrentStepIndex)
	assert.False(t, view.CanAdvance)

	for _, q := range []string{"app_name", "one_sentence", "problem_solving", "target_audience"} {
		_, err = svc.SetAnswer(ctx, id, q, model.StringValue("answered"))
		require.NoError(t, err)
	}

	view, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, view.CurrentStepIndex)
	assert.False(t, view.IsFirstStep)
	assert.Contains(t, bcast.types(), EventStepChanged)
	assert.Contains(t, bcast.participantTypes(), EventProgressUpdate)

	view, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, view.CurrentStepIndex)

	view, err = svc.GoTo(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.CurrentStepIndex)

	// Out of range is a silent no-op.
	view, err = svc.GoTo(ctx, id, 99)
	require.NoError(t, err)
	assert.Equal(t, 1, view.CurrentStepIndex)
}

func TestResetClearsState(t *testing.T) {
	svc, _, cch, bcast := newTestService()
	ctx := context.Background()

	view, err := svc.Start(ctx, "")
	require.NoError(t, err)
	id := view.SessionID

	_, err = svc.SetAnswer(ctx, id, "app_name", model.StringValue("Acme"))
	require.NoError(t, err)

	view, err = svc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, view.Answers)
	assert.Equal(t, 0, view.CurrentStepIndex)
	assert.Equal(t, 0, view.Progress)
	assert.Contains(t, bcast.types(), EventSessionReset)

	// The fresh empty state is re-cached after the delete.
	cached, err := cch.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Empty(t, cached.Answers)
}

func TestExportReflectsAnswers(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	view, err := svc.Start(ctx, "")
	require.NoError(t, err)
	id := view.SessionID

	_, err = svc.SetAnswer(ctx, id, "app_name", model.StringValue("Acme"))
	require.NoError(t, err)
	_, err = svc.SetAnswer(ctx, id, "payments_enabled", model.BoolValue(true))
	require.NoError(t, err)

	doc, err := svc.Export(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StringValue("Acme"), doc.Answers.Get("app_name"))
	assert.Contains(t, doc.DerivedFeatures.MVP, "Checkout flow")

	var found bool
	for _, item := range doc.RiskItems {
		if item.Feature == "payments_enabled" {
			found = true
			assert.Equal(t, model.RiskHigh, item.Level)
		}
	}
	assert.True(t, found, "payments_enabled should be flagged high risk")

	md, err := svc.ExportMarkdown(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, md, "# Requirements Specification")
	assert.Contains(t, md, "Acme")
}
