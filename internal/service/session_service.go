package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"scopeforge/internal/cache"
	"scopeforge/internal/engine"
	"scopeforge/internal/export"
	"scopeforge/internal/model"
	"scopeforge/internal/repository"
	"scopeforge/internal/schema"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownQuestion = errors.New("question not found in schema")
)

// SessionService owns the questionnaire session lifecycle: creation,
// answering, navigation, reset, and export. Every mutation is serialized per
// session, recomputed through the engine, persisted as one blob, and
// broadcast to live watchers.
type SessionService struct {
	sessions     repository.SessionRepo
	schemaSvc    *SchemaService
	sessionCache cache.SessionCache
	broadcaster  Broadcaster

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSessionService creates a new session service
func NewSessionService(sessions repository.SessionRepo, schemaSvc *SchemaService, sessionCache cache.SessionCache, broadcaster Broadcaster) *SessionService {
	return &SessionService{
		sessions:     sessions,
		schemaSvc:    schemaSvc,
		sessionCache: sessionCache,
		broadcaster:  broadcaster,
		locks:        make(map[string]*sync.Mutex),
	}
}

// lockSession returns the mutex serializing mutations of one session. Locks
// are never reclaimed; sessions are few and short-lived.
func (s *SessionService) lockSession(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[id] == nil {
		s.locks[id] = &sync.Mutex{}
	}
	return s.locks[id]
}

// Start creates a new session against the given schema (the blueprint when
// empty) and returns its initial view.
func (s *SessionService) Start(ctx context.Context, schemaID string) (*model.SessionView, error) {
	if schemaID == "" {
		schemaID = schema.BlueprintID
	}
	sch, err := s.schemaSvc.Get(ctx, schemaID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &model.Session{
		ID:          uuid.New().String(),
		SchemaID:    schemaID,
		Answers:     model.AnswerSet{},
		CreatedAt:   now,
		LastUpdated: now,
	}

	eng := engine.New(sch, schema.DeriveRules())
	eng.CurrentSteps(sess)

	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	return buildView(eng, sess, sch), nil
}

// Get returns the computed view of an existing session
func (s *SessionService) Get(ctx context.Context, sessionID string) (*model.SessionView, error) {
	sess, sch, eng, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildView(eng, sess, sch), nil
}

// SetAnswer records an answer, recomputes visibility and the step pointer,
// persists, and notifies watchers.
func (s *SessionService) SetAnswer(ctx context.Context, sessionID, questionID string, value model.Value) (*model.SessionView, error) {
	lock := s.lockSession(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, sch, eng, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sch.Question(questionID) == nil {
		return nil, ErrUnknownQuestion
	}

	eng.SetAnswer(sess, questionID, value)
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}

	view := buildView(eng, sess, sch)
	s.broadcaster.BroadcastToWatchers(sessionID, EventAnswerSaved, map[string]interface{}{
		"sessionId":  sessionID,
		"questionId": questionID,
		"progress":   view.Progress,
	})
	s.notifyParticipant(sessionID, view)
	return view, nil
}

// Next advances to the following visible step when the current one is
// complete. An ineligible advance is a no-op returning the unchanged view.
func (s *SessionService) Next(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.navigate(ctx, sessionID, func(eng *engine.Engine, sess *model.Session) bool {
		return eng.Next(sess)
	})
}

// Back moves to the previous visible step
func (s *SessionService) Back(ctx context.Context, sessionID string) (*model.SessionView, error) {
	return s.navigate(ctx, sessionID, func(eng *engine.Engine, sess *model.Session) bool {
		return eng.Back(sess)
	})
}

// GoTo jumps to a position in the visible-step list; out-of-range targets
// are ignored.
func (s *SessionService) GoTo(ctx context.Context, sessionID string, index int) (*model.SessionView, error) {
	return s.navigate(ctx, sessionID, func(eng *engine.Engine, sess *model.Session) bool {
		return eng.GoTo(sess, index)
	})
}

func (s *SessionService) navigate(ctx context.Context, sessionID string, move func(*engine.Engine, *model.Session) bool) (*model.SessionView, error) {
	lock := s.lockSession(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, sch, eng, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	moved := move(eng, sess)
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}

	view := buildView(eng, sess, sch)
	if moved {
		s.broadcaster.BroadcastToWatchers(sessionID, EventStepChanged, map[string]interface{}{
			"sessionId":        sessionID,
			"currentStepIndex": view.CurrentStepIndex,
			"progress":         view.Progress,
		})
		s.notifyParticipant(sessionID, view)
	}
	return view, nil
}

// Reset wipes all answers and returns the session to its first step
func (s *SessionService) Reset(ctx context.Context, sessionID string) (*model.SessionView, error) {
	lock := s.lockSession(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, sch, eng, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Cache entry first, so a crash mid-reset cannot serve stale answers.
	s.sessionCache.Delete(ctx, sessionID)
	eng.Reset(sess)
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}

	view := buildView(eng, sess, sch)
	s.broadcaster.BroadcastToWatchers(sessionID, EventSessionReset, map[string]interface{}{
		"sessionId": sessionID,
	})
	s.notifyParticipant(sessionID, view)
	return view, nil
}

// Export returns the structured export of the session's current state
func (s *SessionService) Export(ctx context.Context, sessionID string) (*model.Export, error) {
	sess, _, eng, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return export.Build(eng, sess, time.Now()), nil
}

// ExportMarkdown renders the session as a markdown requirements document
func (s *SessionService) ExportMarkdown(ctx context.Context, sessionID string) (string, error) {
	sess, _, eng, err := s.load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return export.Markdown(eng, sess, time.Now()), nil
}

func (s *SessionService) load(ctx context.Context, sessionID string) (*model.Session, *model.Schema, *engine.Engine, error) {
	sess, err := s.sessionCache.Get(ctx, sessionID)
	if err != nil || sess == nil {
		sess, err = s.sessions.GetByID(ctx, sessionID)
		if err != nil {
			return nil, nil, nil, err
		}
		if sess == nil {
			return nil, nil, nil, ErrSessionNotFound
		}
		s.sessionCache.Set(ctx, sess)
	}

	sch, err := s.schemaSvc.Get(ctx, sess.SchemaID)
	if err != nil {
		return nil, nil, nil, err
	}
	return sess, sch, engine.New(sch, schema.DeriveRules()), nil
}

func (s *SessionService) persist(ctx context.Context, sess *model.Session) error {
	sess.LastUpdated = time.Now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return err
	}
	// The cache is best-effort; the blob is already durable in Mongo.
	if err := s.sessionCache.Set(ctx, sess); err != nil {
		log.Printf("session %s: cache write failed: %v", sess.ID, err)
	}
	return nil
}

// notifyParticipant pushes a fresh progress snapshot to the participant's own
// websocket connection after every state change.
func (s *SessionService) notifyParticipant(sessionID string, view *model.SessionView) {
	s.broadcaster.BroadcastToParticipant(sessionID, EventProgressUpdate, map[string]interface{}{
		"sessionId":        sessionID,
		"currentStepIndex": view.CurrentStepIndex,
		"progress":         view.Progress,
		"canAdvance":       view.CanAdvance,
	})
}

// buildView computes the full client-facing state from the session
func buildView(eng *engine.Engine, sess *model.Session, sch *model.Schema) *model.SessionView {
	steps := eng.CurrentSteps(sess)

	stepViews := make([]model.StepView, 0, len(steps))
	for i, step := range steps {
		view := model.StepView{
			ID:          step.ID,
			Title:       step.Title,
			Description: step.Description,
			Icon:        step.Icon,
			Status:      eng.StepStatus(step, sess.Answers),
		}
		if i == sess.CurrentStepIndex {
			view.Questions = eng.VisibleQuestions(step, sess.Answers)
		}
		stepViews = append(stepViews, view)
	}

	out := &model.SessionView{
		SessionID:        sess.ID,
		SchemaID:         sess.SchemaID,
		SchemaTitle:      sch.Title,
		Steps:            stepViews,
		CurrentStepIndex: sess.CurrentStepIndex,
		IsFirstStep:      sess.CurrentStepIndex == 0,
		IsLastStep:       sess.CurrentStepIndex == len(steps)-1,
		CanAdvance:       eng.CanAdvance(sess),
		Progress:         eng.Progress(sess.Answers),
		Answers:          sess.Answers,
		RiskItems:        eng.RiskItems(sess.Answers),
		DerivedFeatures:  eng.DerivedFeatures(sess.Answers),
		LastUpdated:      sess.LastUpdated,
	}
	if len(stepViews) > 0 {
		current := stepViews[sess.CurrentStepIndex]
		out.CurrentStep = &current
	}
	return out
}
