package engine

import (
	"math"

	"scopeforge/internal/model"
)

// FeatureRule maps an answered trigger question to derived feature tasks in
// each priority tier
type FeatureRule struct {
	Trigger string
	MVP     []string
	V1      []string
	Later   []string
}

// DeriveRules is the immutable derivation configuration: the high-risk
// question registry and the ordered feature-mapping table.
type DeriveRules struct {
	HighRisk []string
	Features []FeatureRule
}

// Engine computes every derived view of a questionnaire session: visible
// steps and questions, completion, navigation legality, risk items, and
// feature buckets. It holds only immutable configuration; all state lives in
// the Session, so every method is a pure function of its arguments and may
// be called on demand after any mutation.
type Engine struct {
	schema *model.Schema
	rules  DeriveRules
}

// New creates an engine for a schema with the given derivation rules
func New(schema *model.Schema, rules DeriveRules) *Engine {
	return &Engine{schema: schema, rules: rules}
}

// Schema returns the schema this engine evaluates
func (e *Engine) Schema() *model.Schema { return e.schema }

// VisibleSteps filters the schema's steps by their visibility conditions,
// preserving schema order
func (e *Engine) VisibleSteps(answers model.AnswerSet) []model.Step {
	steps := make([]model.Step, 0, len(e.schema.Steps))
	for _, step := range e.schema.Steps {
		if Visible(step.VisibleIf, answers) {
			steps = append(steps, step)
		}
	}
	return steps
}

// VisibleQuestions filters a step's questions by their visibility
// conditions, preserving schema order
func (e *Engine) VisibleQuestions(step model.Step, answers model.AnswerSet) []model.Question {
	questions := make([]model.Question, 0, len(step.Questions))
	for _, q := range step.Questions {
		if Visible(q.VisibleIf, answers) {
			questions = append(questions, q)
		}
	}
	return questions
}

// Progress returns the rounded percentage of required, currently-visible
// questions that have an answer. Zero when nothing is required.
func (e *Engine) Progress(answers model.AnswerSet) int {
	var total, completed int
	for _, step := range e.VisibleSteps(answers) {
		for _, q := range e.VisibleQuestions(step, answers) {
			if !q.Required {
				continue
			}
			total++
			if answers.Get(q.ID).Answered() {
				completed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// StepStatus reports completion of one step's visible required questions
func (e *Engine) StepStatus(step model.Step, answers model.AnswerSet) model.StepStatus {
	var required, answered int
	for _, q := range e.VisibleQuestions(step, answers) {
		if !q.Required {
			continue
		}
		required++
		if answers.Get(q.ID).Answered() {
			answered++
		}
	}
	switch {
	case required == 0 || answered == required:
		return model.StepComplete
	case answered == 0:
		return model.StepPending
	default:
		return model.StepPartial
	}
}

// CurrentSteps re-anchors the session's step pointer against the freshly
// filtered visible-step list and returns that list. The pointer is tracked
// by step identity: if the current step is still visible its index is
// recomputed, otherwise the stored index is clamped to bounds. Both fields
// on the session are updated.
func (e *Engine) CurrentSteps(sess *model.Session) []model.Step {
	steps := e.VisibleSteps(sess.Answers)
	idx := -1
	if sess.CurrentStepID != "" {
		for i, step := range steps {
			if step.ID == sess.CurrentStepID {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		idx = sess.CurrentStepIndex
		if idx > len(steps)-1 {
			idx = len(steps) - 1
		}
		if idx < 0 {
			idx = 0
		}
	}
	sess.CurrentStepIndex = idx
	if idx < len(steps) {
		sess.CurrentStepID = steps[idx].ID
	}
	return steps
}

// CurrentStep returns the step the session pointer rests on, re-anchored
func (e *Engine) CurrentStep(sess *model.Session) (model.Step, bool) {
	steps := e.CurrentSteps(sess)
	if len(steps) == 0 {
		return model.Step{}, false
	}
	return steps[sess.CurrentStepIndex], true
}

// CanAdvance reports whether every required question visible on the current
// step is answered
func (e *Engine) CanAdvance(sess *model.Session) bool {
	step, ok := e.CurrentStep(sess)
	if !ok {
		return false
	}
	for _, q := range e.VisibleQuestions(step, sess.Answers) {
		if q.Required && !sess.Answers.Get(q.ID).Answered() {
			return false
		}
	}
	return true
}

// SetAnswer upserts an answer and re-anchors the pointer, since the new
// answer may change which steps are visible
func (e *Engine) SetAnswer(sess *model.Session, questionID string, value model.Value) {
	if sess.Answers == nil {
		sess.Answers = model.AnswerSet{}
	}
	sess.Answers.Set(questionID, value)
	e.CurrentSteps(sess)
}

// Next advances the pointer by one visible step. It is a no-op when the
// current step's required questions are incomplete or the session is already
// on the last visible step. Returns whether the pointer moved.
func (e *Engine) Next(sess *model.Session) bool {
	steps := e.CurrentSteps(sess)
	if !e.CanAdvance(sess) || sess.CurrentStepIndex >= len(steps)-1 {
		return false
	}
	sess.CurrentStepIndex++
	sess.CurrentStepID = steps[sess.CurrentStepIndex].ID
	return true
}

// Back moves the pointer one visible step backward. Never gated; a no-op
// only on the first step.
func (e *Engine) Back(sess *model.Session) bool {
	steps := e.CurrentSteps(sess)
	if sess.CurrentStepIndex <= 0 || len(steps) == 0 {
		return false
	}
	sess.CurrentStepIndex--
	sess.CurrentStepID = steps[sess.CurrentStepIndex].ID
	return true
}

// GoTo jumps directly to a position in the visible-step list. Out-of-range
// requests are silently ignored.
func (e *Engine) GoTo(sess *model.Session, index int) bool {
	steps := e.CurrentSteps(sess)
	if index < 0 || index >= len(steps) {
		return false
	}
	sess.CurrentStepIndex = index
	sess.CurrentStepID = steps[index].ID
	return true
}

// Reset clears all answers and returns the pointer to the first step
func (e *Engine) Reset(sess *model.Session) {
	sess.Answers = model.AnswerSet{}
	sess.CurrentStepIndex = 0
	sess.CurrentStepID = ""
	e.CurrentSteps(sess)
}

// RiskItems derives the risk profile from two sources: the high-risk
// registry (always classified high), then currently-visible questions with a
// declared risk level and a truthy answer. Duplicates by question id are
// skipped, so registry entries take precedence.
func (e *Engine) RiskItems(answers model.AnswerSet) []model.RiskItem {
	items := []model.RiskItem{}
	seen := map[string]bool{}

	for _, feature := range e.rules.HighRisk {
		value := answers.Get(feature)
		if value.Kind == model.KindBool && value.Bool || value.Kind == model.KindList && len(value.List) > 0 {
			items = append(items, model.RiskItem{Feature: feature, Level: model.RiskHigh})
			seen[feature] = true
		}
	}

	for _, step := range e.VisibleSteps(answers) {
		for _, q := range e.VisibleQuestions(step, answers) {
			if q.RiskLevel == "" || seen[q.ID] || !answers.Get(q.ID).Truthy() {
				continue
			}
			items = append(items, model.RiskItem{Feature: q.ID, Level: q.RiskLevel})
			seen[q.ID] = true
		}
	}

	return items
}

// DerivedFeatures walks the feature-mapping table in order and appends every
// triggered rule's tiers to the output buckets. Buckets are not deduplicated
// here; display layers own that.
func (e *Engine) DerivedFeatures(answers model.AnswerSet) model.FeatureBuckets {
	buckets := model.FeatureBuckets{MVP: []string{}, V1: []string{}, Later: []string{}}
	for _, rule := range e.rules.Features {
		value := answers.Get(rule.Trigger)
		if value.Kind == model.KindBool && value.Bool || value.Kind == model.KindList && len(value.List) > 0 {
			buckets.MVP = append(buckets.MVP, rule.MVP...)
			buckets.V1 = append(buckets.V1, rule.V1...)
			buckets.Later = append(buckets.Later, rule.Later...)
		}
	}
	return buckets
}
