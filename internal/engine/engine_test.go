package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scopeforge/internal/model"
)

// testSchema builds a three-step wizard where the second step only appears
// after the toggle on the first step is switched on.
func testSchema() *model.Schema {
	return &model.Schema{
		ID:    "test",
		Title: "Test Wizard",
		Steps: []model.Step{
			{
				ID:    "basics",
				Title: "Basics",
				Questions: []model.Question{
					{ID: "name", Label: "Name", Type: model.QuestionText, Required: true},
					{ID: "payments_enabled", Label: "Payments?", Type: model.QuestionToggle},
				},
			},
			{
				ID:        "payments",
				Title:     "Payments",
				VisibleIf: &model.Condition{QuestionID: "payments_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
				Questions: []model.Question{
					{ID: "gateway", Label: "Gateway", Type: model.QuestionSelect, Required: true,
						Options: []model.Option{{Value: "stripe", Label: "Stripe"}, {Value: "paypal", Label: "PayPal"}}},
					{ID: "model", Label: "Model", Type: model.QuestionSelect, RiskLevel: model.RiskMedium,
						Options: []model.Option{{Value: "one_time", Label: "One-time"}}},
				},
			},
			{
				ID:    "review",
				Title: "Review",
				Questions: []model.Question{
					{ID: "notes", Label: "Notes", Type: model.QuestionTextarea},
				},
			},
		},
	}
}

func testRules() DeriveRules {
	return DeriveRules{
		HighRisk: []string{"payments_enabled"},
		Features: []FeatureRule{
			{Trigger: "payments_enabled", MVP: []string{"Checkout flow"}, V1: []string{"Refunds"}, Later: []string{"Subscriptions"}},
		},
	}
}

func newTestSession() *model.Session {
	return &model.Session{ID: "s1", SchemaID: "test", Answers: model.AnswerSet{}}
}

func TestProgressTracksVisibleRequired(t *testing.T) {
	eng := New(testSchema(), testRules())
	answers := model.AnswerSet{}

	assert.Equal(t, 0, eng.Progress(answers))

	// Only "name" is required while payments is hidden.
	answers.Set("name", model.StringValue("Acme"))
	assert.Equal(t, 100, eng.Progress(answers))

	// Revealing the payments step adds a second required question.
	answers.Set("payments_enabled", model.BoolValue(true))
	assert.Equal(t, 50, eng.Progress(answers))

	answers.Set("gateway", model.StringValue("stripe"))
	assert.Equal(t, 100, eng.Progress(answers))
}

func TestEmptyAnswersDoNotCount(t *testing.T) {
	eng := New(testSchema(), testRules())
	answers := model.AnswerSet{"name": model.StringValue("")}
	assert.Equal(t, 0, eng.Progress(answers))
}

func TestHidingPreservesAnswers(t *testing.T) {
	eng := New(testSchema(), testRules())
	sess := newTestSession()

	eng.SetAnswer(sess, "payments_enabled", model.BoolValue(true))
	eng.SetAnswer(sess, "gateway", model.StringValue("stripe"))
	eng.SetAnswer(sess, "payments_enabled", model.BoolValue(false))

	// Hidden but retained; revealing again restores it.
	assert.Equal(t, model.StringValue("stripe"), sess.Answers.Get("gateway"))
	eng.SetAnswer(sess, "payments_enabled", model.BoolValue(true))
	steps := eng.VisibleSteps(sess.Answers)
	require.Len(t, steps, 3)
	assert.Equal(t, model.StepComplete, eng.StepStatus(steps[1], sess.Answers))
}

func TestNavigationGating(t *testing.T) {
	eng := New(testSchema(), testRules())
	sess := newTestSession()
	eng.CurrentSteps(sess)

	// Required question unanswered: cannot advance.
	assert.False(t, eng.CanAdvance(sess))
	assert.False(t, eng.Next(sess))
	assert.Equal(t, 0, sess.CurrentStepIndex)

	eng.SetAnswer(sess, "name", model.StringValue("Acme"))
	assert.True(t, eng.CanAdvance(sess))
	assert.True(t, eng.Next(sess))
	assert.Equal(t, "review", sess.CurrentStepID, "hidden payments step is skipped")

	// Last visible step: Next is a no-op.
	assert.False(t, eng.Next(sess))

	assert.True(t, eng.Back(sess))
	assert.Equal(t, "basics", sess.CurrentStepID)
	assert.False(t, eng.Back(sess))
}

func TestGoToIgnoresOutOfRange(t *testing.T) {
	eng := New(testSchema(), testRules())
	sess := newTestSession()

	assert.False(t, eng.GoTo(sess, 5))
	assert.False(t, eng.GoTo(sess, -1))
	assert.Equal(t, 0, sess.CurrentStepIndex)

	assert.True(t, eng.GoTo(sess, 1))
	assert.Equal(t, "review", sess.CurrentStepID)
}

func TestPointerRebaseWhenStepHidden(t *testing.T) {
	eng := New(testSchema(), testRules())
	sess := newTestSession()

	eng.SetAnswer(sess, "name", model.StringValue("Acme"))
	eng.SetAnswer(sess, "payments_enabled", model.BoolValue(true))
	require.True(t, eng.Next(sess))
	require.Equal(t, "payments", sess.CurrentStepID)

	// Hiding the step the pointer rests on clamps to the same position in
	// the new visible list.
	eng.SetAnswer(sess, "payments_enabled", model.BoolValue(false))
	assert.Equal(t, 1, sess.CurrentStepIndex)
	assert.Equal(t, "review", sess.CurrentStepID)
}

func TestPointerFollowsStepIdentity(t *testing.T) {
	eng := New(testSchema(), testRules())
	sess := newTestSession()

	eng.SetAnswer(sess, "name", model.StringValue("Acme"))
	require.True(t, eng.GoTo(sess, 1))
	require.Equal(t, "review", sess.CurrentStepID)

	// Revealing an earlier step shifts review's index; the pointer stays on
	// review rather than its old position.
	eng.SetAnswer(sess, "payments_enabled", model.BoolValue(true))
	assert.Equal(t, "review", sess.CurrentStepID)
	assert.Equal(t, 2, sess.CurrentStepIndex)
}

func TestReset(t *testing.T) {
	eng := New(testSchema(), testRules())
	sess := newTestSession()

	eng.SetAnswer(sess, "name", model.StringValue("Acme"))
	eng.SetAnswer(sess, "payments_enabled", model.BoolValue(true))
	eng.Next(sess)

	eng.Reset(sess)
	assert.Empty(t, sess.Answers)
	assert.Equal(t, 0, sess.CurrentStepIndex)
	assert.Equal(t, "basics", sess.CurrentStepID)

	// Idempotent.
	eng.Reset(sess)
	assert.Equal(t, "basics", sess.CurrentStepID)
}

func TestRiskItemsRegistryPrecedence(t *testing.T) {
	eng := New(testSchema(), testRules())
	answers := model.AnswerSet{
		"payments_enabled": model.BoolValue(true),
		"model":            model.StringValue("one_time"),
	}

	items := eng.RiskItems(answers)
	require.Len(t, items, 2)
	assert.Equal(t, model.RiskItem{Feature: "payments_enabled", Level: model.RiskHigh}, items[0])
	assert.Equal(t, model.RiskItem{Feature: "model", Level: model.RiskMedium}, items[1])
}

func TestRiskItemsIgnoreFalseAndHidden(t *testing.T) {
	eng := New(testSchema(), testRules())

	// Toggle off: the registry entry must not fire.
	assert.Empty(t, eng.RiskItems(model.AnswerSet{"payments_enabled": model.BoolValue(false)}))

	// Risky answer on a hidden question does not surface.
	assert.Empty(t, eng.RiskItems(model.AnswerSet{"model": model.StringValue("one_time")}))
}

func TestDerivedFeatures(t *testing.T) {
	eng := New(testSchema(), testRules())

	buckets := eng.DerivedFeatures(model.AnswerSet{"payments_enabled": model.BoolValue(true)})
	assert.Equal(t, []string{"Checkout flow"}, buckets.MVP)
	assert.Equal(t, []string{"Refunds"}, buckets.V1)
	assert.Equal(t, []string{"Subscriptions"}, buckets.Later)

	// Only true toggles and non-empty lists trigger derivation.
	assert.True(t, eng.DerivedFeatures(model.AnswerSet{"payments_enabled": model.StringValue("yes")}).Empty())
	assert.True(t, eng.DerivedFeatures(model.AnswerSet{"payments_enabled": model.ListValue()}).Empty())
}
