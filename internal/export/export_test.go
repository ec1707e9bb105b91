package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scopeforge/internal/engine"
	"scopeforge/internal/model"
)

func paymentsSchema() *model.Schema {
	return &model.Schema{
		ID:    "test",
		Title: "Test Wizard",
		Steps: []model.Step{
			{
				ID:          "basics",
				Title:       "Basics",
				Description: "Define the core purpose",
				Icon:        "🎯",
				Questions: []model.Question{
					{ID: "name", Label: "Project name", Type: model.QuestionText, Required: true},
					{ID: "payments_enabled", Label: "Payments?", Type: model.QuestionToggle},
				},
			},
			{
				ID:          "payments",
				Title:       "Payments",
				Description: "Money movement details",
				Icon:        "💳",
				VisibleIf: &model.Condition{QuestionID: "payments_enabled", Operator: model.OpEquals, Value: model.BoolValue(true)},
				Questions: []model.Question{
					{ID: "gateway", Label: "Gateway", Type: model.QuestionSelect, Required: true,
						Options: []model.Option{{Value: "stripe", Label: "Stripe"}}},
					{ID: "methods", Label: "Methods", Type: model.QuestionMultiselect,
						Options: []model.Option{
							{Value: "card", Label: "Card payments"},
							{Value: "wallet", Label: "Digital wallets"},
						}},
				},
			},
		},
	}
}

func paymentsRules() engine.DeriveRules {
	return engine.DeriveRules{
		HighRisk: []string{"payments_enabled"},
		Features: []engine.FeatureRule{
			{Trigger: "payments_enabled", MVP: []string{"Checkout flow"}, V1: []string{"Refunds"}, Later: []string{"Subscriptions"}},
		},
	}
}

var exportNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func filledSession() *model.Session {
	return &model.Session{
		ID:       "s1",
		SchemaID: "test",
		Answers: model.AnswerSet{
			"name":             model.StringValue("Acme"),
			"payments_enabled": model.BoolValue(true),
			"gateway":          model.StringValue("stripe"),
			"methods":          model.ListValue("card", "wallet"),
		},
	}
}

func TestBuildStructure(t *testing.T) {
	eng := engine.New(paymentsSchema(), paymentsRules())
	doc := Build(eng, filledSession(), exportNow)

	assert.Equal(t, "2026-03-14T12:00:00Z", doc.Metadata.CreatedAt)
	assert.Equal(t, 100, doc.Metadata.CompletionPercentage)

	require.Len(t, doc.Steps, 2)
	assert.Equal(t, "basics", doc.Steps[0].ID)
	require.Len(t, doc.Steps[1].Questions, 2)
	assert.Equal(t, model.ListValue("card", "wallet"), doc.Steps[1].Questions[1].Answer)

	assert.Equal(t, []string{"Checkout flow"}, doc.DerivedFeatures.MVP)
	require.Len(t, doc.RiskItems, 1)
	assert.Equal(t, "payments_enabled", doc.RiskItems[0].Feature)
}

func TestBuildOmitsHiddenSteps(t *testing.T) {
	eng := engine.New(paymentsSchema(), paymentsRules())
	sess := &model.Session{ID: "s1", SchemaID: "test", Answers: model.AnswerSet{
		"name": model.StringValue("Acme"),
	}}

	doc := Build(eng, sess, exportNow)
	require.Len(t, doc.Steps, 1)
	assert.Equal(t, "basics", doc.Steps[0].ID)

	// Visible but unanswered questions serialize with a null answer.
	data, err := json.Marshal(doc.Steps[0].Questions[1])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"answer":null`)
}

func TestBuildIsDeterministic(t *testing.T) {
	eng := engine.New(paymentsSchema(), paymentsRules())

	a, err := json.Marshal(Build(eng, filledSession(), exportNow))
	require.NoError(t, err)
	b, err := json.Marshal(Build(eng, filledSession(), exportNow))
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestMarkdownContent(t *testing.T) {
	eng := engine.New(paymentsSchema(), paymentsRules())
	doc := Markdown(eng, filledSession(), exportNow)

	assert.Contains(t, doc, "# Requirements Specification")
	assert.Contains(t, doc, "_Generated on 2026-03-14_")
	assert.Contains(t, doc, "**Completion:** 100%")
	assert.Contains(t, doc, "## 🎯 Basics")
	assert.Contains(t, doc, "Define the core purpose")
	assert.Contains(t, doc, "## 💳 Payments")
	assert.Contains(t, doc, "Money movement details")
	assert.Contains(t, doc, "### Project name")
	assert.Contains(t, doc, "Acme")

	// Toggle renders as Yes/No, selects by option label, lists as bullets.
	assert.Contains(t, doc, "Yes")
	assert.Contains(t, doc, "Stripe")
	assert.Contains(t, doc, "- Card payments")
	assert.Contains(t, doc, "- Digital wallets")

	assert.Contains(t, doc, "## 📋 Derived Features")
	assert.Contains(t, doc, "### MVP")
	assert.Contains(t, doc, "- Checkout flow")
	assert.Contains(t, doc, "## ⚠️ High Complexity Items")
	assert.Contains(t, doc, "- payments_enabled (high)")
}

func TestMarkdownEmptySessionStillRendersSteps(t *testing.T) {
	eng := engine.New(paymentsSchema(), paymentsRules())
	sess := &model.Session{ID: "s1", SchemaID: "test", Answers: model.AnswerSet{}}

	doc := Markdown(eng, sess, exportNow)

	// Visible step headings and descriptions always render, even with no
	// answers; answered-question subsections and derived sections do not.
	assert.Contains(t, doc, "## 🎯 Basics")
	assert.Contains(t, doc, "Define the core purpose")
	assert.NotContains(t, doc, "## 💳 Payments", "hidden step should not render")
	assert.NotContains(t, doc, "### Project name")
	assert.NotContains(t, doc, "Derived Features")
	assert.NotContains(t, doc, "High Complexity")
	assert.Contains(t, doc, "**Completion:** 0%")
}
