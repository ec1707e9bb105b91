package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"scopeforge/internal/engine"
	"scopeforge/internal/model"
)

// Markdown renders the human-readable requirements document. Every visible
// step gets a section with its heading and description; only answered
// questions get subsections beneath it, so a question answered then hidden by
// a later answer drops out of the document even though its value is still
// stored.
func Markdown(eng *engine.Engine, sess *model.Session, now time.Time) string {
	answers := sess.Answers
	if answers == nil {
		answers = model.AnswerSet{}
	}

	var b strings.Builder
	b.WriteString("# Requirements Specification\n\n")
	b.WriteString("_Generated on " + now.UTC().Format("2006-01-02") + "_\n\n")
	b.WriteString(fmt.Sprintf("**Completion:** %d%%\n\n", eng.Progress(answers)))
	b.WriteString("---\n")

	for _, step := range eng.VisibleSteps(answers) {
		b.WriteString("\n## " + stepHeading(step) + "\n\n")
		if step.Description != "" {
			b.WriteString(step.Description + "\n\n")
		}
		for _, q := range eng.VisibleQuestions(step, answers) {
			value := answers.Get(q.ID)
			if value.IsAbsent() || value.Kind == model.KindString && value.Str == "" {
				continue
			}
			b.WriteString("### " + q.Label + "\n\n")
			b.WriteString(renderAnswer(&q, value))
			b.WriteString("\n")
		}
	}

	features := eng.DerivedFeatures(answers)
	if !features.Empty() {
		b.WriteString("\n## 📋 Derived Features\n")
		writeBucket(&b, "MVP", features.MVP)
		writeBucket(&b, "V1", features.V1)
		writeBucket(&b, "Later", features.Later)
	}

	risks := eng.RiskItems(answers)
	if len(risks) > 0 {
		b.WriteString("\n## ⚠️ High Complexity Items\n\n")
		for _, item := range risks {
			b.WriteString(fmt.Sprintf("- %s (%s)\n", item.Feature, item.Level))
		}
	}

	return b.String()
}

func stepHeading(step model.Step) string {
	if step.Icon == "" {
		return step.Title
	}
	return step.Icon + " " + step.Title
}

func renderAnswer(q *model.Question, value model.Value) string {
	switch value.Kind {
	case model.KindBool:
		if value.Bool {
			return "Yes\n"
		}
		return "No\n"
	case model.KindList:
		var b strings.Builder
		for _, item := range value.List {
			b.WriteString("- " + q.OptionLabel(item) + "\n")
		}
		return b.String()
	case model.KindNumber:
		return strconv.FormatFloat(value.Num, 'f', -1, 64) + "\n"
	default:
		if q.Type == model.QuestionSelect {
			return q.OptionLabel(value.Str) + "\n"
		}
		return value.Str + "\n"
	}
}

func writeBucket(b *strings.Builder, tier string, features []string) {
	if len(features) == 0 {
		return
	}
	b.WriteString("\n### " + tier + "\n\n")
	for _, f := range features {
		b.WriteString("- " + f + "\n")
	}
}
