// Package export renders a session's state into shareable artifacts: a
// structured document for machine consumers and a markdown requirements
// summary for humans.
package export

import (
	"time"

	"scopeforge/internal/engine"
	"scopeforge/internal/model"
)

// Build assembles the structured export of a session at the given instant.
// Hidden steps and questions are omitted entirely; visible unanswered
// questions appear with a null answer. The output is deterministic for a
// fixed session state and timestamp.
func Build(eng *engine.Engine, sess *model.Session, now time.Time) *model.Export {
	answers := sess.Answers
	if answers == nil {
		answers = model.AnswerSet{}
	}

	steps := []model.ExportStep{}
	for _, step := range eng.VisibleSteps(answers) {
		out := model.ExportStep{ID: step.ID, Title: step.Title, Questions: []model.ExportQuestion{}}
		for _, q := range eng.VisibleQuestions(step, answers) {
			out.Questions = append(out.Questions, model.ExportQuestion{
				ID:     q.ID,
				Label:  q.Label,
				Answer: answers.Get(q.ID),
			})
		}
		steps = append(steps, out)
	}

	return &model.Export{
		Answers:         answers,
		DerivedFeatures: eng.DerivedFeatures(answers),
		RiskItems:       eng.RiskItems(answers),
		Steps:           steps,
		Metadata: model.ExportMetadata{
			CreatedAt:            now.UTC().Format(time.RFC3339),
			CompletionPercentage: eng.Progress(answers),
		},
	}
}
