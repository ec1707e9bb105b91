package engine

import "scopeforge/internal/model"

// Visible evaluates a visibility condition against the answer set. A nil
// condition is unconditionally visible. The function is pure: it never
// mutates the answer set and depends only on its inputs.
//
// A condition may reference a question that is currently hidden; its stored
// answer still participates. Referencing a question with no stored answer
// reads as the absent value, which fails every operator except notEquals
// against a defined comparison.
func Visible(cond *model.Condition, answers model.AnswerSet) bool {
	if cond == nil {
		return true
	}

	value := answers.Get(cond.QuestionID)

	switch cond.Operator {
	case model.OpEquals:
		return value.Equal(cond.Value)
	case model.OpNotEquals:
		return !value.Equal(cond.Value)
	case model.OpIncludes:
		if value.Kind != model.KindList {
			return false
		}
		if cond.Value.Kind == model.KindList {
			for _, want := range cond.Value.List {
				if value.Contains(want) {
					return true
				}
			}
			return false
		}
		if cond.Value.Kind == model.KindString {
			return value.Contains(cond.Value.Str)
		}
		return false
	case model.OpHasValue:
		return value.HasValue()
	default:
		return true
	}
}
