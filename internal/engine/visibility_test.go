package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scopeforge/internal/model"
)

func TestVisible(t *testing.T) {
	tests := []struct {
		name    string
		cond    *model.Condition
		answers model.AnswerSet
		want    bool
	}{
		{
			name: "nil condition is always visible",
			cond: nil,
			want: true,
		},
		{
			name:    "equals matches bool",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpEquals, Value: model.BoolValue(true)},
			answers: model.AnswerSet{"q": model.BoolValue(true)},
			want:    true,
		},
		{
			name:    "equals rejects different kind",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpEquals, Value: model.BoolValue(true)},
			answers: model.AnswerSet{"q": model.StringValue("true")},
			want:    false,
		},
		{
			name: "equals fails on missing answer",
			cond: &model.Condition{QuestionID: "q", Operator: model.OpEquals, Value: model.StringValue("x")},
			want: false,
		},
		{
			name:    "notEquals on different value",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpNotEquals, Value: model.StringValue("x")},
			answers: model.AnswerSet{"q": model.StringValue("y")},
			want:    true,
		},
		{
			name: "notEquals passes on missing answer",
			cond: &model.Condition{QuestionID: "q", Operator: model.OpNotEquals, Value: model.StringValue("x")},
			want: true,
		},
		{
			name:    "includes scalar against list answer",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpIncludes, Value: model.StringValue("web")},
			answers: model.AnswerSet{"q": model.ListValue("web", "ios")},
			want:    true,
		},
		{
			name:    "includes list intersects list answer",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpIncludes, Value: model.ListValue("ios", "android")},
			answers: model.AnswerSet{"q": model.ListValue("web", "android")},
			want:    true,
		},
		{
			name:    "includes with no overlap",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpIncludes, Value: model.ListValue("ios")},
			answers: model.AnswerSet{"q": model.ListValue("web")},
			want:    false,
		},
		{
			name:    "includes against non-list answer",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpIncludes, Value: model.StringValue("web")},
			answers: model.AnswerSet{"q": model.StringValue("web")},
			want:    false,
		},
		{
			name:    "hasValue on non-empty string",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpHasValue},
			answers: model.AnswerSet{"q": model.StringValue("hello")},
			want:    true,
		},
		{
			name:    "hasValue rejects empty string",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpHasValue},
			answers: model.AnswerSet{"q": model.StringValue("")},
			want:    false,
		},
		{
			name:    "hasValue rejects false toggle",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpHasValue},
			answers: model.AnswerSet{"q": model.BoolValue(false)},
			want:    false,
		},
		{
			name:    "hasValue rejects empty list",
			cond:    &model.Condition{QuestionID: "q", Operator: model.OpHasValue},
			answers: model.AnswerSet{"q": model.ListValue()},
			want:    false,
		},
		{
			name: "hasValue on missing answer",
			cond: &model.Condition{QuestionID: "q", Operator: model.OpHasValue},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Visible(tt.cond, tt.answers))
		})
	}
}

func TestVisibleReadsHiddenAnswers(t *testing.T) {
	// A condition may target a question that is itself hidden; its stored
	// answer still decides visibility.
	cond := &model.Condition{QuestionID: "hidden", Operator: model.OpEquals, Value: model.BoolValue(true)}
	answers := model.AnswerSet{"hidden": model.BoolValue(true)}

	assert.True(t, Visible(cond, answers))
	assert.Equal(t, model.AnswerSet{"hidden": model.BoolValue(true)}, answers, "evaluation must not mutate answers")
}
