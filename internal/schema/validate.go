package schema

import (
	"fmt"

	"scopeforge/internal/model"
)

var validTypes = map[model.QuestionType]bool{
	model.QuestionText:        true,
	model.QuestionTextarea:    true,
	model.QuestionSelect:      true,
	model.QuestionMultiselect: true,
	model.QuestionToggle:      true,
	model.QuestionNumber:      true,
}

var validOperators = map[model.Operator]bool{
	model.OpEquals:    true,
	model.OpNotEquals: true,
	model.OpIncludes:  true,
	model.OpHasValue:  true,
}

// Validate checks the static integrity of a schema: unique non-empty ids,
// known question types and operators, options where the type demands them,
// and every visibility condition targeting a question that exists.
func Validate(s *model.Schema) error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("schema has no steps")
	}

	stepIDs := map[string]bool{}
	questionIDs := map[string]bool{}

	for _, step := range s.Steps {
		if step.ID == "" {
			return fmt.Errorf("step with empty id")
		}
		if stepIDs[step.ID] {
			return fmt.Errorf("duplicate step id %q", step.ID)
		}
		stepIDs[step.ID] = true

		for _, q := range step.Questions {
			if q.ID == "" {
				return fmt.Errorf("step %q: question with empty id", step.ID)
			}
			if questionIDs[q.ID] {
				return fmt.Errorf("duplicate question id %q", q.ID)
			}
			questionIDs[q.ID] = true

			if q.Label == "" {
				return fmt.Errorf("question %q: empty label", q.ID)
			}
			if !validTypes[q.Type] {
				return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
			}
			needsOptions := q.Type == model.QuestionSelect || q.Type == model.QuestionMultiselect
			if needsOptions && len(q.Options) == 0 {
				return fmt.Errorf("question %q: type %s requires options", q.ID, q.Type)
			}
		}
	}

	// Condition targets are resolved in a second pass so forward references
	// between steps are legal.
	for _, step := range s.Steps {
		if err := validateCondition(step.VisibleIf, "step "+step.ID, questionIDs); err != nil {
			return err
		}
		for _, q := range step.Questions {
			if err := validateCondition(q.VisibleIf, "question "+q.ID, questionIDs); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateCondition(cond *model.Condition, owner string, questionIDs map[string]bool) error {
	if cond == nil {
		return nil
	}
	if !validOperators[cond.Operator] {
		return fmt.Errorf("%s: unknown operator %q", owner, cond.Operator)
	}
	if !questionIDs[cond.QuestionID] {
		return fmt.Errorf("%s: visibility condition references unknown question %q", owner, cond.QuestionID)
	}
	return nil
}
