package model

import "time"

// QuestionType defines the input kind of a question
type QuestionType string

const (
	QuestionText        QuestionType = "text"        // Single-line free text
	QuestionTextarea    QuestionType = "textarea"    // Multi-line free text
	QuestionSelect      QuestionType = "select"      // Single choice from options
	QuestionMultiselect QuestionType = "multiselect" // Multiple choices from options
	QuestionToggle      QuestionType = "toggle"      // Boolean yes/no
	QuestionNumber      QuestionType = "number"      // Numeric input
)

// Operator defines how a visibility condition compares the target answer
type Operator string

const (
	OpEquals    Operator = "equals"
	OpNotEquals Operator = "notEquals"
	OpIncludes  Operator = "includes"
	OpHasValue  Operator = "hasValue"
)

// RiskLevel classifies the implementation complexity a question signals
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Condition gates visibility of a step or question on another question's
// stored answer. Value is unused for the hasValue operator.
type Condition struct {
	QuestionID string   `json:"questionId" bson:"questionId"`
	Operator   Operator `json:"operator" bson:"operator"`
	Value      Value    `json:"value,omitempty" bson:"value,omitempty"`
}

// Option is one selectable choice for select/multiselect questions
type Option struct {
	Value string `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
}

// Question is a single prompt within a step
type Question struct {
	ID          string       `json:"id" bson:"id"`
	Label       string       `json:"label" bson:"label"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Type        QuestionType `json:"type" bson:"type"`
	Required    bool         `json:"required,omitempty" bson:"required,omitempty"`
	Options     []Option     `json:"options,omitempty" bson:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty" bson:"placeholder,omitempty"`
	VisibleIf   *Condition   `json:"visibleIf,omitempty" bson:"visibleIf,omitempty"`
	Tooltip     string       `json:"tooltip,omitempty" bson:"tooltip,omitempty"`
	RiskLevel   RiskLevel    `json:"riskLevel,omitempty" bson:"riskLevel,omitempty"`
	FeatureTags []string     `json:"featureMapping,omitempty" bson:"featureMapping,omitempty"`
}

// OptionLabel resolves an option value to its display label, falling back to
// the raw value when the option is not declared
func (q *Question) OptionLabel(value string) string {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// Step is an ordered group of questions with display metadata
type Step struct {
	ID          string     `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string     `json:"icon,omitempty" bson:"icon,omitempty"`
	Questions   []Question `json:"questions" bson:"questions"`
	VisibleIf   *Condition `json:"visibleIf,omitempty" bson:"visibleIf,omitempty"`
}

// Schema is the static, ordered questionnaire definition a session runs
// against. The engine never mutates it.
type Schema struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	HostID    string    `json:"hostId,omitempty" bson:"hostId,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Steps     []Step    `json:"steps" bson:"steps"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Question looks a question up by id across all steps
func (s *Schema) Question(id string) *Question {
	for i := range s.Steps {
		for j := range s.Steps[i].Questions {
			if s.Steps[i].Questions[j].ID == id {
				return &s.Steps[i].Questions[j]
			}
		}
	}
	return nil
}
