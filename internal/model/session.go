package model

import "time"

// StepStatus summarizes required-question completion within one step
type StepStatus string

const (
	StepPending  StepStatus = "pending"
	StepPartial  StepStatus = "partial"
	StepComplete StepStatus = "complete"
)

// Session is the canonical persisted state of one questionnaire walk-through.
// CurrentStepID anchors the pointer to a step identity; CurrentStepIndex is
// the derived position in the visible-step list and is kept in the stored
// blob for clients that only understand positions.
type Session struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	SchemaID         string    `json:"schemaId" bson:"schemaId"`
	Answers          AnswerSet `json:"answers" bson:"answers"`
	CurrentStepIndex int       `json:"currentStepIndex" bson:"currentStepIndex"`
	CurrentStepID    string    `json:"currentStepId,omitempty" bson:"currentStepId,omitempty"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
	LastUpdated      time.Time `json:"lastUpdated" bson:"lastUpdated"`
}

// StepView is a visible step with its computed status. Questions is only
// populated for the current step.
type StepView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Status      StepStatus `json:"status"`
	Questions   []Question `json:"questions,omitempty"`
}

// SessionView is the fully computed state returned to clients after every
// read or mutation: everything the presentation layer renders.
type SessionView struct {
	SessionID        string         `json:"sessionId"`
	SchemaID         string         `json:"schemaId"`
	SchemaTitle      string         `json:"schemaTitle"`
	Steps            []StepView     `json:"steps"`
	CurrentStepIndex int            `json:"currentStepIndex"`
	CurrentStep      *StepView      `json:"currentStep,omitempty"`
	IsFirstStep      bool           `json:"isFirstStep"`
	IsLastStep       bool           `json:"isLastStep"`
	CanAdvance       bool           `json:"canAdvance"`
	Progress         int            `json:"progress"`
	Answers          AnswerSet      `json:"answers"`
	RiskItems        []RiskItem     `json:"riskItems"`
	DerivedFeatures  FeatureBuckets `json:"derivedFeatures"`
	LastUpdated      time.Time      `json:"lastUpdated"`
}
