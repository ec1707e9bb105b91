package model

// RiskItem flags a question whose answer adds implementation complexity
type RiskItem struct {
	Feature string    `json:"feature"`
	Level   RiskLevel `json:"level"`
}

// FeatureBuckets groups derived engineering tasks by priority tier
type FeatureBuckets struct {
	MVP   []string `json:"mvp"`
	V1    []string `json:"v1"`
	Later []string `json:"later"`
}

// Empty reports whether no features were derived in any tier
func (f FeatureBuckets) Empty() bool {
	return len(f.MVP) == 0 && len(f.V1) == 0 && len(f.Later) == 0
}

// ExportQuestion pairs a visible question with its current answer (possibly
// absent, which serializes as null)
type ExportQuestion struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Answer Value  `json:"answer"`
}

// ExportStep is one visible step in the structured export
type ExportStep struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Questions []ExportQuestion `json:"questions"`
}

// ExportMetadata records when the export was generated and how complete the
// questionnaire was at that moment
type ExportMetadata struct {
	CreatedAt            string `json:"createdAt"`
	CompletionPercentage int    `json:"completionPercentage"`
}

// Export is the structured serialization of a session's full state
type Export struct {
	Answers         AnswerSet      `json:"answers"`
	DerivedFeatures FeatureBuckets `json:"derivedFeatures"`
	RiskItems       []RiskItem     `json:"riskItems"`
	Steps           []ExportStep   `json:"steps"`
	Metadata        ExportMetadata `json:"metadata"`
}
