package responses

// QuestionAnswer is one answered question. FollowUp carries the companion
// explanation entry when one exists; it is never scored on its own.
type QuestionAnswer struct {
	Question          string          `json:"question"`
	Answer            interface{}     `json:"answer"`
	ShortFormQuestion string          `json:"shortFormQuestion,omitempty"`
	FollowUp          *QuestionAnswer `json:"followUp,omitempty"`
}

// ControlResult accumulates the scored answers for one control key.
type ControlResult struct {
	Score             int              `json:"score"`
	MaxScore          int              `json:"maxScore"`
	QuestionsAnswered []QuestionAnswer `json:"questionsAnswered"`
}

// ControlGroupResult groups controls under a two-character family prefix.
type ControlGroupResult struct {
	Score          int                       `json:"score"`
	MaxScore       int                       `json:"maxScore"`
	ControlResults map[string]*ControlResult `json:"controlResults"`
}

// ComplianceReport is the scored breakdown of one answer dictionary.
// Onboarding entries are collected but never scored.
type ComplianceReport struct {
	OnboardingResults   []QuestionAnswer               `json:"onboardingResults"`
	ControlGroupResults map[string]*ControlGroupResult `json:"controlGroupResults"`
	Score               int                            `json:"score"`
	MaxScore            int                            `json:"maxScore"`
}

// ComplianceScore returns the overall percentage, rounded to the nearest
// integer. An empty report scores zero.
func (r *ComplianceReport) ComplianceScore() int {
	if r == nil || r.MaxScore == 0 {
		return 0
	}
	return int(float64(r.Score)/float64(r.MaxScore)*100 + 0.5)
}
