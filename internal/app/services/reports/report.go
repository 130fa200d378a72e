package reports

import (
	"errors"
	"sort"
	"strings"

	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/dto/responses"
	"compliance-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// Report scores one assessment's answer dictionary. Construct with NewReport
// or NewReportFromJSON; both reject data that is not a JSON object.
type Report struct {
	assessmentData models.AnswerDictionary
}

func NewReport(assessmentData models.AnswerDictionary) (*Report, error) {
	if assessmentData == nil {
		return nil, exceptions.ErrInvalidAnswerData(errors.New(constvars.ErrDevReportDataNil))
	}
	return &Report{assessmentData: assessmentData}, nil
}

func NewReportFromJSON(raw []byte) (*Report, error) {
	var assessmentData models.AnswerDictionary
	if err := json.Unmarshal(raw, &assessmentData); err != nil {
		return nil, exceptions.ErrInvalidAnswerData(errors.New(constvars.ErrDevReportDataNotObject))
	}
	return NewReport(assessmentData)
}

// GenerateReportData walks the dictionary once, bucketing control answers
// under group and control keys and collecting onboarding answers unscored.
// Keys matching neither encoding are skipped silently.
func (r *Report) GenerateReportData() *responses.ComplianceReport {
	report := &responses.ComplianceReport{
		OnboardingResults:   make([]responses.QuestionAnswer, 0),
		ControlGroupResults: make(map[string]*responses.ControlGroupResult),
	}

	keys := r.sortedKeys()

	report.OnboardingResults = r.onboardingResults(keys)

	for _, key := range keys {
		parsed := ParseAnswerKey(key)
		if parsed.Kind != AnswerKeyControl || parsed.IsFollowUp {
			continue
		}
		if !strings.Contains(key, constvars.AnswerKeyControlDelimiter) {
			continue
		}

		questionAnswer := responses.QuestionAnswer{
			Question:          parsed.QuestionText,
			ShortFormQuestion: parsed.ShortID,
			Answer:            r.assessmentData[key],
			FollowUp:          r.followUpFor(keys, parsed.ShortID),
		}

		group, ok := report.ControlGroupResults[parsed.GroupOrPage]
		if !ok {
			group = &responses.ControlGroupResult{
				ControlResults: make(map[string]*responses.ControlResult),
			}
			report.ControlGroupResults[parsed.GroupOrPage] = group
		}

		control, ok := group.ControlResults[parsed.Control]
		if !ok {
			control = &responses.ControlResult{
				QuestionsAnswered: make([]responses.QuestionAnswer, 0),
			}
			group.ControlResults[parsed.Control] = control
		}

		control.QuestionsAnswered = append(control.QuestionsAnswered, questionAnswer)
	}

	r.calculateScores(report)
	return report
}

// sortedKeys fixes the iteration order so report output is stable between
// runs on the same dictionary.
func (r *Report) sortedKeys() []string {
	keys := make([]string, 0, len(r.assessmentData))
	for key := range r.assessmentData {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// onboardingResults collects unscored onboarding answers. A follow-up answer
// is appended right after its parent as a synthetic entry whose question text
// carries a "follow up explanation:" suffix.
func (r *Report) onboardingResults(keys []string) []responses.QuestionAnswer {
	results := make([]responses.QuestionAnswer, 0)
	for _, key := range keys {
		parsed := ParseAnswerKey(key)
		if parsed.Kind != AnswerKeyOnboarding || parsed.IsFollowUp {
			continue
		}

		results = append(results, responses.QuestionAnswer{
			Question: parsed.QuestionText,
			Answer:   r.assessmentData[key],
		})

		if followUp := r.followUpFor(keys, parsed.ShortID); followUp != nil {
			results = append(results, responses.QuestionAnswer{
				Question: parsed.QuestionText + " follow up explanation:",
				Answer:   followUp.Answer,
			})
		}
	}
	return results
}

func (r *Report) followUpFor(keys []string, shortID string) *responses.QuestionAnswer {
	if shortID == "" {
		return nil
	}
	marker := shortID + constvars.AnswerKeyFollowUpSuffix
	for _, key := range keys {
		if !strings.Contains(key, marker) {
			continue
		}
		question := strings.Split(key, constvars.AnswerKeyFollowUpDelimiter)[0]
		return &responses.QuestionAnswer{
			Question: question,
			Answer:   r.assessmentData[key],
		}
	}
	return nil
}

// calculateScores runs the scoring pass: every scored question raises
// maxScore by one at control, group and report level; a case-insensitive
// "yes" raises score the same way. Follow-ups never score.
func (r *Report) calculateScores(report *responses.ComplianceReport) {
	for _, group := range report.ControlGroupResults {
		for _, control := range group.ControlResults {
			for _, questionAnswer := range control.QuestionsAnswered {
				control.MaxScore++
				group.MaxScore++
				report.MaxScore++

				answer, ok := questionAnswer.Answer.(string)
				if ok && strings.EqualFold(answer, "yes") {
					control.Score++
					group.Score++
					report.Score++
				}
			}
		}
	}
}
