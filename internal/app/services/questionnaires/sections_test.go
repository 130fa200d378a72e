package questionnaires

import (
	"testing"

	"compliance-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestRenumberSections(t *testing.T) {
	t.Run("Prefixes Titles In Order", func(t *testing.T) {
		pages := []models.QuestionPage{
			{Title: "Onboarding"},
			{Title: "Access Control"},
			{Title: "Incident Response"},
		}

		renumbered := RenumberSections(pages)

		assert.Equal(t, "Section 1: Onboarding", renumbered[0].Title)
		assert.Equal(t, "Section 2: Access Control", renumbered[1].Title)
		assert.Equal(t, "Section 3: Incident Response", renumbered[2].Title)
	})

	t.Run("Strips Stale Prefixes", func(t *testing.T) {
		pages := []models.QuestionPage{
			{Title: "Section 7: Access Control"},
			{Title: "Section 2: Onboarding"},
		}

		renumbered := RenumberSections(pages)

		assert.Equal(t, "Section 1: Access Control", renumbered[0].Title)
		assert.Equal(t, "Section 2: Onboarding", renumbered[1].Title)
	})

	t.Run("Idempotent", func(t *testing.T) {
		pages := []models.QuestionPage{
			{Title: "Onboarding"},
			{Title: "Access Control"},
		}

		once := RenumberSections(pages)
		twice := RenumberSections(once)

		assert.Equal(t, once, twice)
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		pages := []models.QuestionPage{{Title: "Onboarding"}}

		RenumberSections(pages)

		assert.Equal(t, "Onboarding", pages[0].Title)
	})

	t.Run("Empty Slice", func(t *testing.T) {
		assert.Empty(t, RenumberSections(nil))
	})
}

func TestPageConversions(t *testing.T) {
	surveyPages := []models.SurveyPage{
		{Title: "Section 1: Onboarding", Elements: []models.SurveyElement{{Type: "text", Name: "onboarding^Company?^c"}}},
		{Title: "Section 2: Questionnaire"},
	}

	questionPages := toQuestionPages(surveyPages)
	assert.Equal(t, "page-0", questionPages[0].ID)
	assert.Equal(t, "page-1", questionPages[1].ID)
	assert.Equal(t, surveyPages[0].Title, questionPages[0].Title)
	assert.Equal(t, surveyPages[0].Elements, questionPages[0].Elements)

	roundTripped := toSurveyPages(questionPages)
	assert.Equal(t, surveyPages, roundTripped)
}
