package questionnaires

import (
	"fmt"
	"regexp"

	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
)

var sectionPrefixRegex = regexp.MustCompile(constvars.RegexSectionPrefix)

// RenumberSections rewrites every page title with a contiguous "Section N: "
// prefix, stripping any stale prefix first. Pure and idempotent; the input
// slice is not mutated.
func RenumberSections(pages []models.QuestionPage) []models.QuestionPage {
	renumbered := make([]models.QuestionPage, len(pages))
	for i, page := range pages {
		bareTitle := sectionPrefixRegex.ReplaceAllString(page.Title, "")
		page.Title = fmt.Sprintf(constvars.QuestionnaireSectionTitleFormat, i+1, bareTitle)
		renumbered[i] = page
	}
	return renumbered
}

// toQuestionPages converts stored survey pages into the editor shape,
// assigning synthetic positional ids.
func toQuestionPages(pages []models.SurveyPage) []models.QuestionPage {
	questionPages := make([]models.QuestionPage, len(pages))
	for i, page := range pages {
		questionPages[i] = models.QuestionPage{
			ID:       fmt.Sprintf(constvars.QuestionnaireEditPageIDFormat, i),
			Title:    page.Title,
			Elements: page.Elements,
		}
	}
	return questionPages
}

// toSurveyPages strips editor ids back off for persistence.
func toSurveyPages(pages []models.QuestionPage) []models.SurveyPage {
	surveyPages := make([]models.SurveyPage, len(pages))
	for i, page := range pages {
		surveyPages[i] = models.SurveyPage{
			Title:    page.Title,
			Elements: page.Elements,
		}
	}
	return surveyPages
}
