package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnswerKey(t *testing.T) {
	t.Run("Control Key", func(t *testing.T) {
		parsed := ParseAnswerKey("Access Control@Do you limit access?@ac1")
		assert.Equal(t, AnswerKeyControl, parsed.Kind)
		assert.Equal(t, "Access Control", parsed.Control)
		assert.Equal(t, "Ac", parsed.GroupOrPage)
		assert.Equal(t, "Do you limit access?", parsed.QuestionText)
		assert.Equal(t, "ac1", parsed.ShortID)
		assert.False(t, parsed.IsFollowUp)
	})

	t.Run("Short Control Name Keeps Full Group", func(t *testing.T) {
		parsed := ParseAnswerKey("AC@Do X?@x")
		assert.Equal(t, "AC", parsed.GroupOrPage)
	})

	t.Run("Onboarding Key", func(t *testing.T) {
		parsed := ParseAnswerKey("onboarding page^Company name?^company")
		assert.Equal(t, AnswerKeyOnboarding, parsed.Kind)
		assert.Equal(t, "onboarding page", parsed.GroupOrPage)
		assert.Equal(t, "Company name?", parsed.QuestionText)
		assert.Equal(t, "company", parsed.ShortID)
		assert.False(t, parsed.IsFollowUp)
	})

	t.Run("Control Follow Up Key", func(t *testing.T) {
		parsed := ParseAnswerKey("If yes, please explain**ac1_followup")
		assert.Equal(t, AnswerKeyControl, parsed.Kind)
		assert.Equal(t, "If yes, please explain", parsed.QuestionText)
		assert.Equal(t, "ac1", parsed.ShortID)
		assert.True(t, parsed.IsFollowUp)
	})

	t.Run("Caret Without Onboarding Marker", func(t *testing.T) {
		parsed := ParseAnswerKey("somepage^Question?^id")
		assert.Equal(t, AnswerKeyNone, parsed.Kind)
	})

	t.Run("Unrecognized Key", func(t *testing.T) {
		parsed := ParseAnswerKey("plainkey")
		assert.Equal(t, AnswerKeyNone, parsed.Kind)
		assert.False(t, parsed.IsFollowUp)
	})

	t.Run("Empty Key", func(t *testing.T) {
		parsed := ParseAnswerKey("")
		assert.Equal(t, AnswerKeyNone, parsed.Kind)
	})
}
