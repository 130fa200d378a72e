package reports

import (
	"strings"

	"compliance-service/internal/pkg/constvars"
)

type AnswerKeyKind int

const (
	// AnswerKeyNone marks keys that match neither encoding; the generator
	// skips them silently.
	AnswerKeyNone AnswerKeyKind = iota
	AnswerKeyControl
	AnswerKeyOnboarding
)

// AnswerKey is the decoded form of an answer dictionary key. Control keys
// look like "<Group>@<question>@<shortId>", onboarding keys like
// "<page>^<question>^<shortId>", and control follow-ups like
// "<text>**<shortId>_followup".
type AnswerKey struct {
	Kind         AnswerKeyKind
	GroupOrPage  string
	Control      string
	QuestionText string
	ShortID      string
	IsFollowUp   bool
}

// ParseAnswerKey decodes a single dictionary key. It never fails; keys that
// match no known encoding come back with Kind AnswerKeyNone.
func ParseAnswerKey(key string) AnswerKey {
	isFollowUp := strings.Contains(key, constvars.AnswerKeyFollowUpSuffix)

	if strings.Contains(key, constvars.AnswerKeyControlDelimiter) {
		parts := strings.Split(key, constvars.AnswerKeyControlDelimiter)
		parsed := AnswerKey{
			Kind:       AnswerKeyControl,
			Control:    parts[0],
			IsFollowUp: isFollowUp,
		}
		parsed.GroupOrPage = controlGroupOf(parts[0])
		if len(parts) > 1 {
			parsed.QuestionText = parts[1]
		}
		if len(parts) > 2 {
			parsed.ShortID = strings.TrimSuffix(parts[2], constvars.AnswerKeyFollowUpSuffix)
		}
		return parsed
	}

	if strings.Contains(key, constvars.AnswerKeyOnboardingDelimiter) &&
		strings.Contains(key, constvars.AnswerKeyOnboardingMarker) {
		parts := strings.Split(key, constvars.AnswerKeyOnboardingDelimiter)
		parsed := AnswerKey{
			Kind:        AnswerKeyOnboarding,
			GroupOrPage: parts[0],
			IsFollowUp:  isFollowUp,
		}
		if len(parts) > 1 {
			parsed.QuestionText = parts[1]
		}
		if len(parts) > 2 {
			parsed.ShortID = strings.TrimSuffix(parts[2], constvars.AnswerKeyFollowUpSuffix)
		}
		return parsed
	}

	if strings.Contains(key, constvars.AnswerKeyFollowUpDelimiter) && isFollowUp {
		parts := strings.SplitN(key, constvars.AnswerKeyFollowUpDelimiter, 2)
		return AnswerKey{
			Kind:         AnswerKeyControl,
			QuestionText: parts[0],
			ShortID:      strings.TrimSuffix(parts[1], constvars.AnswerKeyFollowUpSuffix),
			IsFollowUp:   true,
		}
	}

	return AnswerKey{Kind: AnswerKeyNone, IsFollowUp: isFollowUp}
}

// controlGroupOf derives the group bucket from the full control name: its
// first two characters. Control families in the questionnaire are chosen so
// this prefix is distinct enough for grouping.
func controlGroupOf(control string) string {
	runes := []rune(control)
	if len(runes) <= 2 {
		return control
	}
	return string(runes[:2])
}
