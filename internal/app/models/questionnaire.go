package models

import (
	"github.com/goccy/go-json"
)

// SurveyDefinition is the declarative questionnaire document rendered by the
// survey front end. Immutable once published as a version.
type SurveyDefinition struct {
	Title                 string       `json:"title"`
	Description           string       `json:"description,omitempty"`
	ShowProgressBar       string       `json:"showProgressBar,omitempty"`
	ProgressBarType       string       `json:"progressBarType,omitempty"`
	ShowTOC               bool         `json:"showTOC,omitempty"`
	TocLocation           string       `json:"tocLocation,omitempty"`
	GoNextPageAutomatic   bool         `json:"goNextPageAutomatic,omitempty"`
	ShowNavigationButtons bool         `json:"showNavigationButtons,omitempty"`
	ShowPageTitles        bool         `json:"showPageTitles,omitempty"`
	ShowQuestionNumbers   string       `json:"showQuestionNumbers,omitempty"`
	CheckErrorsMode       string       `json:"checkErrorsMode,omitempty"`
	RequiredText          string       `json:"requiredText,omitempty"`
	QuestionErrorLocation string       `json:"questionErrorLocation,omitempty"`
	MaxTextLength         int          `json:"maxTextLength,omitempty"`
	MaxOthersLength       int          `json:"maxOthersLength,omitempty"`
	Pages                 []SurveyPage `json:"pages"`
}

// SurveyPage ordering is significant: section numbering derives from the
// array index.
type SurveyPage struct {
	Name     string          `json:"name,omitempty"`
	Title    string          `json:"title"`
	Elements []SurveyElement `json:"elements"`
}

// SurveyElement's Name is the key an answer dictionary entry binds to; it
// encodes control group, question text and short id.
type SurveyElement struct {
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	IsRequired  bool         `json:"isRequired,omitempty"`
	VisibleIf   string       `json:"visibleIf,omitempty"`
	Choices     []ChoiceItem `json:"choices,omitempty"`
}

// ChoiceItem accepts both the bare-string and the {value,text} JSON forms
// used interchangeably in survey definitions.
type ChoiceItem struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

func (c *ChoiceItem) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		c.Value = plain
		c.Text = plain
		return nil
	}

	type choiceAlias ChoiceItem
	var alias choiceAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*c = ChoiceItem(alias)
	return nil
}

func (c ChoiceItem) MarshalJSON() ([]byte, error) {
	if c.Value == c.Text {
		return json.Marshal(c.Value)
	}
	type choiceAlias ChoiceItem
	return json.Marshal(choiceAlias(c))
}

// VersionMetadata is embedded in every stored version blob.
type VersionMetadata struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`
	UpdatedBy   string `json:"updatedBy"`
	ChangeNotes string `json:"changeNotes"`
}

// VersionedQuestionnaire is the persisted blob shape: a full survey
// definition with its metadata. current.json holds a denormalized copy of the
// active version's blob, not a pointer.
type VersionedQuestionnaire struct {
	SurveyDefinition
	VersionMetadata
}

// VersionInfo is the listing shape returned to admin UIs.
type VersionInfo struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`
	UpdatedBy   string `json:"updatedBy"`
	ChangeNotes string `json:"changeNotes"`
}

// QuestionPage is the editor-facing page shape: a SurveyPage carrying a
// synthetic id used only inside the admin edit session.
type QuestionPage struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Elements []SurveyElement `json:"elements"`
}
