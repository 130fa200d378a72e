package requests

import "compliance-service/internal/app/models"

type CreateVersion struct {
	Pages       []models.QuestionPage `json:"pages" validate:"required,min=1"`
	UpdatedBy   string                `json:"updated_by" validate:"required,email"`
	ChangeNotes string                `json:"change_notes"`
}

type SaveVersion struct {
	Pages []models.QuestionPage `json:"pages" validate:"required,min=1"`
}

type SetCurrentVersion struct {
	Version string `json:"version" validate:"required,version"`
}

type AddSection struct {
	Title    string                 `json:"title" validate:"required"`
	Elements []models.SurveyElement `json:"elements"`
}

type DeleteSection struct {
	Reason string `json:"reason"`
}

type SaveEditBuffer struct {
	Pages []models.QuestionPage `json:"pages" validate:"required"`
}
