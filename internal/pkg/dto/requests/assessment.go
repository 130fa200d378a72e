package requests

import "compliance-service/internal/app/models"

type CreateAssessment struct {
	Name       string                  `json:"name" validate:"required"`
	AnswerData models.AnswerDictionary `json:"answer_data"`
}

type UpdateAssessment struct {
	AnswerData       models.AnswerDictionary `json:"answer_data" validate:"required"`
	CurrentPage      int                     `json:"current_page" validate:"min=0"`
	PercentCompleted int                     `json:"percent_completed" validate:"min=0,max=100"`
}

type GenerateReport struct {
	AnswerData models.AnswerDictionary `json:"answer_data" validate:"required"`
}
