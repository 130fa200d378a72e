package requests

type EmailPayload struct {
	ReceiverEmail string `json:"receiver_email" validate:"required,email"`
	Subject       string `json:"subject" validate:"required"`
	HTMLBody      string `json:"html_body" validate:"required"`
}
