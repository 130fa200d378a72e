package contracts

import (
	"context"

	"compliance-service/internal/pkg/dto/requests"
)

// MailerService enqueues notification email for asynchronous delivery.
type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}

// SMTPService performs the actual delivery; used by the mail worker.
type SMTPService interface {
	SendHTMLEmail(to, subject, htmlBody string) error
}
