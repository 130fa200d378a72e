package smtp

import (
	"fmt"
	"net/smtp"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/drivers/mailer"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/exceptions"
)

type smtpService struct {
	Client *mailer.SMTPClient
}

func NewSmtpService(client *mailer.SMTPClient) contracts.SMTPService {
	return &smtpService{
		Client: client,
	}
}

func (svc *smtpService) SendHTMLEmail(to, subject, htmlBody string) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, to, subject, htmlBody))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}
