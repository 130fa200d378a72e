package constvars

const (
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
)

const (
	EmailSubjectAccountApproved    = "Your account has been approved"
	EmailSubjectAccountRejected    = "Your account application was not approved"
	EmailSubjectAccountSuspended   = "Your account has been suspended"
	EmailSubjectAccountReactivated = "Your account has been reactivated"
	EmailSubjectAccountCreated     = "Welcome - your account has been created"
)
