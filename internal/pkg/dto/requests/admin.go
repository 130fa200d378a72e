package requests

// AdminOperation is the management dispatch envelope. Arguments are
// interpreted per operation name.
type AdminOperation struct {
	Operation string             `json:"operation" validate:"required"`
	Arguments AdminOperationArgs `json:"arguments"`
}

type AdminOperationArgs struct {
	Email       string            `json:"email,omitempty"`
	Status      string            `json:"status,omitempty"`
	Reason      string            `json:"reason,omitempty"`
	Name        string            `json:"name,omitempty"`
	Role        string            `json:"role,omitempty" validate:"omitempty,user_role"`
	Password    string            `json:"password,omitempty"`
	Limit       int64             `json:"limit,omitempty"`
	Settings    map[string]string `json:"settings,omitempty"`
	SendEmail   *bool             `json:"send_email,omitempty"`
	PerformedBy string            `json:"performed_by,omitempty"`
}
