package models

// UserStatus values are normalized to lowercase before persisting.
const (
	UserStatusPending   = "pending"
	UserStatusActive    = "active"
	UserStatusRejected  = "rejected"
	UserStatusSuspended = "suspended"
)

type User struct {
	ID                 string `json:"id" bson:"_id"`
	Email              string `json:"email" bson:"email"`
	Password           string `json:"-" bson:"password,omitempty"`
	Role               string `json:"role" bson:"role"`
	Status             string `json:"status" bson:"status"`
	Enabled            bool   `json:"enabled" bson:"enabled"`
	RejectionReason    string `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	SuspensionReason   string `json:"suspensionReason,omitempty" bson:"suspensionReason,omitempty"`
	LastStatusChange   string `json:"lastStatusChange,omitempty" bson:"lastStatusChange,omitempty"`
	LastStatusChangeBy string `json:"lastStatusChangeBy,omitempty" bson:"lastStatusChangeBy,omitempty"`
	TimeModel          `bson:",inline"`
}
