package contracts

import (
	"context"

	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/dto/requests"
)

// AdminUsecase dispatches management operations by name. Unrecognized
// operation names fall back to listing users.
type AdminUsecase interface {
	Execute(ctx context.Context, actorEmail string, request *requests.AdminOperation) (interface{}, error)
}

// IdentityDirectory is the account store backing admin user management.
type IdentityDirectory interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByStatus(ctx context.Context, status string) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, email string) error
}

type AuditLogRepository interface {
	Insert(ctx context.Context, entry *models.AuditLog) error
	FindRecent(ctx context.Context, limit int64) ([]models.AuditLog, error)
}

type SystemSettingsRepository interface {
	FindAll(ctx context.Context) ([]models.SystemSetting, error)
	Upsert(ctx context.Context, setting *models.SystemSetting) error
}
