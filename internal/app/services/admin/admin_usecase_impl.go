package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/dto/requests"
	"compliance-service/internal/pkg/dto/responses"
	"compliance-service/internal/pkg/exceptions"
	"compliance-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const defaultAuditLogLimit = 100

type adminUsecase struct {
	Identity             contracts.IdentityDirectory
	AuditLogRepository   contracts.AuditLogRepository
	SettingsRepository   contracts.SystemSettingsRepository
	InProgressRepository contracts.InProgressAssessmentRepository
	CompletedRepository  contracts.CompletedAssessmentRepository
	MailerService        contracts.MailerService
	Logger               *zap.Logger
}

func NewAdminUsecase(
	identity contracts.IdentityDirectory,
	auditLogRepository contracts.AuditLogRepository,
	settingsRepository contracts.SystemSettingsRepository,
	inProgressRepository contracts.InProgressAssessmentRepository,
	completedRepository contracts.CompletedAssessmentRepository,
	mailerService contracts.MailerService,
	logger *zap.Logger,
) contracts.AdminUsecase {
	return &adminUsecase{
		Identity:             identity,
		AuditLogRepository:   auditLogRepository,
		SettingsRepository:   settingsRepository,
		InProgressRepository: inProgressRepository,
		CompletedRepository:  completedRepository,
		MailerService:        mailerService,
		Logger:               logger,
	}
}

// Execute dispatches a management operation by name. Unknown names fall back
// to listing users rather than failing.
func (uc *adminUsecase) Execute(ctx context.Context, actorEmail string, request *requests.AdminOperation) (interface{}, error) {
	args := request.Arguments
	performedBy := actorEmail
	if args.PerformedBy != "" {
		performedBy = args.PerformedBy
	}

	switch request.Operation {
	case "listUsers":
		return uc.listUsers(ctx)
	case "getUsersByStatus":
		return uc.getUsersByStatus(ctx, args.Status)
	case "getUserDetails":
		return uc.getUserDetails(ctx, args.Email)
	case "approveUser":
		return uc.approveUser(ctx, args.Email, performedBy)
	case "rejectUser":
		return uc.rejectUser(ctx, args.Email, args.Reason, performedBy)
	case "suspendUser":
		return uc.suspendUser(ctx, args.Email, args.Reason, performedBy)
	case "reactivateUser":
		return uc.reactivateUser(ctx, args.Email, performedBy)
	case "createUser":
		return uc.createUser(ctx, args, performedBy)
	case "updateUserRole":
		return uc.updateUserRole(ctx, args.Email, args.Role, performedBy)
	case "deleteUser":
		return uc.deleteUser(ctx, args.Email, performedBy)
	case "getAuditLogs":
		return uc.getAuditLogs(ctx, args.Limit)
	case "getAdminStats":
		return uc.getAdminStats(ctx)
	case "getAllSystemSettings":
		return uc.getAllSystemSettings(ctx)
	case "updateSystemSettings":
		return uc.updateSystemSettings(ctx, args.Settings, performedBy)
	default:
		uc.Logger.Warn(fmt.Sprintf(constvars.ErrDevUnknownAdminOperation, request.Operation),
			zap.String(constvars.LoggingOperationKey, request.Operation),
		)
		return uc.listUsers(ctx)
	}
}

func (uc *adminUsecase) listUsers(ctx context.Context) (*responses.UserList, error) {
	users, err := uc.Identity.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return &responses.UserList{Users: users, Total: len(users)}, nil
}

func (uc *adminUsecase) getUsersByStatus(ctx context.Context, status string) (*responses.UserList, error) {
	users, err := uc.Identity.FindByStatus(ctx, strings.ToLower(status))
	if err != nil {
		return nil, err
	}
	return &responses.UserList{Users: users, Total: len(users)}, nil
}

func (uc *adminUsecase) getUserDetails(ctx context.Context, email string) (*models.User, error) {
	user, err := uc.Identity.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}

func (uc *adminUsecase) approveUser(ctx context.Context, email, performedBy string) (*responses.OperationResult, error) {
	if err := uc.updateUserStatus(ctx, email, models.UserStatusActive, performedBy, ""); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionUserApproved, performedBy, email, map[string]interface{}{
		"email": email,
	})
	uc.notify(ctx, email, constvars.EmailSubjectAccountApproved, approvalEmailBody())
	return &responses.OperationResult{Success: true}, nil
}

func (uc *adminUsecase) rejectUser(ctx context.Context, email, reason, performedBy string) (*responses.OperationResult, error) {
	if err := uc.updateUserStatus(ctx, email, models.UserStatusRejected, performedBy, reason); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionUserRejected, performedBy, email, map[string]interface{}{
		"email":  email,
		"reason": reasonOrDefault(reason),
	})
	if reason != "" {
		uc.notify(ctx, email, constvars.EmailSubjectAccountRejected, rejectionEmailBody(reason))
	}
	return &responses.OperationResult{Success: true}, nil
}

func (uc *adminUsecase) suspendUser(ctx context.Context, email, reason, performedBy string) (*responses.OperationResult, error) {
	if err := uc.updateUserStatus(ctx, email, models.UserStatusSuspended, performedBy, reason); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionUserSuspended, performedBy, email, map[string]interface{}{
		"email":  email,
		"reason": reasonOrDefault(reason),
	})
	if reason != "" {
		uc.notify(ctx, email, constvars.EmailSubjectAccountSuspended, suspensionEmailBody(reason))
	}
	return &responses.OperationResult{Success: true}, nil
}

func (uc *adminUsecase) reactivateUser(ctx context.Context, email, performedBy string) (*responses.OperationResult, error) {
	if err := uc.updateUserStatus(ctx, email, models.UserStatusActive, performedBy, ""); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionUserReactivated, performedBy, email, map[string]interface{}{
		"email": email,
	})
	uc.notify(ctx, email, constvars.EmailSubjectAccountReactivated, reactivationEmailBody())
	return &responses.OperationResult{Success: true}, nil
}

func (uc *adminUsecase) createUser(ctx context.Context, args requests.AdminOperationArgs, performedBy string) (*models.User, error) {
	if args.Email == "" || !utils.ValidateEmail(args.Email) {
		return nil, exceptions.ErrInputValidation(errors.New(constvars.ErrDevInvalidInput))
	}

	existing, err := uc.Identity.FindByEmail(ctx, args.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	role := args.Role
	if role == "" {
		role = constvars.RoleUser
	}

	hashedPassword := ""
	if args.Password != "" {
		hashedPassword, err = utils.HashPassword(args.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:                 args.Email,
		Email:              args.Email,
		Password:           hashedPassword,
		Role:               role,
		Status:             models.UserStatusActive,
		Enabled:            true,
		LastStatusChange:   now.Format(time.RFC3339),
		LastStatusChangeBy: performedBy,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := uc.Identity.Insert(ctx, user); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionUserCreated, performedBy, args.Email, map[string]interface{}{
		"email":     args.Email,
		"role":      role,
		"sendEmail": args.SendEmail != nil && *args.SendEmail,
	})

	if args.SendEmail == nil || *args.SendEmail {
		uc.notify(ctx, args.Email, constvars.EmailSubjectAccountCreated, createdEmailBody(role))
	}
	return user, nil
}

func (uc *adminUsecase) updateUserRole(ctx context.Context, email, role, performedBy string) (*responses.OperationResult, error) {
	user, err := uc.getUserDetails(ctx, email)
	if err != nil {
		return nil, err
	}

	previousRole := user.Role
	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	if err := uc.Identity.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionUserRoleUpdated, performedBy, email, map[string]interface{}{
		"email":        email,
		"previousRole": previousRole,
		"newRole":      role,
	})
	return &responses.OperationResult{Success: true}, nil
}

func (uc *adminUsecase) deleteUser(ctx context.Context, email, performedBy string) (*responses.OperationResult, error) {
	if _, err := uc.getUserDetails(ctx, email); err != nil {
		return nil, err
	}
	if err := uc.Identity.Delete(ctx, email); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionUserDeleted, performedBy, email, map[string]interface{}{
		"email": email,
	})
	return &responses.OperationResult{Success: true}, nil
}

func (uc *adminUsecase) getAuditLogs(ctx context.Context, limit int64) (*responses.AuditLogList, error) {
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}
	entries, err := uc.AuditLogRepository.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &responses.AuditLogList{Entries: entries, Total: len(entries)}, nil
}

// getAdminStats aggregates user and assessment counts. Each source failing
// independently leaves its section zeroed rather than failing the whole call.
func (uc *adminUsecase) getAdminStats(ctx context.Context) (*responses.AdminStats, error) {
	stats := &responses.AdminStats{
		RecentActivity: make([]models.AuditLog, 0),
	}

	users, err := uc.Identity.ListUsers(ctx)
	if err != nil {
		uc.Logger.Error("failed to aggregate user statistics", zap.Error(err))
	}
	for _, user := range users {
		stats.Users.Total++
		switch user.Status {
		case models.UserStatusActive:
			stats.Users.Active++
		case models.UserStatusPending:
			stats.Users.Pending++
		case models.UserStatusRejected:
			stats.Users.Rejected++
		case models.UserStatusSuspended:
			stats.Users.Suspended++
		}
	}

	inProgress, err := uc.InProgressRepository.FindAll(ctx)
	if err != nil {
		uc.Logger.Error("failed to aggregate in-progress assessment statistics", zap.Error(err))
	}
	stats.Assessments.InProgress = len(inProgress)

	completed, err := uc.CompletedRepository.FindAll(ctx)
	if err != nil {
		uc.Logger.Error("failed to aggregate completed assessment statistics", zap.Error(err))
	}
	for _, assessment := range completed {
		stats.Assessments.Completed++
		if assessment.IsCompliant {
			stats.Assessments.Compliant++
		} else {
			stats.Assessments.NonCompliant++
		}
	}
	if stats.Assessments.Completed > 0 {
		stats.ComplianceRate = stats.Assessments.Compliant * 100 / stats.Assessments.Completed
	}
	stats.Assessments.Total = stats.Assessments.InProgress + stats.Assessments.Completed

	if entries, err := uc.AuditLogRepository.FindRecent(ctx, 10); err == nil {
		stats.RecentActivity = entries
	}

	return stats, nil
}

func (uc *adminUsecase) getAllSystemSettings(ctx context.Context) ([]models.SystemSetting, error) {
	return uc.SettingsRepository.FindAll(ctx)
}

func (uc *adminUsecase) updateSystemSettings(ctx context.Context, settings map[string]string, performedBy string) (*responses.OperationResult, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	for name, value := range settings {
		setting := &models.SystemSetting{
			ID:          name,
			Name:        name,
			Value:       value,
			LastUpdated: now,
			UpdatedBy:   performedBy,
		}
		if err := uc.SettingsRepository.Upsert(ctx, setting); err != nil {
			return nil, err
		}
	}

	uc.recordAudit(ctx, models.AuditActionSettingsUpdated, performedBy, constvars.ResourceAdmin, map[string]interface{}{
		"updatedSettings": len(settings),
	})
	return &responses.OperationResult{Success: true}, nil
}

// updateUserStatus normalizes the status to lowercase, stamps the change and
// persists. Rejected and suspended states carry their reason on the record.
func (uc *adminUsecase) updateUserStatus(ctx context.Context, email, status, performedBy, reason string) error {
	user, err := uc.getUserDetails(ctx, email)
	if err != nil {
		return err
	}

	status = strings.ToLower(status)
	now := time.Now().UTC()

	user.Status = status
	user.Enabled = status == models.UserStatusActive
	user.LastStatusChange = now.Format(time.RFC3339)
	user.LastStatusChangeBy = performedBy
	user.UpdatedAt = now

	user.RejectionReason = ""
	user.SuspensionReason = ""
	switch status {
	case models.UserStatusRejected:
		user.RejectionReason = reasonOrDefault(reason)
	case models.UserStatusSuspended:
		user.SuspensionReason = reasonOrDefault(reason)
	}

	return uc.Identity.Update(ctx, user)
}

func (uc *adminUsecase) recordAudit(ctx context.Context, action, performedBy, resourceID string, details map[string]interface{}) {
	entry := models.NewAuditLog(action, performedBy, constvars.ResourceUsers, resourceID, details)
	if err := uc.AuditLogRepository.Insert(ctx, entry); err != nil {
		uc.Logger.Warn("failed to record audit entry",
			zap.String(constvars.LoggingOperationKey, action),
			zap.Error(err),
		)
	}
}

// notify enqueues the email; delivery failures are logged, never surfaced to
// the admin operation.
func (uc *adminUsecase) notify(ctx context.Context, email, subject, htmlBody string) {
	payload := &requests.EmailPayload{
		ReceiverEmail: email,
		Subject:       subject,
		HTMLBody:      htmlBody,
	}
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Logger.Warn("failed to enqueue notification email",
			zap.String(constvars.LoggingUserEmailKey, email),
			zap.Error(err),
		)
	}
}

func reasonOrDefault(reason string) string {
	if reason == "" {
		return "No reason provided"
	}
	return reason
}
