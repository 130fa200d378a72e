package admin

import (
	"context"
	"testing"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/dto/requests"
	"compliance-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeIdentityDirectory struct {
	users map[string]*models.User
}

func newFakeIdentityDirectory() *fakeIdentityDirectory {
	return &fakeIdentityDirectory{users: make(map[string]*models.User)}
}

func (d *fakeIdentityDirectory) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	for _, user := range d.users {
		users = append(users, *user)
	}
	return users, nil
}

func (d *fakeIdentityDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := d.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (d *fakeIdentityDirectory) FindByStatus(ctx context.Context, status string) ([]models.User, error) {
	users := make([]models.User, 0)
	for _, user := range d.users {
		if user.Status == status {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (d *fakeIdentityDirectory) Insert(ctx context.Context, user *models.User) error {
	copied := *user
	d.users[user.Email] = &copied
	return nil
}

func (d *fakeIdentityDirectory) Update(ctx context.Context, user *models.User) error {
	copied := *user
	d.users[user.Email] = &copied
	return nil
}

func (d *fakeIdentityDirectory) Delete(ctx context.Context, email string) error {
	delete(d.users, email)
	return nil
}

type fakeAuditLogRepository struct {
	entries []models.AuditLog
}

func (r *fakeAuditLogRepository) Insert(ctx context.Context, entry *models.AuditLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditLogRepository) FindRecent(ctx context.Context, limit int64) ([]models.AuditLog, error) {
	if int64(len(r.entries)) <= limit {
		return r.entries, nil
	}
	return r.entries[:limit], nil
}

type fakeSettingsRepository struct {
	settings map[string]*models.SystemSetting
}

func newFakeSettingsRepository() *fakeSettingsRepository {
	return &fakeSettingsRepository{settings: make(map[string]*models.SystemSetting)}
}

func (r *fakeSettingsRepository) FindAll(ctx context.Context) ([]models.SystemSetting, error) {
	settings := make([]models.SystemSetting, 0)
	for _, setting := range r.settings {
		settings = append(settings, *setting)
	}
	return settings, nil
}

func (r *fakeSettingsRepository) Upsert(ctx context.Context, setting *models.SystemSetting) error {
	copied := *setting
	r.settings[setting.Name] = &copied
	return nil
}

type fakeInProgressRepository struct {
	records []models.InProgressAssessment
}

func (r *fakeInProgressRepository) Insert(ctx context.Context, assessment *models.InProgressAssessment) error {
	r.records = append(r.records, *assessment)
	return nil
}

func (r *fakeInProgressRepository) FindByID(ctx context.Context, id string) (*models.InProgressAssessment, error) {
	return nil, nil
}

func (r *fakeInProgressRepository) FindByOwner(ctx context.Context, owner string) ([]models.InProgressAssessment, error) {
	return r.records, nil
}

func (r *fakeInProgressRepository) FindAll(ctx context.Context) ([]models.InProgressAssessment, error) {
	return r.records, nil
}

func (r *fakeInProgressRepository) Update(ctx context.Context, assessment *models.InProgressAssessment) error {
	return nil
}

func (r *fakeInProgressRepository) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeCompletedRepository struct {
	records []models.CompletedAssessment
}

func (r *fakeCompletedRepository) Insert(ctx context.Context, assessment *models.CompletedAssessment) error {
	r.records = append(r.records, *assessment)
	return nil
}

func (r *fakeCompletedRepository) FindByID(ctx context.Context, id string) (*models.CompletedAssessment, error) {
	return nil, nil
}

func (r *fakeCompletedRepository) FindByOwner(ctx context.Context, owner string) ([]models.CompletedAssessment, error) {
	return r.records, nil
}

func (r *fakeCompletedRepository) FindAll(ctx context.Context) ([]models.CompletedAssessment, error) {
	return r.records, nil
}

type fakeMailerService struct {
	sent []requests.EmailPayload
}

func (m *fakeMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	m.sent = append(m.sent, *request)
	return nil
}

type adminHarness struct {
	usecase    contracts.AdminUsecase
	identity   *fakeIdentityDirectory
	auditLogs  *fakeAuditLogRepository
	settings   *fakeSettingsRepository
	inProgress *fakeInProgressRepository
	completed  *fakeCompletedRepository
	mailer     *fakeMailerService
}

func newAdminHarness(t *testing.T) *adminHarness {
	t.Helper()
	identity := newFakeIdentityDirectory()
	auditLogs := &fakeAuditLogRepository{}
	settings := newFakeSettingsRepository()
	inProgress := &fakeInProgressRepository{}
	completed := &fakeCompletedRepository{}
	mailer := &fakeMailerService{}
	usecase := NewAdminUsecase(identity, auditLogs, settings, inProgress, completed, mailer, zap.NewNop())
	return &adminHarness{
		usecase:    usecase,
		identity:   identity,
		auditLogs:  auditLogs,
		settings:   settings,
		inProgress: inProgress,
		completed:  completed,
		mailer:     mailer,
	}
}

func execute(t *testing.T, harness *adminHarness, operation string, args requests.AdminOperationArgs) (interface{}, error) {
	t.Helper()
	return harness.usecase.Execute(context.Background(), "admin@example.com", &requests.AdminOperation{
		Operation: operation,
		Arguments: args,
	})
}

func seedUser(harness *adminHarness, email, status string) {
	harness.identity.users[email] = &models.User{
		ID:     email,
		Email:  email,
		Role:   constvars.RoleUser,
		Status: status,
	}
}

func TestExecute_UnknownOperationFallsBackToListUsers(t *testing.T) {
	harness := newAdminHarness(t)
	seedUser(harness, "someone@example.com", models.UserStatusActive)

	result, err := execute(t, harness, "definitelyNotAnOperation", requests.AdminOperationArgs{})
	require.NoError(t, err)

	userList, ok := result.(*responses.UserList)
	require.True(t, ok)
	assert.Equal(t, 1, userList.Total)
}

func TestExecute_StatusTransitions(t *testing.T) {
	t.Run("Approve Pending User", func(t *testing.T) {
		harness := newAdminHarness(t)
		seedUser(harness, "pending@example.com", models.UserStatusPending)

		result, err := execute(t, harness, "approveUser", requests.AdminOperationArgs{Email: "pending@example.com"})
		require.NoError(t, err)
		assert.True(t, result.(*responses.OperationResult).Success)

		user := harness.identity.users["pending@example.com"]
		assert.Equal(t, models.UserStatusActive, user.Status)
		assert.True(t, user.Enabled)
		assert.Equal(t, "admin@example.com", user.LastStatusChangeBy)

		require.Len(t, harness.auditLogs.entries, 1)
		assert.Equal(t, models.AuditActionUserApproved, harness.auditLogs.entries[0].Action)

		require.Len(t, harness.mailer.sent, 1)
		assert.Equal(t, "pending@example.com", harness.mailer.sent[0].ReceiverEmail)
		assert.Equal(t, constvars.EmailSubjectAccountApproved, harness.mailer.sent[0].Subject)
	})

	t.Run("Reject With Reason Sends Email", func(t *testing.T) {
		harness := newAdminHarness(t)
		seedUser(harness, "pending@example.com", models.UserStatusPending)

		_, err := execute(t, harness, "rejectUser", requests.AdminOperationArgs{
			Email:  "pending@example.com",
			Reason: "incomplete application",
		})
		require.NoError(t, err)

		user := harness.identity.users["pending@example.com"]
		assert.Equal(t, models.UserStatusRejected, user.Status)
		assert.False(t, user.Enabled)
		assert.Equal(t, "incomplete application", user.RejectionReason)

		require.Len(t, harness.mailer.sent, 1)
		assert.Contains(t, harness.mailer.sent[0].HTMLBody, "incomplete application")
	})

	t.Run("Reject Without Reason Skips Email", func(t *testing.T) {
		harness := newAdminHarness(t)
		seedUser(harness, "pending@example.com", models.UserStatusPending)

		_, err := execute(t, harness, "rejectUser", requests.AdminOperationArgs{Email: "pending@example.com"})
		require.NoError(t, err)
		assert.Empty(t, harness.mailer.sent)
	})

	t.Run("Suspend Then Reactivate Clears Reason", func(t *testing.T) {
		harness := newAdminHarness(t)
		seedUser(harness, "active@example.com", models.UserStatusActive)

		_, err := execute(t, harness, "suspendUser", requests.AdminOperationArgs{
			Email:  "active@example.com",
			Reason: "policy violation",
		})
		require.NoError(t, err)
		assert.Equal(t, "policy violation", harness.identity.users["active@example.com"].SuspensionReason)

		_, err = execute(t, harness, "reactivateUser", requests.AdminOperationArgs{Email: "active@example.com"})
		require.NoError(t, err)

		user := harness.identity.users["active@example.com"]
		assert.Equal(t, models.UserStatusActive, user.Status)
		assert.True(t, user.Enabled)
		assert.Empty(t, user.SuspensionReason)
	})

	t.Run("Unknown User", func(t *testing.T) {
		harness := newAdminHarness(t)

		_, err := execute(t, harness, "approveUser", requests.AdminOperationArgs{Email: "ghost@example.com"})
		assert.Error(t, err)
	})
}

func TestExecute_CreateUser(t *testing.T) {
	t.Run("Creates Active User With Default Role", func(t *testing.T) {
		harness := newAdminHarness(t)

		result, err := execute(t, harness, "createUser", requests.AdminOperationArgs{
			Email: "new@example.com",
		})
		require.NoError(t, err)

		user, ok := result.(*models.User)
		require.True(t, ok)
		assert.Equal(t, constvars.RoleUser, user.Role)
		assert.Equal(t, models.UserStatusActive, user.Status)
		assert.True(t, user.Enabled)

		require.Len(t, harness.mailer.sent, 1)
		assert.Equal(t, constvars.EmailSubjectAccountCreated, harness.mailer.sent[0].Subject)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		harness := newAdminHarness(t)
		seedUser(harness, "taken@example.com", models.UserStatusActive)

		_, err := execute(t, harness, "createUser", requests.AdminOperationArgs{Email: "taken@example.com"})
		assert.Error(t, err)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		harness := newAdminHarness(t)

		_, err := execute(t, harness, "createUser", requests.AdminOperationArgs{Email: "not-an-email"})
		assert.Error(t, err)
	})

	t.Run("Send Email Opt Out", func(t *testing.T) {
		harness := newAdminHarness(t)
		skip := false

		_, err := execute(t, harness, "createUser", requests.AdminOperationArgs{
			Email:     "quiet@example.com",
			SendEmail: &skip,
		})
		require.NoError(t, err)
		assert.Empty(t, harness.mailer.sent)
	})

	t.Run("Password Is Hashed", func(t *testing.T) {
		harness := newAdminHarness(t)

		_, err := execute(t, harness, "createUser", requests.AdminOperationArgs{
			Email:    "secure@example.com",
			Password: "correct horse battery staple",
		})
		require.NoError(t, err)

		stored := harness.identity.users["secure@example.com"]
		assert.NotEmpty(t, stored.Password)
		assert.NotEqual(t, "correct horse battery staple", stored.Password)
	})
}

func TestExecute_RoleAndDeletion(t *testing.T) {
	harness := newAdminHarness(t)
	seedUser(harness, "user@example.com", models.UserStatusActive)

	t.Run("Update Role", func(t *testing.T) {
		_, err := execute(t, harness, "updateUserRole", requests.AdminOperationArgs{
			Email: "user@example.com",
			Role:  constvars.RoleAdmin,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleAdmin, harness.identity.users["user@example.com"].Role)
	})

	t.Run("Delete User", func(t *testing.T) {
		_, err := execute(t, harness, "deleteUser", requests.AdminOperationArgs{Email: "user@example.com"})
		require.NoError(t, err)
		assert.NotContains(t, harness.identity.users, "user@example.com")
	})

	t.Run("Delete Unknown User", func(t *testing.T) {
		_, err := execute(t, harness, "deleteUser", requests.AdminOperationArgs{Email: "user@example.com"})
		assert.Error(t, err)
	})
}

func TestExecute_GetAdminStats(t *testing.T) {
	harness := newAdminHarness(t)
	seedUser(harness, "a@example.com", models.UserStatusActive)
	seedUser(harness, "b@example.com", models.UserStatusPending)
	seedUser(harness, "c@example.com", models.UserStatusSuspended)

	harness.inProgress.records = []models.InProgressAssessment{{ID: "ip1"}}
	harness.completed.records = []models.CompletedAssessment{
		{ID: "c1", IsCompliant: true},
		{ID: "c2", IsCompliant: true},
		{ID: "c3", IsCompliant: false},
	}
	harness.auditLogs.entries = []models.AuditLog{{ID: "audit-1"}}

	result, err := execute(t, harness, "getAdminStats", requests.AdminOperationArgs{})
	require.NoError(t, err)

	stats, ok := result.(*responses.AdminStats)
	require.True(t, ok)

	assert.Equal(t, 3, stats.Users.Total)
	assert.Equal(t, 1, stats.Users.Active)
	assert.Equal(t, 1, stats.Users.Pending)
	assert.Equal(t, 1, stats.Users.Suspended)

	assert.Equal(t, 1, stats.Assessments.InProgress)
	assert.Equal(t, 3, stats.Assessments.Completed)
	assert.Equal(t, 2, stats.Assessments.Compliant)
	assert.Equal(t, 1, stats.Assessments.NonCompliant)
	assert.Equal(t, 4, stats.Assessments.Total)
	assert.Equal(t, 66, stats.ComplianceRate)

	require.Len(t, stats.RecentActivity, 1)
}

func TestExecute_AuditLogsAndSettings(t *testing.T) {
	harness := newAdminHarness(t)

	t.Run("Update System Settings", func(t *testing.T) {
		result, err := execute(t, harness, "updateSystemSettings", requests.AdminOperationArgs{
			Settings: map[string]string{
				"maintenanceMode": "off",
				"sessionTimeout":  "30",
			},
		})
		require.NoError(t, err)
		assert.True(t, result.(*responses.OperationResult).Success)

		assert.Len(t, harness.settings.settings, 2)
		assert.Equal(t, "admin@example.com", harness.settings.settings["maintenanceMode"].UpdatedBy)
	})

	t.Run("Get All System Settings", func(t *testing.T) {
		result, err := execute(t, harness, "getAllSystemSettings", requests.AdminOperationArgs{})
		require.NoError(t, err)

		settings, ok := result.([]models.SystemSetting)
		require.True(t, ok)
		assert.Len(t, settings, 2)
	})

	t.Run("Get Audit Logs Honors Limit", func(t *testing.T) {
		result, err := execute(t, harness, "getAuditLogs", requests.AdminOperationArgs{Limit: 1})
		require.NoError(t, err)

		logs, ok := result.(*responses.AuditLogList)
		require.True(t, ok)
		assert.Equal(t, 1, logs.Total)
	})

	t.Run("Performed By Override", func(t *testing.T) {
		seedUser(harness, "target@example.com", models.UserStatusPending)

		_, err := execute(t, harness, "approveUser", requests.AdminOperationArgs{
			Email:       "target@example.com",
			PerformedBy: "super@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "super@example.com", harness.identity.users["target@example.com"].LastStatusChangeBy)
	})
}
