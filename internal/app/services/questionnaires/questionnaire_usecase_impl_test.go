package questionnaires

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeObjectStorage struct {
	objects map[string][]byte
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: make(map[string][]byte)}
}

func (s *fakeObjectStorage) UploadJSON(ctx context.Context, objectPath string, data []byte) error {
	s.objects[objectPath] = data
	return nil
}

func (s *fakeObjectStorage) Download(ctx context.Context, objectPath string) ([]byte, error) {
	data, ok := s.objects[objectPath]
	if !ok {
		return nil, errors.New("object not found: " + objectPath)
	}
	return data, nil
}

func (s *fakeObjectStorage) Delete(ctx context.Context, objectPath string) error {
	delete(s.objects, objectPath)
	return nil
}

func (s *fakeObjectStorage) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	names := make([]string, 0)
	for name := range s.objects {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

type fakeRedisRepository struct {
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(data)
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
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
	return r.entries, nil
}

func newTestUsecase(t *testing.T) (contracts.QuestionnaireUsecase, *fakeObjectStorage, *fakeAuditLogRepository) {
	t.Helper()
	storage := newFakeObjectStorage()
	auditLogs := &fakeAuditLogRepository{}
	editSession := NewEditSession(newFakeRedisRepository(), 1)
	usecase := NewQuestionnaireUsecase(storage, editSession, auditLogs, zap.NewNop())
	return usecase, storage, auditLogs
}

func TestInitializeVersioning(t *testing.T) {
	usecase, _, _ := newTestUsecase(t)
	ctx := context.Background()

	t.Run("Cold Store Bootstraps Initial Version", func(t *testing.T) {
		require.True(t, usecase.InitializeVersioning(ctx))

		versions := usecase.ListVersions(ctx)
		require.Len(t, versions, 1)
		assert.Equal(t, constvars.QuestionnaireInitialVersion, versions[0].Version)

		current := usecase.GetCurrentVersionInfo(ctx)
		require.NotNil(t, current)
		assert.Equal(t, constvars.QuestionnaireInitialVersion, current.Version)
	})

	t.Run("Idempotent On Warm Store", func(t *testing.T) {
		require.True(t, usecase.InitializeVersioning(ctx))
		assert.Len(t, usecase.ListVersions(ctx), 1)
	})
}

func TestCreateNewVersion(t *testing.T) {
	usecase, _, _ := newTestUsecase(t)
	ctx := context.Background()
	require.True(t, usecase.InitializeVersioning(ctx))

	pages := []models.QuestionPage{
		{Title: "Onboarding", Elements: []models.SurveyElement{{Type: "text", Name: "onboarding^Company?^c"}}},
	}

	t.Run("Auto Numbers And Activates", func(t *testing.T) {
		version, err := usecase.CreateNewVersion(ctx, pages, models.VersionMetadata{UpdatedBy: "admin@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "1.1", version)

		current := usecase.GetCurrentVersionInfo(ctx)
		require.NotNil(t, current)
		assert.Equal(t, "1.1", current.Version)
		assert.Equal(t, "admin@example.com", current.UpdatedBy)
	})

	t.Run("Renumbers Sections", func(t *testing.T) {
		version, err := usecase.CreateNewVersion(ctx, []models.QuestionPage{
			{Title: "Section 9: Misnumbered"},
		}, models.VersionMetadata{})
		require.NoError(t, err)

		loaded := usecase.LoadQuestionnaireVersion(ctx, version)
		require.Len(t, loaded, 1)
		assert.Equal(t, "Section 1: Misnumbered", loaded[0].Title)
	})

	t.Run("Versions Sorted Newest First", func(t *testing.T) {
		versions := usecase.ListVersions(ctx)
		require.GreaterOrEqual(t, len(versions), 3)
		assert.Equal(t, "1.2", versions[0].Version)
		assert.Equal(t, "1.1", versions[1].Version)
		assert.Equal(t, "1.0", versions[2].Version)
	})
}

func TestSetCurrentVersion(t *testing.T) {
	usecase, _, _ := newTestUsecase(t)
	ctx := context.Background()
	require.True(t, usecase.InitializeVersioning(ctx))

	_, err := usecase.CreateNewVersion(ctx, []models.QuestionPage{{Title: "Extra"}}, models.VersionMetadata{})
	require.NoError(t, err)

	t.Run("Switch Back To Earlier Version", func(t *testing.T) {
		require.True(t, usecase.SetCurrentVersion(ctx, "1.0"))

		current := usecase.GetCurrentVersionInfo(ctx)
		require.NotNil(t, current)
		assert.Equal(t, "1.0", current.Version)
	})

	t.Run("Missing Version", func(t *testing.T) {
		assert.False(t, usecase.SetCurrentVersion(ctx, "9.9"))
	})
}

func TestSaveVersion(t *testing.T) {
	usecase, _, _ := newTestUsecase(t)
	ctx := context.Background()
	require.True(t, usecase.InitializeVersioning(ctx))

	t.Run("Merges Pages Into Existing Metadata", func(t *testing.T) {
		before := usecase.GetCurrentVersionInfo(ctx)
		require.NotNil(t, before)

		pages := []models.QuestionPage{{Title: "Replaced"}}
		require.True(t, usecase.SaveVersion(ctx, "1.0", pages))

		after := usecase.GetCurrentVersionInfo(ctx)
		require.NotNil(t, after)
		assert.Equal(t, before.ChangeNotes, after.ChangeNotes)

		loaded := usecase.LoadQuestionnaireVersion(ctx, "1.0")
		require.Len(t, loaded, 1)
		assert.Equal(t, "Section 1: Replaced", loaded[0].Title)
	})

	t.Run("Active Version Save Refreshes Current", func(t *testing.T) {
		require.True(t, usecase.SaveVersion(ctx, "1.0", []models.QuestionPage{{Title: "Again"}}))

		current := usecase.GetCurrentQuestionnaire(ctx)
		require.NotNil(t, current)
		require.Len(t, current.Pages, 1)
		assert.Equal(t, "Section 1: Again", current.Pages[0].Title)
	})

	t.Run("Missing Version Synthesizes Auto Save Metadata", func(t *testing.T) {
		require.True(t, usecase.SaveVersion(ctx, "3.0", []models.QuestionPage{{Title: "Orphan"}}))

		versions := usecase.ListVersions(ctx)
		found := false
		for _, info := range versions {
			if info.Version == "3.0" {
				found = true
				assert.Equal(t, constvars.QuestionnaireAutoSavedChangeNotes, info.ChangeNotes)
			}
		}
		assert.True(t, found)
	})
}

func TestDeleteVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("Refuses Last Version", func(t *testing.T) {
		usecase, _, _ := newTestUsecase(t)
		require.True(t, usecase.InitializeVersioning(ctx))

		assert.False(t, usecase.DeleteVersion(ctx, constvars.QuestionnaireInitialVersion))
		assert.Len(t, usecase.ListVersions(ctx), 1)
	})

	t.Run("Deleting Active Version Switches Current First", func(t *testing.T) {
		usecase, _, _ := newTestUsecase(t)
		require.True(t, usecase.InitializeVersioning(ctx))
		_, err := usecase.CreateNewVersion(ctx, []models.QuestionPage{{Title: "Second"}}, models.VersionMetadata{})
		require.NoError(t, err)

		// "1.1" is active after creation.
		require.True(t, usecase.DeleteVersion(ctx, "1.1"))

		current := usecase.GetCurrentVersionInfo(ctx)
		require.NotNil(t, current)
		assert.Equal(t, "1.0", current.Version)
		assert.Len(t, usecase.ListVersions(ctx), 1)
	})

	t.Run("Deleting Inactive Version Keeps Current", func(t *testing.T) {
		usecase, _, _ := newTestUsecase(t)
		require.True(t, usecase.InitializeVersioning(ctx))
		_, err := usecase.CreateNewVersion(ctx, []models.QuestionPage{{Title: "Second"}}, models.VersionMetadata{})
		require.NoError(t, err)

		require.True(t, usecase.DeleteVersion(ctx, "1.0"))

		current := usecase.GetCurrentVersionInfo(ctx)
		require.NotNil(t, current)
		assert.Equal(t, "1.1", current.Version)
	})
}

func TestListVersionsSkipsCorruptBlobs(t *testing.T) {
	usecase, storage, _ := newTestUsecase(t)
	ctx := context.Background()
	require.True(t, usecase.InitializeVersioning(ctx))

	storage.objects[constvars.QuestionnaireVersionsPath+"v9_9.json"] = []byte("{corrupt")

	versions := usecase.ListVersions(ctx)
	require.Len(t, versions, 1)
	assert.Equal(t, constvars.QuestionnaireInitialVersion, versions[0].Version)
}

func TestAddNewSection(t *testing.T) {
	usecase, _, _ := newTestUsecase(t)
	ctx := context.Background()
	require.True(t, usecase.InitializeVersioning(ctx))

	initialCount := len(usecase.GetCurrentQuestionnaire(ctx).Pages)

	err := usecase.AddNewSection(ctx, models.QuestionPage{Title: "Supply Chain"})
	require.NoError(t, err)

	current := usecase.GetCurrentQuestionnaire(ctx)
	require.Len(t, current.Pages, initialCount+1)

	last := current.Pages[len(current.Pages)-1]
	assert.True(t, strings.HasSuffix(last.Title, "Supply Chain"))
	assert.True(t, strings.HasPrefix(last.Title, "Section "))
}

func TestDeleteSection(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes Page And Records Audit Entry", func(t *testing.T) {
		usecase, _, auditLogs := newTestUsecase(t)
		require.True(t, usecase.InitializeVersioning(ctx))

		before := usecase.GetCurrentQuestionnaire(ctx)
		require.NotEmpty(t, before.Pages)

		err := usecase.DeleteSection(ctx, "page-0", "admin@example.com", "outdated content")
		require.NoError(t, err)

		after := usecase.GetCurrentQuestionnaire(ctx)
		assert.Len(t, after.Pages, len(before.Pages)-1)

		require.Len(t, auditLogs.entries, 1)
		entry := auditLogs.entries[0]
		assert.Equal(t, models.AuditActionSectionDeleted, entry.Action)
		assert.Equal(t, "admin@example.com", entry.PerformedBy)
		assert.Equal(t, "page-0", entry.ResourceID)
		assert.Equal(t, "outdated content", entry.Details["reason"])
	})

	t.Run("Unknown Page", func(t *testing.T) {
		usecase, _, auditLogs := newTestUsecase(t)
		require.True(t, usecase.InitializeVersioning(ctx))

		err := usecase.DeleteSection(ctx, "page-99", "admin@example.com", "")
		assert.Error(t, err)
		assert.Empty(t, auditLogs.entries)
	})
}
