package assessments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"compliance-service/internal/app/config"
	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/dto/requests"
	"compliance-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeObjectStorage struct {
	objects   map[string][]byte
	deleteErr error
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
	if s.deleteErr != nil {
		return s.deleteErr
	}
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

type fakeInProgressRepository struct {
	records map[string]*models.InProgressAssessment
}

func newFakeInProgressRepository() *fakeInProgressRepository {
	return &fakeInProgressRepository{records: make(map[string]*models.InProgressAssessment)}
}

func (r *fakeInProgressRepository) Insert(ctx context.Context, assessment *models.InProgressAssessment) error {
	copied := *assessment
	r.records[assessment.ID] = &copied
	return nil
}

func (r *fakeInProgressRepository) FindByID(ctx context.Context, id string) (*models.InProgressAssessment, error) {
	assessment, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	copied := *assessment
	return &copied, nil
}

func (r *fakeInProgressRepository) FindByOwner(ctx context.Context, owner string) ([]models.InProgressAssessment, error) {
	results := make([]models.InProgressAssessment, 0)
	for _, assessment := range r.records {
		if assessment.Owner == owner {
			results = append(results, *assessment)
		}
	}
	return results, nil
}

func (r *fakeInProgressRepository) FindAll(ctx context.Context) ([]models.InProgressAssessment, error) {
	results := make([]models.InProgressAssessment, 0)
	for _, assessment := range r.records {
		results = append(results, *assessment)
	}
	return results, nil
}

func (r *fakeInProgressRepository) Update(ctx context.Context, assessment *models.InProgressAssessment) error {
	copied := *assessment
	r.records[assessment.ID] = &copied
	return nil
}

func (r *fakeInProgressRepository) Delete(ctx context.Context, id string) error {
	delete(r.records, id)
	return nil
}

type fakeCompletedRepository struct {
	records   map[string]*models.CompletedAssessment
	insertErr error
}

func newFakeCompletedRepository() *fakeCompletedRepository {
	return &fakeCompletedRepository{records: make(map[string]*models.CompletedAssessment)}
}

func (r *fakeCompletedRepository) Insert(ctx context.Context, assessment *models.CompletedAssessment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	copied := *assessment
	r.records[assessment.ID] = &copied
	return nil
}

func (r *fakeCompletedRepository) FindByID(ctx context.Context, id string) (*models.CompletedAssessment, error) {
	assessment, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	copied := *assessment
	return &copied, nil
}

func (r *fakeCompletedRepository) FindByOwner(ctx context.Context, owner string) ([]models.CompletedAssessment, error) {
	results := make([]models.CompletedAssessment, 0)
	for _, assessment := range r.records {
		if assessment.Owner == owner {
			results = append(results, *assessment)
		}
	}
	return results, nil
}

func (r *fakeCompletedRepository) FindAll(ctx context.Context) ([]models.CompletedAssessment, error) {
	results := make([]models.CompletedAssessment, 0)
	for _, assessment := range r.records {
		results = append(results, *assessment)
	}
	return results, nil
}

type stubQuestionnaireUsecase struct {
	currentVersion string
}

func (s *stubQuestionnaireUsecase) InitializeVersioning(ctx context.Context) bool { return true }
func (s *stubQuestionnaireUsecase) ListVersions(ctx context.Context) []models.VersionInfo {
	return nil
}
func (s *stubQuestionnaireUsecase) GetCurrentVersionInfo(ctx context.Context) *models.VersionInfo {
	if s.currentVersion == "" {
		return nil
	}
	return &models.VersionInfo{Version: s.currentVersion}
}
func (s *stubQuestionnaireUsecase) GetCurrentQuestionnaire(ctx context.Context) *models.VersionedQuestionnaire {
	return nil
}
func (s *stubQuestionnaireUsecase) LoadQuestionnaireVersion(ctx context.Context, version string) []models.QuestionPage {
	return nil
}
func (s *stubQuestionnaireUsecase) CreateNewVersion(ctx context.Context, pages []models.QuestionPage, metadata models.VersionMetadata) (string, error) {
	return "", nil
}
func (s *stubQuestionnaireUsecase) SetCurrentVersion(ctx context.Context, version string) bool {
	return false
}
func (s *stubQuestionnaireUsecase) SaveVersion(ctx context.Context, version string, pages []models.QuestionPage) bool {
	return false
}
func (s *stubQuestionnaireUsecase) DeleteVersion(ctx context.Context, version string) bool {
	return false
}
func (s *stubQuestionnaireUsecase) AddNewSection(ctx context.Context, section models.QuestionPage) error {
	return nil
}
func (s *stubQuestionnaireUsecase) DeleteSection(ctx context.Context, pageID, actorEmail, reason string) error {
	return nil
}

type testHarness struct {
	usecase    contracts.AssessmentUsecase
	storage    *fakeObjectStorage
	inProgress *fakeInProgressRepository
	completed  *fakeCompletedRepository
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	storage := newFakeObjectStorage()
	inProgress := newFakeInProgressRepository()
	completed := newFakeCompletedRepository()
	internalConfig := &config.InternalConfig{
		App: config.App{CleanupMaxRetries: 1},
	}
	usecase := NewAssessmentUsecase(
		inProgress,
		completed,
		storage,
		&stubQuestionnaireUsecase{currentVersion: "1.0"},
		internalConfig,
		zap.NewNop(),
	)
	return &testHarness{
		usecase:    usecase,
		storage:    storage,
		inProgress: inProgress,
		completed:  completed,
	}
}

func TestCreateAssessment(t *testing.T) {
	harness := newTestHarness(t)
	ctx := context.Background()

	assessment, err := harness.usecase.CreateAssessment(ctx, "owner@example.com", &requests.CreateAssessment{
		Name: "Q3 assessment",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, assessment.ID)
	assert.Equal(t, "Q3 assessment", assessment.Name)
	assert.Equal(t, "owner@example.com", assessment.Owner)
	assert.Equal(t, "1.0", assessment.Version)
	assert.Equal(t, 0, assessment.PercentCompleted)

	_, ok := harness.storage.objects[assessment.StoragePath]
	assert.True(t, ok)
	assert.Contains(t, harness.inProgress.records, assessment.ID)
}

func TestUpdateAssessment(t *testing.T) {
	harness := newTestHarness(t)
	ctx := context.Background()

	assessment, err := harness.usecase.CreateAssessment(ctx, "owner@example.com", &requests.CreateAssessment{Name: "A"})
	require.NoError(t, err)

	t.Run("Owner Updates Progress", func(t *testing.T) {
		err := harness.usecase.UpdateAssessment(ctx, "owner@example.com", assessment.ID, &requests.UpdateAssessment{
			AnswerData:       models.AnswerDictionary{"AC@Do X?@x": "Yes"},
			CurrentPage:      2,
			PercentCompleted: 40,
		})
		require.NoError(t, err)

		stored := harness.inProgress.records[assessment.ID]
		assert.Equal(t, 2, stored.CurrentPage)
		assert.Equal(t, 40, stored.PercentCompleted)
	})

	t.Run("Non Owner Rejected", func(t *testing.T) {
		err := harness.usecase.UpdateAssessment(ctx, "intruder@example.com", assessment.ID, &requests.UpdateAssessment{
			AnswerData: models.AnswerDictionary{},
		})
		assert.Error(t, err)
	})

	t.Run("Unknown Assessment", func(t *testing.T) {
		err := harness.usecase.UpdateAssessment(ctx, "owner@example.com", "missing", &requests.UpdateAssessment{
			AnswerData: models.AnswerDictionary{},
		})
		assert.Error(t, err)
	})
}

func TestCompleteAssessment(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, harness *testHarness, answers models.AnswerDictionary) *models.InProgressAssessment {
		t.Helper()
		assessment, err := harness.usecase.CreateAssessment(ctx, "owner@example.com", &requests.CreateAssessment{
			Name:       "A",
			AnswerData: answers,
		})
		require.NoError(t, err)
		return assessment
	}

	t.Run("Fully Compliant", func(t *testing.T) {
		harness := newTestHarness(t)
		assessment := seed(t, harness, models.AnswerDictionary{
			"AC@Question one@a1": "Yes",
			"AC@Question two@a2": "yes",
		})

		result, err := harness.usecase.CompleteAssessment(ctx, "owner@example.com", assessment.ID)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.CleanupPending)

		assert.Equal(t, 100, result.Assessment.ComplianceScore)
		assert.True(t, result.Assessment.IsCompliant)
		assert.Equal(t, "1.0", result.Assessment.Version)
		assert.Equal(t, 2, result.Report.MaxScore)

		// In-progress side is fully cleaned up; frozen blob remains.
		assert.NotContains(t, harness.inProgress.records, assessment.ID)
		assert.NotContains(t, harness.storage.objects, assessment.StoragePath)
		assert.Contains(t, harness.storage.objects, result.Assessment.StoragePath)
		assert.Contains(t, harness.completed.records, assessment.ID)
	})

	t.Run("Partially Compliant", func(t *testing.T) {
		harness := newTestHarness(t)
		assessment := seed(t, harness, models.AnswerDictionary{
			"AC@Question one@a1": "Yes",
			"AC@Question two@a2": "No",
		})

		result, err := harness.usecase.CompleteAssessment(ctx, "owner@example.com", assessment.ID)
		require.NoError(t, err)

		assert.Equal(t, 50, result.Assessment.ComplianceScore)
		assert.False(t, result.Assessment.IsCompliant)
	})

	t.Run("Insert Failure Rolls Back Frozen Blob", func(t *testing.T) {
		harness := newTestHarness(t)
		assessment := seed(t, harness, models.AnswerDictionary{"AC@Question one@a1": "Yes"})
		harness.completed.insertErr = errors.New("insert failed")

		result, err := harness.usecase.CompleteAssessment(ctx, "owner@example.com", assessment.ID)
		assert.Error(t, err)
		assert.Nil(t, result)

		// The in-progress record survives and no frozen blob is left behind.
		assert.Contains(t, harness.inProgress.records, assessment.ID)
		for path := range harness.storage.objects {
			assert.NotContains(t, path, "/completed/")
		}
	})

	t.Run("Cleanup Failure Surfaces Pending Result", func(t *testing.T) {
		harness := newTestHarness(t)
		assessment := seed(t, harness, models.AnswerDictionary{"AC@Question one@a1": "Yes"})
		harness.storage.deleteErr = errors.New("storage unavailable")

		result, err := harness.usecase.CompleteAssessment(ctx, "owner@example.com", assessment.ID)
		require.Error(t, err)
		require.NotNil(t, result)
		assert.True(t, result.CleanupPending)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)

		// Completed side committed despite the dangling in-progress copy.
		assert.Contains(t, harness.completed.records, assessment.ID)
	})

	t.Run("Non Owner Rejected", func(t *testing.T) {
		harness := newTestHarness(t)
		assessment := seed(t, harness, models.AnswerDictionary{})

		result, err := harness.usecase.CompleteAssessment(ctx, "intruder@example.com", assessment.ID)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestFetchAnswerData(t *testing.T) {
	harness := newTestHarness(t)
	ctx := context.Background()

	answers := models.AnswerDictionary{"onboarding^Company?^c": "Acme"}
	assessment, err := harness.usecase.CreateAssessment(ctx, "owner@example.com", &requests.CreateAssessment{
		Name:       "A",
		AnswerData: answers,
	})
	require.NoError(t, err)

	t.Run("In Progress", func(t *testing.T) {
		fetched, err := harness.usecase.FetchAnswerData(ctx, "owner@example.com", assessment.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", fetched["onboarding^Company?^c"])
	})

	t.Run("Non Owner Rejected", func(t *testing.T) {
		_, err := harness.usecase.FetchAnswerData(ctx, "intruder@example.com", assessment.ID)
		assert.Error(t, err)
	})

	t.Run("Completed", func(t *testing.T) {
		_, err := harness.usecase.CompleteAssessment(ctx, "owner@example.com", assessment.ID)
		require.NoError(t, err)

		fetched, err := harness.usecase.FetchAnswerData(ctx, "owner@example.com", assessment.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", fetched["onboarding^Company?^c"])
	})

	t.Run("Unknown Assessment", func(t *testing.T) {
		_, err := harness.usecase.FetchAnswerData(ctx, "owner@example.com", "missing")
		assert.Error(t, err)
	})
}

func TestDeleteInProgressAssessment(t *testing.T) {
	harness := newTestHarness(t)
	ctx := context.Background()

	assessment, err := harness.usecase.CreateAssessment(ctx, "owner@example.com", &requests.CreateAssessment{Name: "A"})
	require.NoError(t, err)

	require.NoError(t, harness.usecase.DeleteInProgressAssessment(ctx, "owner@example.com", assessment.ID))

	assert.NotContains(t, harness.inProgress.records, assessment.ID)
	assert.NotContains(t, harness.storage.objects, assessment.StoragePath)

	listed, err := harness.usecase.FindAllInProgress(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCreateAssessmentUnknownVersionFallback(t *testing.T) {
	storage := newFakeObjectStorage()
	usecase := NewAssessmentUsecase(
		newFakeInProgressRepository(),
		newFakeCompletedRepository(),
		storage,
		&stubQuestionnaireUsecase{},
		&config.InternalConfig{App: config.App{CleanupMaxRetries: 1}},
		zap.NewNop(),
	)

	assessment, err := usecase.CreateAssessment(context.Background(), "owner@example.com", &requests.CreateAssessment{Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, "unknown", assessment.Version)
}

func TestCleanupRetryHonorsContext(t *testing.T) {
	harness := newTestHarness(t)
	harness.storage.deleteErr = errors.New("storage unavailable")

	ctx := context.Background()
	assessment, err := harness.usecase.CreateAssessment(ctx, "owner@example.com", &requests.CreateAssessment{Name: "A"})
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	start := time.Now()
	err = harness.usecase.DeleteInProgressAssessment(cancelled, "owner@example.com", assessment.ID)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
