package questionnaires

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// questionnaireUsecase implements the versioned questionnaire store on top
// of object storage. Public operations return boolean/nil sentinels; the
// internal blob helpers return errors and are caught here at the boundary.
// Version blobs are last-write-wins: no concurrency token is stored, two
// admin sessions saving the same version race and the later save sticks.
type questionnaireUsecase struct {
	Storage            contracts.ObjectStorage
	EditSession        contracts.QuestionnaireCache
	AuditLogRepository contracts.AuditLogRepository
	Logger             *zap.Logger
}

func NewQuestionnaireUsecase(
	storage contracts.ObjectStorage,
	editSession contracts.QuestionnaireCache,
	auditLogRepository contracts.AuditLogRepository,
	logger *zap.Logger,
) contracts.QuestionnaireUsecase {
	return &questionnaireUsecase{
		Storage:            storage,
		EditSession:        editSession,
		AuditLogRepository: auditLogRepository,
		Logger:             logger,
	}
}

// InitializeVersioning bootstraps the store with version "1.0" built from
// the default questionnaire. Safe to call on every startup; returns true
// when the store holds at least one version afterwards.
func (uc *questionnaireUsecase) InitializeVersioning(ctx context.Context) bool {
	if len(uc.ListVersions(ctx)) > 0 {
		return true
	}

	blob := &models.VersionedQuestionnaire{
		SurveyDefinition: *DefaultSurveyDefinition(),
		VersionMetadata: models.VersionMetadata{
			Version:     constvars.QuestionnaireInitialVersion,
			LastUpdated: time.Now().UTC().Format(time.RFC3339),
			ChangeNotes: constvars.QuestionnaireInitialChangeNotes,
		},
	}

	if err := uc.uploadVersionBlob(ctx, blob); err != nil {
		uc.Logger.Error("failed to bootstrap initial questionnaire version", zap.Error(err))
		return false
	}
	if err := uc.writeCurrent(ctx, blob); err != nil {
		uc.Logger.Error("failed to write current questionnaire blob", zap.Error(err))
		return false
	}
	return true
}

// ListVersions enumerates every version blob, skipping and logging the ones
// that fail to download or parse. Results are sorted by numeric version,
// newest first.
func (uc *questionnaireUsecase) ListVersions(ctx context.Context) []models.VersionInfo {
	objectNames, err := uc.Storage.ListObjects(ctx, constvars.QuestionnaireVersionsPath)
	if err != nil {
		uc.Logger.Error("failed to list questionnaire version blobs", zap.Error(err))
		return []models.VersionInfo{}
	}

	versions := make([]models.VersionInfo, 0, len(objectNames))
	for _, objectName := range objectNames {
		blob, err := uc.downloadBlob(ctx, objectName)
		if err != nil {
			uc.Logger.Warn("skipping unreadable questionnaire version blob",
				zap.String("object_name", objectName),
				zap.Error(err),
			)
			continue
		}
		versions = append(versions, models.VersionInfo{
			Version:     blob.Version,
			LastUpdated: blob.LastUpdated,
			UpdatedBy:   blob.UpdatedBy,
			ChangeNotes: blob.ChangeNotes,
		})
	}

	sortVersionsDescending(versions)
	return versions
}

func (uc *questionnaireUsecase) GetCurrentVersionInfo(ctx context.Context) *models.VersionInfo {
	blob := uc.GetCurrentQuestionnaire(ctx)
	if blob == nil {
		return nil
	}
	return &models.VersionInfo{
		Version:     blob.Version,
		LastUpdated: blob.LastUpdated,
		UpdatedBy:   blob.UpdatedBy,
		ChangeNotes: blob.ChangeNotes,
	}
}

// GetCurrentQuestionnaire returns nil when current.json is missing or
// unparseable; callers treat nil as "versioning uninitialized".
func (uc *questionnaireUsecase) GetCurrentQuestionnaire(ctx context.Context) *models.VersionedQuestionnaire {
	blob, err := uc.downloadBlob(ctx, constvars.QuestionnaireCurrentPath)
	if err != nil {
		uc.Logger.Warn("current questionnaire blob missing or unreadable", zap.Error(err))
		return nil
	}
	return blob
}

func (uc *questionnaireUsecase) LoadQuestionnaireVersion(ctx context.Context, version string) []models.QuestionPage {
	blob, err := uc.downloadVersionBlob(ctx, version)
	if err != nil {
		uc.Logger.Warn("failed to load questionnaire version",
			zap.String(constvars.LoggingVersionKey, version),
			zap.Error(err),
		)
		return nil
	}
	return toQuestionPages(blob.Pages)
}

// CreateNewVersion stores a new version blob and activates it immediately;
// there is no draft state. An empty metadata.Version gets the next number,
// max existing plus 0.1.
func (uc *questionnaireUsecase) CreateNewVersion(ctx context.Context, pages []models.QuestionPage, metadata models.VersionMetadata) (string, error) {
	version := metadata.Version
	if version == "" {
		version = uc.nextVersion(ctx)
	}
	if metadata.LastUpdated == "" {
		metadata.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	}
	metadata.Version = version

	blob := &models.VersionedQuestionnaire{
		SurveyDefinition: uc.baseDefinition(ctx),
		VersionMetadata:  metadata,
	}
	blob.Pages = toSurveyPages(RenumberSections(pages))

	if err := uc.uploadVersionBlob(ctx, blob); err != nil {
		return "", err
	}

	if ok := uc.SetCurrentVersion(ctx, version); !ok {
		return "", exceptions.ErrVersionNotFound(errors.New("activation failed after create"), version)
	}
	return version, nil
}

// SetCurrentVersion flushes any pending edit-buffer pages into the active
// version first, so unsaved admin edits survive the switch. Then the target
// blob is copied into current.json and mirrored into the edit buffer.
func (uc *questionnaireUsecase) SetCurrentVersion(ctx context.Context, version string) bool {
	uc.flushEditBuffer(ctx)

	blob, err := uc.downloadVersionBlob(ctx, version)
	if err != nil {
		uc.Logger.Error("cannot activate missing questionnaire version",
			zap.String(constvars.LoggingVersionKey, version),
			zap.Error(err),
		)
		return false
	}

	if err := uc.writeCurrent(ctx, blob); err != nil {
		uc.Logger.Error("failed to write current questionnaire blob", zap.Error(err))
		return false
	}

	if err := uc.EditSession.SavePages(ctx, toQuestionPages(blob.Pages)); err != nil {
		uc.Logger.Warn("failed to mirror active version into edit buffer", zap.Error(err))
	}
	return true
}

// SaveVersion merges pages into the stored metadata for version, preserving
// updatedBy and changeNotes and bumping lastUpdated. A missing target blob
// gets synthesized auto-save metadata instead of failing. The active
// version's save also rewrites current.json.
func (uc *questionnaireUsecase) SaveVersion(ctx context.Context, version string, pages []models.QuestionPage) bool {
	blob, err := uc.downloadVersionBlob(ctx, version)
	if err != nil {
		blob = &models.VersionedQuestionnaire{
			SurveyDefinition: uc.baseDefinition(ctx),
			VersionMetadata: models.VersionMetadata{
				Version:     version,
				ChangeNotes: constvars.QuestionnaireAutoSavedChangeNotes,
			},
		}
	}

	blob.Pages = toSurveyPages(RenumberSections(pages))
	blob.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := uc.uploadVersionBlob(ctx, blob); err != nil {
		uc.Logger.Error("failed to save questionnaire version",
			zap.String(constvars.LoggingVersionKey, version),
			zap.Error(err),
		)
		return false
	}

	if current := uc.GetCurrentVersionInfo(ctx); current != nil && current.Version == version {
		if err := uc.writeCurrent(ctx, blob); err != nil {
			uc.Logger.Error("failed to refresh current questionnaire blob", zap.Error(err))
			return false
		}
	}
	return true
}

// DeleteVersion refuses to delete the last remaining version. Deleting the
// active version first switches current to any other version; failing to
// find one aborts the deletion.
func (uc *questionnaireUsecase) DeleteVersion(ctx context.Context, version string) bool {
	versions := uc.ListVersions(ctx)
	if len(versions) <= 1 {
		uc.Logger.Warn(constvars.ErrDevCannotDeleteLastVersion,
			zap.String(constvars.LoggingVersionKey, version),
		)
		return false
	}

	current := uc.GetCurrentVersionInfo(ctx)
	if current != nil && current.Version == version {
		alternate := ""
		for _, info := range versions {
			if info.Version != version {
				alternate = info.Version
				break
			}
		}
		if alternate == "" {
			uc.Logger.Error(constvars.ErrDevNoAlternateVersion,
				zap.String(constvars.LoggingVersionKey, version),
			)
			return false
		}
		if ok := uc.SetCurrentVersion(ctx, alternate); !ok {
			return false
		}
	}

	if err := uc.Storage.Delete(ctx, versionObjectPath(version)); err != nil {
		uc.Logger.Error("failed to delete questionnaire version blob",
			zap.String(constvars.LoggingVersionKey, version),
			zap.Error(err),
		)
		return false
	}
	return true
}

// AddNewSection appends a page to the active version, renumbers and
// persists. Already-started assessments keep the pages they captured;
// only new assessments observe the change.
func (uc *questionnaireUsecase) AddNewSection(ctx context.Context, section models.QuestionPage) error {
	current := uc.GetCurrentQuestionnaire(ctx)
	if current == nil {
		return exceptions.ErrVersionNotFound(nil, "current")
	}

	pages := append(toQuestionPages(current.Pages), section)
	if ok := uc.SaveVersion(ctx, current.Version, pages); !ok {
		return exceptions.ErrMinioCreateObject(errors.New("failed to persist section addition"), constvars.QuestionnaireCurrentPath)
	}
	return nil
}

// DeleteSection removes a page from the active version by its editor id and
// records an audit entry carrying the actor and reason.
func (uc *questionnaireUsecase) DeleteSection(ctx context.Context, pageID, actorEmail, reason string) error {
	current := uc.GetCurrentQuestionnaire(ctx)
	if current == nil {
		return exceptions.ErrVersionNotFound(nil, "current")
	}

	pages := toQuestionPages(current.Pages)
	index := -1
	for i, page := range pages {
		if page.ID == pageID {
			index = i
			break
		}
	}
	if index < 0 {
		return exceptions.ErrSectionNotFound(pageID)
	}

	removedTitle := pages[index].Title
	pages = append(pages[:index], pages[index+1:]...)

	if ok := uc.SaveVersion(ctx, current.Version, pages); !ok {
		return exceptions.ErrMinioCreateObject(errors.New("failed to persist section deletion"), constvars.QuestionnaireCurrentPath)
	}

	entry := models.NewAuditLog(
		models.AuditActionSectionDeleted,
		actorEmail,
		constvars.ResourceQuestionnaire,
		pageID,
		map[string]interface{}{
			"sectionTitle": removedTitle,
			"version":      current.Version,
			"reason":       reason,
		},
	)
	if err := uc.AuditLogRepository.Insert(ctx, entry); err != nil {
		uc.Logger.Warn("failed to record section deletion audit entry", zap.Error(err))
	}
	return nil
}

// flushEditBuffer persists pending edit-buffer pages into the currently
// active version. Best effort: an empty buffer or missing current version
// just skips.
func (uc *questionnaireUsecase) flushEditBuffer(ctx context.Context) {
	pages, err := uc.EditSession.LoadPages(ctx)
	if err != nil || len(pages) == 0 {
		return
	}
	current := uc.GetCurrentVersionInfo(ctx)
	if current == nil {
		return
	}
	if ok := uc.SaveVersion(ctx, current.Version, pages); !ok {
		uc.Logger.Warn("failed to flush edit buffer before version switch",
			zap.String(constvars.LoggingVersionKey, current.Version),
		)
	}
}

// nextVersion computes max existing version plus 0.1, formatted to one
// decimal place. An empty store yields the initial version.
func (uc *questionnaireUsecase) nextVersion(ctx context.Context) string {
	maxVersion := 0.0
	for _, info := range uc.ListVersions(ctx) {
		parsed, err := strconv.ParseFloat(info.Version, 64)
		if err != nil {
			continue
		}
		if parsed > maxVersion {
			maxVersion = parsed
		}
	}
	if maxVersion == 0 {
		return constvars.QuestionnaireInitialVersion
	}
	return fmt.Sprintf("%.1f", maxVersion+constvars.QuestionnaireVersionStep)
}

// baseDefinition carries the active version's display configuration into new
// blobs, falling back to the built-in default on a cold store.
func (uc *questionnaireUsecase) baseDefinition(ctx context.Context) models.SurveyDefinition {
	if current := uc.GetCurrentQuestionnaire(ctx); current != nil {
		return current.SurveyDefinition
	}
	return *DefaultSurveyDefinition()
}

func (uc *questionnaireUsecase) downloadBlob(ctx context.Context, objectPath string) (*models.VersionedQuestionnaire, error) {
	data, err := uc.Storage.Download(ctx, objectPath)
	if err != nil {
		return nil, err
	}
	var blob models.VersionedQuestionnaire
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf(constvars.ErrDevVersionParseFailed+": %w", objectPath, err)
	}
	return &blob, nil
}

func (uc *questionnaireUsecase) downloadVersionBlob(ctx context.Context, version string) (*models.VersionedQuestionnaire, error) {
	return uc.downloadBlob(ctx, versionObjectPath(version))
}

func (uc *questionnaireUsecase) uploadVersionBlob(ctx context.Context, blob *models.VersionedQuestionnaire) error {
	data, err := json.Marshal(blob)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return uc.Storage.UploadJSON(ctx, versionObjectPath(blob.Version), data)
}

// writeCurrent stores a full denormalized copy of the blob, not a pointer.
func (uc *questionnaireUsecase) writeCurrent(ctx context.Context, blob *models.VersionedQuestionnaire) error {
	data, err := json.Marshal(blob)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return uc.Storage.UploadJSON(ctx, constvars.QuestionnaireCurrentPath, data)
}

// versionObjectPath maps "1.2" to "questionnaire/versions/v1_2.json".
func versionObjectPath(version string) string {
	return fmt.Sprintf(constvars.QuestionnaireVersionFileFormat, strings.ReplaceAll(version, ".", "_"))
}

// sortVersionsDescending orders by parsed numeric value, not string compare,
// so "10.0" sorts above "9.1".
func sortVersionsDescending(versions []models.VersionInfo) {
	sort.Slice(versions, func(i, j int) bool {
		left, _ := strconv.ParseFloat(versions[i].Version, 64)
		right, _ := strconv.ParseFloat(versions[j].Version, 64)
		return left > right
	})
}
