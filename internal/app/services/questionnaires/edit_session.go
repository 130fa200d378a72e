package questionnaires

import (
	"context"
	"time"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

// editSession is the Redis-backed single-owner edit buffer. One
// questionnaire's pages occupy the slot at a time; admin editing flows load,
// mutate and save through it instead of touching version blobs directly.
type editSession struct {
	RedisRepository contracts.RedisRepository
	Expiry          time.Duration
}

func NewEditSession(redisRepository contracts.RedisRepository, expiryInHours int) contracts.QuestionnaireCache {
	return &editSession{
		RedisRepository: redisRepository,
		Expiry:          time.Duration(expiryInHours) * time.Hour,
	}
}

func (s *editSession) LoadPages(ctx context.Context) ([]models.QuestionPage, error) {
	data, err := s.RedisRepository.Get(ctx, constvars.QuestionnaireEditBufferKey)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var pages []models.QuestionPage
	if err := json.Unmarshal([]byte(data), &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (s *editSession) SavePages(ctx context.Context, pages []models.QuestionPage) error {
	return s.RedisRepository.Set(ctx, constvars.QuestionnaireEditBufferKey, pages, s.Expiry)
}

func (s *editSession) Discard(ctx context.Context) error {
	return s.RedisRepository.Delete(ctx, constvars.QuestionnaireEditBufferKey)
}
