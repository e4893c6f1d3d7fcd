package analysis

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/constants"
	"github.com/fread-app/fread-server-go/internal/domain"
	"github.com/fread-app/fread-server-go/internal/service/cache"
)

// CachedRepository layers a read-through Redis cache over the repository.
// Cache misses and cache failures both fall through to Postgres; a broken
// cache never fails a request.
type CachedRepository struct {
	repo   *Repository
	cache  *cache.Service
	logger *zap.Logger
}

func NewCachedRepository(repo *Repository, cacheService *cache.Service, logger *zap.Logger) *CachedRepository {
	return &CachedRepository{
		repo:   repo,
		cache:  cacheService,
		logger: logger,
	}
}

func analysisKey(id int64) string {
	return fmt.Sprintf("fread:analysis:%d", id)
}

func userListKey(userID int64) string {
	return fmt.Sprintf("fread:user:%d:analyses", userID)
}

// SaveFread persists through to Postgres, then primes the id cache and
// drops the now-stale user history list.
func (r *CachedRepository) SaveFread(ctx context.Context, result *domain.AnalysisResult) (*domain.AnalysisResult, error) {
	saved, err := r.repo.SaveFread(ctx, result)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, analysisKey(saved.ID), saved, constants.CacheTTL.AnalysisByID); err != nil {
		r.logger.Warn("Failed to cache analysis", zap.Int64("analysis_id", saved.ID), zap.Error(err))
	}
	if err := r.cache.Delete(ctx, userListKey(saved.UserID)); err != nil {
		r.logger.Warn("Failed to invalidate user list cache", zap.Int64("user_id", saved.UserID), zap.Error(err))
	}

	return saved, nil
}

func (r *CachedRepository) GetByID(ctx context.Context, id int64) (*domain.AnalysisResult, error) {
	key := analysisKey(id)

	var cached domain.AnalysisResult
	hit, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		r.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	result, err := r.repo.GetByID(ctx, id)
	if err != nil || result == nil {
		return result, err
	}

	if err := r.cache.Set(ctx, key, result, constants.CacheTTL.AnalysisByID); err != nil {
		r.logger.Warn("Failed to cache analysis", zap.Int64("analysis_id", id), zap.Error(err))
	}
	return result, nil
}

func (r *CachedRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.AnalysisSummary, error) {
	key := userListKey(userID)

	var cached []*domain.AnalysisSummary
	hit, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		r.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	summaries, err := r.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, summaries, constants.CacheTTL.UserAnalysisList); err != nil {
		r.logger.Warn("Failed to cache user list", zap.Int64("user_id", userID), zap.Error(err))
	}
	return summaries, nil
}
