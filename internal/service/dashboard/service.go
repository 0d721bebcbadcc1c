package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"focalflow/internal/derive"
	"focalflow/internal/model"
	"focalflow/pkg/metrics"
)

// ProjectLister and ExpenseLister are the read surfaces Stats needs.
type ProjectLister interface {
	ListByUser(ctx context.Context, userID string) ([]model.Project, error)
}

type ExpenseLister interface {
	ListByUser(ctx context.Context, userID string) ([]model.Expense, error)
}

// Service computes dashboard stats with a short-TTL Redis cache in front.
// Cache failures degrade to a recompute, never to a request error.
type Service struct {
	projects ProjectLister
	expenses ExpenseLister
	cache    *redis.Client
	ttl      time.Duration
	logger   *zap.Logger
}

func NewService(projects ProjectLister, expenses ExpenseLister, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &Service{
		projects: projects,
		expenses: expenses,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

func cacheKey(userID string, w derive.Window) string {
	return fmt.Sprintf("dashboard:%s:%s", userID, w)
}

// Stats returns the user's aggregates for a window, from cache when fresh.
func (s *Service) Stats(ctx context.Context, userID string, w derive.Window) (*Stats, error) {
	key := cacheKey(userID, w)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var stats Stats
			if err := json.Unmarshal(cached, &stats); err == nil {
				metrics.IncrementDashboardCache("hit")
				return &stats, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("Dashboard cache read failed", zap.Error(err))
		}
	}
	metrics.IncrementDashboardCache("miss")

	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	expenses, err := s.expenses.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	stats := Compute(projects, expenses, w, time.Now())

	if s.cache != nil {
		if body, err := json.Marshal(&stats); err == nil {
			if err := s.cache.Set(ctx, key, body, s.ttl).Err(); err != nil {
				s.logger.Warn("Dashboard cache write failed", zap.Error(err))
			}
		}
	}

	return &stats, nil
}

// Invalidate drops every cached window for the user. Called after any
// project or expense write.
func (s *Service) Invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}

	keys := []string{
		cacheKey(userID, derive.WindowAll),
		cacheKey(userID, derive.WindowDay),
		cacheKey(userID, derive.WindowWeek),
		cacheKey(userID, derive.WindowMonth),
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("Dashboard cache invalidation failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}
