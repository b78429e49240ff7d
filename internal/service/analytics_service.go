package service

import (
	"context"
	"time"

	"das-foods/internal/domain"
)

const (
	PeriodToday = "today"
	PeriodAll   = "all"
)

type AnalyticsService struct {
	store   PopularityStore
	catalog CatalogRepository
	now     func() time.Time
}

// NewAnalyticsService accepts a nil store; Popular then reports ErrAnalyticsUnavailable.
func NewAnalyticsService(store PopularityStore, catalog CatalogRepository) *AnalyticsService {
	return &AnalyticsService{store: store, catalog: catalog, now: time.Now}
}

func (s *AnalyticsService) Popular(ctx context.Context, period string, limit int) ([]domain.PopularItem, error) {
	if s.store == nil {
		return nil, ErrAnalyticsUnavailable
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	day := ""
	if period == PeriodToday {
		day = s.now().UTC().Format("2006-01-02")
	}

	scored, err := s.store.TopItems(ctx, day, limit)
	if err != nil {
		return nil, err
	}

	items := make([]domain.PopularItem, 0, len(scored))
	for _, entry := range scored {
		item, err := s.catalog.GetItem(entry.MenuItemID)
		if err != nil {
			continue
		}
		entry.Name = item.Name
		entry.Category = item.Category
		items = append(items, entry)
	}
	return items, nil
}
