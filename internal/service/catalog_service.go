package service

import (
	"fmt"
	"strings"

	"das-foods/internal/domain"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List() []domain.MenuItem {
	return s.repo.ListItems()
}

func (s *CatalogService) Get(id int) (*domain.MenuItem, error) {
	return s.repo.GetItem(id)
}

func (s *CatalogService) Create(item *domain.MenuItem) error {
	if err := normalizeMenuItem(item); err != nil {
		return err
	}
	return s.repo.CreateItem(item)
}

func (s *CatalogService) Update(item *domain.MenuItem) error {
	if err := normalizeMenuItem(item); err != nil {
		return err
	}
	return s.repo.UpdateItem(item)
}

func (s *CatalogService) Delete(id int) (int64, error) {
	return s.repo.DeleteItem(id)
}

// Categories lists distinct categories in first-seen catalog order.
func (s *CatalogService) Categories() []string {
	var categories []string
	seen := make(map[string]bool)
	for _, item := range s.repo.ListItems() {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

func (s *CatalogService) Grouped() []domain.CategoryGroup {
	items := s.repo.ListItems()
	var groups []domain.CategoryGroup
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, domain.CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

func normalizeMenuItem(item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	item.Description = strings.TrimSpace(item.Description)
	item.ImageURL = strings.TrimSpace(item.ImageURL)

	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if item.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}
