package service

import (
	"fmt"
	"strings"
	"time"

	"das-foods/internal/domain"
)

type FeedbackService struct {
	repo FeedbackRepository
}

func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

func (s *FeedbackService) Submit(name string, rating int, comment string) (*domain.Feedback, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	fb := domain.Feedback{
		Name:      name,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateFeedback(&fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

// Recent returns up to limit entries, newest first.
func (s *FeedbackService) Recent(limit int) []domain.Feedback {
	all := s.repo.ListFeedback()
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}
	recent := make([]domain.Feedback, 0, limit)
	for i := len(all) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, all[i])
	}
	return recent
}
